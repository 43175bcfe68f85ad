package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/taskguard-api/internal/models"
	appErrors "github.com/noah-isme/taskguard-api/pkg/errors"
	"github.com/noah-isme/taskguard-api/pkg/response"
)

type taskService interface {
	List(ctx context.Context, claims *models.JWTClaims, search string) ([]models.Task, error)
	Create(ctx context.Context, claims *models.JWTClaims, req models.CreateTaskRequest) (*models.Task, error)
	GetForEdit(ctx context.Context, claims *models.JWTClaims, id string) (*models.Task, error)
	GetForDelete(ctx context.Context, claims *models.JWTClaims, id string) (*models.Task, error)
	Update(ctx context.Context, claims *models.JWTClaims, id string, req models.UpdateTaskRequest) (*models.Task, error)
	Delete(ctx context.Context, claims *models.JWTClaims, id string) error
}

// TaskHandler wires task CRUD endpoints to the task service.
type TaskHandler struct {
	service taskService
}

// NewTaskHandler creates a new handler.
func NewTaskHandler(svc taskService) *TaskHandler {
	return &TaskHandler{service: svc}
}

// List godoc
// @Summary List own tasks
// @Description Owner-scoped task list with optional substring search. Staff are redirected to the admin dashboard.
// @Tags Tasks
// @Produce json
// @Param q query string false "Case-insensitive substring over title or description"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router / [get]
func (h *TaskHandler) List(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	// Staff never see the personal list.
	if claims.IsStaff {
		c.Redirect(http.StatusSeeOther, "/admin-dashboard")
		return
	}

	tasks, err := h.service.List(c.Request.Context(), claims, c.Query("q"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, tasks)
}

// Create godoc
// @Summary Create a task
// @Description Create a task owned by the caller
// @Tags Tasks
// @Accept json
// @Produce json
// @Param payload body models.CreateTaskRequest true "Task payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /create [post]
func (h *TaskHandler) Create(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid task payload"))
		return
	}

	task, err := h.service.Create(c.Request.Context(), claims, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, task)
}

// GetForEdit godoc
// @Summary Fetch a task for editing
// @Description Resolves the task under the edit policy; out-of-scope ids read as not found
// @Tags Tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /edit/{id} [get]
func (h *TaskHandler) GetForEdit(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	task, err := h.service.GetForEdit(c.Request.Context(), claims, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, task)
}

// Update godoc
// @Summary Edit a task
// @Description Update title, description and completion; owner and creation time never change
// @Tags Tasks
// @Accept json
// @Produce json
// @Param id path string true "Task ID"
// @Param payload body models.UpdateTaskRequest true "Task payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /edit/{id} [post]
func (h *TaskHandler) Update(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid task payload"))
		return
	}

	task, err := h.service.Update(c.Request.Context(), claims, c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, task)
}

// GetForDelete godoc
// @Summary Fetch a task for delete confirmation
// @Description Resolves the task under the delete policy; out-of-scope ids read as not found
// @Tags Tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /delete/{id} [get]
func (h *TaskHandler) GetForDelete(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	task, err := h.service.GetForDelete(c.Request.Context(), claims, c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, task)
}

// Delete godoc
// @Summary Delete a task
// @Description Delete the task after confirmation
// @Tags Tasks
// @Produce json
// @Param id path string true "Task ID"
// @Success 204 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /delete/{id} [post]
func (h *TaskHandler) Delete(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	if err := h.service.Delete(c.Request.Context(), claims, c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
