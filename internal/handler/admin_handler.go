package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/taskguard-api/internal/models"
	"github.com/noah-isme/taskguard-api/pkg/response"
)

type adminTaskService interface {
	ListAll(ctx context.Context) ([]models.Task, error)
}

type adminAuditService interface {
	ListRecent(ctx context.Context) ([]models.AuditLog, error)
	ExportRecent(ctx context.Context, format string) ([]byte, string, error)
}

// AdminHandler serves the administrative task overview and the security
// event log. Routes are gated by permission middleware.
type AdminHandler struct {
	tasks adminTaskService
	audit adminAuditService
}

// NewAdminHandler creates a new handler.
func NewAdminHandler(tasks adminTaskService, audit adminAuditService) *AdminHandler {
	return &AdminHandler{tasks: tasks, audit: audit}
}

// Dashboard godoc
// @Summary Administrative task overview
// @Description All tasks across all owners, newest first
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /admin-dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	tasks, err := h.tasks.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, tasks)
}

// AuditLogs godoc
// @Summary Security event log
// @Description The 50 most recent security events, newest first
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /audit-logs [get]
func (h *AdminHandler) AuditLogs(c *gin.Context) {
	logs, err := h.audit.ListRecent(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, logs)
}

// ExportAuditLogs godoc
// @Summary Export the security event log
// @Description Download the recent events as csv or pdf
// @Tags Admin
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv (default) or pdf"
// @Success 200 {file} file
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /audit-logs/export [get]
func (h *AdminHandler) ExportAuditLogs(c *gin.Context) {
	format := c.DefaultQuery("format", "csv")

	data, contentType, err := h.audit.ExportRecent(c.Request.Context(), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := "audit-logs." + format
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, data)
}
