package service

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/taskguard-api/internal/models"
	appErrors "github.com/noah-isme/taskguard-api/pkg/errors"
)

// titlePattern whitelists task titles: letters, digits, whitespace and the
// punctuation "- . ?". Enforced at create and at edit, before any write.
var titlePattern = regexp.MustCompile(`^[a-zA-Z0-9\s\-.?]+$`)

type taskRepository interface {
	ListByOwner(ctx context.Context, filter models.TaskFilter) ([]models.Task, error)
	ListAll(ctx context.Context) ([]models.Task, error)
	FindByID(ctx context.Context, id string) (*models.Task, error)
	FindByIDForOwner(ctx context.Context, id, ownerID string) (*models.Task, error)
	Create(ctx context.Context, task *models.Task) error
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id string) error
}

// TaskService implements task CRUD plus the ownership/permission policy.
// A caller without the relevant permission only ever observes their own
// rows; everything else reads as not-found so existence is never leaked.
type TaskService struct {
	repo      taskRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewTaskService constructs a TaskService instance.
func NewTaskService(repo taskRepository, validate *validator.Validate, logger *zap.Logger) *TaskService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &TaskService{repo: repo, validator: validate, logger: logger}
}

// List returns the caller's tasks, optionally filtered by a
// case-insensitive substring over title or description.
func (s *TaskService) List(ctx context.Context, claims *models.JWTClaims, search string) ([]models.Task, error) {
	tasks, err := s.repo.ListByOwner(ctx, models.TaskFilter{OwnerID: claims.UserID, Search: search})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list tasks")
	}
	return tasks, nil
}

// ListAll returns every task, newest first. Callers must hold view_task;
// the route middleware enforces that.
func (s *TaskService) ListAll(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list tasks")
	}
	return tasks, nil
}

// Create validates the payload and persists a task owned by the caller.
func (s *TaskService) Create(ctx context.Context, claims *models.JWTClaims, req models.CreateTaskRequest) (*models.Task, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if err := s.validateTaskFields(req.Title); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid task payload")
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		OwnerID:     claims.UserID,
	}
	if err := s.repo.Create(ctx, task); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create task")
	}
	return task, nil
}

// GetForEdit resolves a task under the edit policy: callers holding
// change_task see any task, everyone else only their own. A miss is a 404
// either way.
func (s *TaskService) GetForEdit(ctx context.Context, claims *models.JWTClaims, id string) (*models.Task, error) {
	return s.fetchScoped(ctx, claims, id, models.PermissionChangeTask)
}

// GetForDelete resolves a task under the delete policy, same shape as edit
// but keyed on delete_task.
func (s *TaskService) GetForDelete(ctx context.Context, claims *models.JWTClaims, id string) (*models.Task, error) {
	return s.fetchScoped(ctx, claims, id, models.PermissionDeleteTask)
}

// fetchScoped is the single access-control decision for task lookups: the
// permission widens the query to all rows, ownership scopes it otherwise.
// Out-of-scope rows read as not-found, never as forbidden.
func (s *TaskService) fetchScoped(ctx context.Context, claims *models.JWTClaims, id string, perm models.Permission) (*models.Task, error) {
	var (
		task *models.Task
		err  error
	)
	if claims.HasPermission(perm) {
		task, err = s.repo.FindByID(ctx, id)
	} else {
		task, err = s.repo.FindByIDForOwner(ctx, id, claims.UserID)
	}
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "task not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to fetch task")
	}
	return task, nil
}

// Update edits title, description and completion of a task the caller may
// edit. Owner and created_at are never touched.
func (s *TaskService) Update(ctx context.Context, claims *models.JWTClaims, id string, req models.UpdateTaskRequest) (*models.Task, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if err := s.validateTaskFields(req.Title); err != nil {
		return nil, err
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid task payload")
	}

	task, err := s.GetForEdit(ctx, claims, id)
	if err != nil {
		return nil, err
	}

	task.Title = req.Title
	task.Description = req.Description
	task.IsCompleted = req.IsCompleted
	if err := s.repo.Update(ctx, task); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update task")
	}
	return task, nil
}

// Delete removes a task the caller may delete.
func (s *TaskService) Delete(ctx context.Context, claims *models.JWTClaims, id string) error {
	task, err := s.GetForDelete(ctx, claims, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, task.ID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to delete task")
	}
	return nil
}

func (s *TaskService) validateTaskFields(title string) error {
	if title != "" && !titlePattern.MatchString(title) {
		return appErrors.Validation("invalid task title", appErrors.Detail{
			Code:    "title_invalid",
			Message: "Only alphanumeric characters, spaces, and basic punctuation are allowed.",
		})
	}
	return nil
}
