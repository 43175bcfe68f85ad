package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/taskguard-api/internal/models"
)

// TaskRepository manages persistence for tasks. Owner-scoped variants take
// the caller's ID so access control happens at the query level.
type TaskRepository struct {
	db *sqlx.DB
}

// NewTaskRepository constructs a new repository.
func NewTaskRepository(db *sqlx.DB) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `id, title, description, is_completed, owner_id, created_at, updated_at`

// likeEscaper neutralises LIKE metacharacters so a search term is always a
// literal substring match, never a wildcard pattern.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListByOwner returns the owner's tasks, newest first, optionally filtered
// by a case-insensitive substring match over title or description.
func (r *TaskRepository) ListByOwner(ctx context.Context, filter models.TaskFilter) ([]models.Task, error) {
	query := `SELECT ` + taskColumns + ` FROM tasks WHERE owner_id = $1`
	args := []interface{}{filter.OwnerID}

	if filter.Search != "" {
		query += ` AND (LOWER(title) LIKE $2 ESCAPE '\' OR LOWER(description) LIKE $2 ESCAPE '\')`
		args = append(args, "%"+likeEscaper.Replace(strings.ToLower(filter.Search))+"%")
	}
	query += ` ORDER BY created_at DESC`

	tasks := []models.Task{}
	if err := r.db.SelectContext(ctx, &tasks, query, args...); err != nil {
		return nil, fmt.Errorf("list tasks by owner: %w", err)
	}
	return tasks, nil
}

// ListAll returns every task, newest first. Callers gate this behind the
// view_task permission.
func (r *TaskRepository) ListAll(ctx context.Context) ([]models.Task, error) {
	const query = `SELECT ` + taskColumns + ` FROM tasks ORDER BY created_at DESC`
	tasks := []models.Task{}
	if err := r.db.SelectContext(ctx, &tasks, query); err != nil {
		return nil, fmt.Errorf("list all tasks: %w", err)
	}
	return tasks, nil
}

// FindByID returns a task regardless of owner.
func (r *TaskRepository) FindByID(ctx context.Context, id string) (*models.Task, error) {
	const query = `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 LIMIT 1`
	var task models.Task
	if err := r.db.GetContext(ctx, &task, query, id); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find task by id: %w", err)
	}
	return &task, nil
}

// FindByIDForOwner returns a task only when it belongs to the given owner.
// A non-owner gets sql.ErrNoRows, indistinguishable from a missing row.
func (r *TaskRepository) FindByIDForOwner(ctx context.Context, id, ownerID string) (*models.Task, error) {
	const query = `SELECT ` + taskColumns + ` FROM tasks WHERE id = $1 AND owner_id = $2 LIMIT 1`
	var task models.Task
	if err := r.db.GetContext(ctx, &task, query, id, ownerID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find task by id for owner: %w", err)
	}
	return &task, nil
}

// Create inserts a new task.
func (r *TaskRepository) Create(ctx context.Context, task *models.Task) error {
	if task.ID == "" {
		task.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if task.CreatedAt.IsZero() {
		task.CreatedAt = now
	}
	task.UpdatedAt = now

	const query = `INSERT INTO tasks (id, title, description, is_completed, owner_id, created_at, updated_at) VALUES (:id, :title, :description, :is_completed, :owner_id, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, task); err != nil {
		return fmt.Errorf("create task: %w", err)
	}
	return nil
}

// Update persists the mutable fields. Owner and created_at never change.
func (r *TaskRepository) Update(ctx context.Context, task *models.Task) error {
	task.UpdatedAt = time.Now().UTC()
	const query = `UPDATE tasks SET title = :title, description = :description, is_completed = :is_completed, updated_at = :updated_at WHERE id = :id`
	if _, err := r.db.NamedExecContext(ctx, query, task); err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	return nil
}

// Delete removes a task row.
func (r *TaskRepository) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM tasks WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	return nil
}
