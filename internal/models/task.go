package models

import "time"

// Task represents a task row owned by exactly one user for its entire
// lifetime. Rows are removed when the owner is deleted (cascade).
type Task struct {
	ID          string    `db:"id" json:"id"`
	Title       string    `db:"title" json:"title"`
	Description string    `db:"description" json:"description"`
	IsCompleted bool      `db:"is_completed" json:"is_completed"`
	OwnerID     string    `db:"owner_id" json:"owner_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// TaskFilter captures listing criteria for owner-scoped task queries.
type TaskFilter struct {
	OwnerID string
	Search  string
}

// CreateTaskRequest is the payload for creating a task.
type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
}

// UpdateTaskRequest is the payload for editing a task. Only title,
// description and completion can ever change.
type UpdateTaskRequest struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description"`
	IsCompleted bool   `json:"is_completed"`
}
