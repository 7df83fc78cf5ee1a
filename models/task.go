package models

import (
	"time"

	"github.com/google/uuid"
)

// Task is a unit of work that earns points on completion.
type Task struct {
	ID              uuid.UUID  `json:"id"`
	UserID          uuid.UUID  `json:"user_id"`
	StatusID        uuid.UUID  `json:"status_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	EstimatedPoints int        `json:"estimated_points"`
	AwardedPoints   int        `json:"awarded_points"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Done reports whether the task has been completed.
func (t Task) Done() bool {
	return t.CompletedAt != nil
}

// TaskSpec is the body of POST /tasks.
type TaskSpec struct {
	StatusID        uuid.UUID  `json:"status_id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	EstimatedPoints int        `json:"estimated_points,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
}

// TaskPatch is a partial task update for PUT /tasks/{id}. Nil fields are left
// untouched by the backend.
type TaskPatch struct {
	StatusID        *uuid.UUID `json:"status_id,omitempty"`
	Title           *string    `json:"title,omitempty"`
	Description     *string    `json:"description,omitempty"`
	EstimatedPoints *int       `json:"estimated_points,omitempty"`
	DueDate         *time.Time `json:"due_date,omitempty"`
	CompletedAt     *time.Time `json:"completed_at,omitempty"`
}

// TaskStatus is a reference-data workflow state (e.g. todo, in progress).
type TaskStatus struct {
	ID   uuid.UUID `json:"id"`
	Code string    `json:"code"`
	Name string    `json:"name"`
}

// TaskStatusSpec creates or fully describes a task status.
type TaskStatusSpec struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Tag is a free-form label attachable to tasks.
type Tag struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// TagSpec creates or renames a tag.
type TagSpec struct {
	Name string `json:"name"`
}
