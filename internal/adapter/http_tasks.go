package adapter

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/pkazancev/gamideck/models"
)

// Tasks implements [TaskAPI] via GET /tasks. The server scopes the list to
// the authenticated user.
func (h *httpServerAdapter) Tasks(ctx context.Context) ([]models.Task, error) {
	var tasks []models.Task
	if err := h.send(ctx, "GET", "/tasks", nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask implements [TaskAPI] via POST /tasks.
func (h *httpServerAdapter) CreateTask(ctx context.Context, spec models.TaskSpec) (models.Task, error) {
	var task models.Task
	if err := h.send(ctx, "POST", "/tasks", spec, &task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// UpdateTask implements [TaskAPI] via PUT /tasks/{id}.
func (h *httpServerAdapter) UpdateTask(ctx context.Context, id uuid.UUID, patch models.TaskPatch) (models.Task, error) {
	var task models.Task
	if err := h.send(ctx, "PUT", fmt.Sprintf("/tasks/%s", id), patch, &task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// DeleteTask implements [TaskAPI] via DELETE /tasks/{id}.
func (h *httpServerAdapter) DeleteTask(ctx context.Context, id uuid.UUID) error {
	return h.send(ctx, "DELETE", fmt.Sprintf("/tasks/%s", id), nil, nil)
}
