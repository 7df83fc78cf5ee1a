package service

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/pkazancev/gamideck/internal/adapter"
	"github.com/pkazancev/gamideck/internal/logger"
	"github.com/pkazancev/gamideck/models"
)

type taskService struct {
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewTaskService constructs a [TaskService].
func NewTaskService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) TaskService {
	return &taskService{adapter: serverAdapter, logger: logger}
}

func (t *taskService) List(ctx context.Context) ([]models.Task, error) {
	return t.adapter.Tasks(ctx)
}

func (t *taskService) Calendar(ctx context.Context) (models.Calendar, []models.Task, error) {
	tasks, err := t.adapter.Tasks(ctx)
	if err != nil {
		return nil, nil, err
	}

	return models.BuildCalendar(tasks), models.Unscheduled(tasks), nil
}

func (t *taskService) Create(ctx context.Context, spec models.TaskSpec) (models.Task, error) {
	if strings.TrimSpace(spec.Title) == "" {
		return models.Task{}, ErrValidationEmptyTitle
	}

	task, err := t.adapter.CreateTask(ctx, spec)
	if err != nil {
		return models.Task{}, err
	}

	t.logger.Info().Str("task", task.Title).Msg("task created")
	return task, nil
}

func (t *taskService) Update(ctx context.Context, id uuid.UUID, patch models.TaskPatch) (models.Task, error) {
	if patch.Title != nil && strings.TrimSpace(*patch.Title) == "" {
		return models.Task{}, ErrValidationEmptyTitle
	}

	return t.adapter.UpdateTask(ctx, id, patch)
}

func (t *taskService) Delete(ctx context.Context, id uuid.UUID) error {
	return t.adapter.DeleteTask(ctx, id)
}
