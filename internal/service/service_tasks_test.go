package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkazancev/gamideck/internal/logger"
	"github.com/pkazancev/gamideck/models"
)

func TestCalendar_SplitsScheduledAndUnscheduled(t *testing.T) {
	due := time.Date(2026, 3, 14, 10, 0, 0, 0, time.Local)
	a := &fakeAdapter{
		tasksFunc: func(context.Context) ([]models.Task, error) {
			return []models.Task{
				{ID: uuid.New(), Title: "write report", DueDate: &due},
				{ID: uuid.New(), Title: "someday"},
			}, nil
		},
	}
	svc := NewTaskService(a, logger.Nop())

	cal, loose, err := svc.Calendar(context.Background())

	require.NoError(t, err)
	require.Len(t, cal, 1)
	assert.Len(t, cal["2026-03-14"], 1)
	require.Len(t, loose, 1)
	assert.Equal(t, "someday", loose[0].Title)
}

func TestCreateTask_RejectsBlankTitle(t *testing.T) {
	svc := NewTaskService(&fakeAdapter{}, logger.Nop())

	_, err := svc.Create(context.Background(), models.TaskSpec{Title: "   "})

	assert.ErrorIs(t, err, ErrValidationEmptyTitle)
}

func TestUpdateTask_RejectsBlankTitlePatch(t *testing.T) {
	svc := NewTaskService(&fakeAdapter{}, logger.Nop())
	blank := " "

	_, err := svc.Update(context.Background(), uuid.New(), models.TaskPatch{Title: &blank})

	assert.ErrorIs(t, err, ErrValidationEmptyTitle)
}
