package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func taskDueAt(title string, due time.Time) Task {
	return Task{Title: title, DueDate: &due}
}

func TestBuildCalendar_GroupsByDay(t *testing.T) {
	morning := time.Date(2026, 8, 3, 9, 0, 0, 0, time.Local)
	evening := time.Date(2026, 8, 3, 19, 0, 0, 0, time.Local)
	nextDay := time.Date(2026, 8, 4, 12, 0, 0, 0, time.Local)

	cal := BuildCalendar([]Task{
		taskDueAt("late standup notes", evening),
		taskDueAt("review PR", morning),
		taskDueAt("plan sprint", nextDay),
		{Title: "someday"}, // no due date
	})

	require.Len(t, cal, 2)
	assert.Equal(t, []string{"2026-08-03", "2026-08-04"}, cal.Days())

	day := cal.On(morning)
	require.Len(t, day, 2)
	assert.Equal(t, "review PR", day[0].Title, "same-day tasks are ordered earliest first")
	assert.Equal(t, "late standup notes", day[1].Title)
}

func TestBuildCalendar_EmptyList(t *testing.T) {
	cal := BuildCalendar(nil)
	assert.Empty(t, cal)
	assert.Empty(t, cal.On(time.Now()))
}

func TestUnscheduled(t *testing.T) {
	due := time.Date(2026, 8, 3, 9, 0, 0, 0, time.Local)
	tasks := []Task{taskDueAt("dated", due), {Title: "undated"}}

	got := Unscheduled(tasks)
	require.Len(t, got, 1)
	assert.Equal(t, "undated", got[0].Title)
}
