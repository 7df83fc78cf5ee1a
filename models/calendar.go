package models

import (
	"sort"
	"time"
)

// calendarDayFormat is the key layout of a Calendar: one entry per local day.
const calendarDayFormat = "2006-01-02"

// Calendar groups tasks by the local day of their due date. It is derived from
// the server task list on every load; there is no separate client-side task
// cache to reconcile against.
type Calendar map[string][]Task

// BuildCalendar reconciles a server task list into a per-day map. Tasks
// without a due date are excluded; use Unscheduled to list them.
func BuildCalendar(tasks []Task) Calendar {
	c := make(Calendar)
	for _, t := range tasks {
		if t.DueDate == nil {
			continue
		}
		day := t.DueDate.Local().Format(calendarDayFormat)
		c[day] = append(c[day], t)
	}
	for day := range c {
		sortTasksByDue(c[day])
	}
	return c
}

// On returns the tasks due on the given day, earliest first.
func (c Calendar) On(day time.Time) []Task {
	return c[day.Local().Format(calendarDayFormat)]
}

// Days returns every day that has at least one task, in ascending order.
func (c Calendar) Days() []string {
	days := make([]string, 0, len(c))
	for day := range c {
		days = append(days, day)
	}
	sort.Strings(days)
	return days
}

// Unscheduled returns the tasks from the given list that carry no due date.
func Unscheduled(tasks []Task) []Task {
	var out []Task
	for _, t := range tasks {
		if t.DueDate == nil {
			out = append(out, t)
		}
	}
	return out
}

func sortTasksByDue(tasks []Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].DueDate.Before(*tasks[j].DueDate)
	})
}
