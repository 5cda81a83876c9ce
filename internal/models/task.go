package models

import "time"

// Task is a single tracked work item. Date fields hold naive calendar days
// as YYYY-MM-DD strings; an empty string means the field is unset. The
// timeline and dashboard engines degrade gracefully when a date is missing
// or unparseable, so a Task loaded from a hand-edited database never
// crashes a render.
type Task struct {
	ID          int
	Title       string
	Description string
	Status      Status
	Type        string
	Priority    string
	StoryPoints int
	ParentID    *int

	DueDate   string
	StartDate string
	EndDate   string

	PlannedStartDate string
	PlannedEndDate   string
	ActualEndDate    string

	PIID         *int
	SprintID     *int
	Assignee     string
	Dependencies []int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// GetID returns the task's identifier.
func (t *Task) GetID() int {
	return t.ID
}

// EffectiveDueDate returns the date a task is expected to finish: the due
// date when set, otherwise the planned end date. Empty when neither is set.
func (t *Task) EffectiveDueDate() string {
	if t.DueDate != "" {
		return t.DueDate
	}
	return t.PlannedEndDate
}

// TaskTypeIssue is the task type counted as an open issue on the dashboard.
const TaskTypeIssue = "bug"
