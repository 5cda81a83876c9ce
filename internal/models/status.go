package models

// Status is a task's workflow state. The set is closed: the kanban board
// renders exactly these six columns, in this order.
type Status string

const (
	StatusBacklog    Status = "backlog"
	StatusTodo       Status = "to-do"
	StatusInProgress Status = "in progress"
	StatusBlocked    Status = "blocked"
	StatusDone       Status = "done"
	StatusCancelled  Status = "cancelled"
)

// Statuses returns the six known statuses in board order.
func Statuses() []Status {
	return []Status{
		StatusBacklog,
		StatusTodo,
		StatusInProgress,
		StatusBlocked,
		StatusDone,
		StatusCancelled,
	}
}

// IsValid reports whether s is one of the six known statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusBacklog, StatusTodo, StatusInProgress, StatusBlocked, StatusDone, StatusCancelled:
		return true
	}
	return false
}

// IsTerminal reports whether s ends a task's lifecycle. Terminal tasks are
// excluded from the open-issue projection on the dashboard.
func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusCancelled
}
