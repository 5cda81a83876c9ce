package task

import "errors"

// Task-related errors
var (
	ErrEmptyTitle    = errors.New("task title cannot be empty")
	ErrTitleTooLong  = errors.New("task title cannot exceed 255 characters")
	ErrInvalidTaskID = errors.New("invalid task ID")
	ErrEmptyUpdate   = errors.New("task update requires at least one field")
	ErrBadDate       = errors.New("date must be YYYY-MM-DD")
)
