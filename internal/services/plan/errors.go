package plan

import "errors"

// Planning-related errors
var (
	ErrEmptyName   = errors.New("name cannot be empty")
	ErrInvalidID   = errors.New("invalid record ID")
	ErrBadDate     = errors.New("date must be YYYY-MM-DD")
	ErrMissingDate = errors.New("time off requires a date")
)
