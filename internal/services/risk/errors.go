package risk

import "errors"

// Risk-related errors
var (
	ErrEmptyTitle    = errors.New("risk title cannot be empty")
	ErrInvalidRiskID = errors.New("invalid risk ID")
	ErrEmptyUpdate   = errors.New("risk update requires at least one field")
	ErrBadDate       = errors.New("date must be YYYY-MM-DD")
)
