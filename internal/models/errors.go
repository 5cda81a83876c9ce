package models

import "errors"

// Domain-specific errors shared across services
var (
	// ErrUnknownStatus indicates a status value outside the six-bucket closed set
	ErrUnknownStatus = errors.New("unknown task status")

	// ErrTaskNotFound indicates a lookup by ID matched no task
	ErrTaskNotFound = errors.New("task not found")

	// ErrRiskNotFound indicates a lookup by ID matched no risk
	ErrRiskNotFound = errors.New("risk not found")
)
