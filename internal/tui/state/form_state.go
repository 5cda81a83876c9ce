package state

import (
	"charm.land/huh/v2"
)

// FormKind identifies which record type a form edits.
type FormKind int

const (
	TaskForm FormKind = iota
	RiskForm
	PIForm
	SprintForm
	TimeOffForm
)

// FormState manages all form-related state for the application.
// A single huh form is active at a time; the field buffers are shared
// between record kinds and read back on submit.
type FormState struct {
	// Form is the active huh form instance, nil when no form is open
	Form *huh.Form

	// Kind identifies the record type being edited
	Kind FormKind

	// EditingID is the record being edited (0 for a new record)
	EditingID int

	// Shared field buffers
	Title       string
	Description string
	Status      string
	Priority    string
	StartDate   string
	EndDate     string
	DueDate     string
	Assignee    string

	// Risk-specific buffers
	Impact      string
	Probability string
	Mitigation  string
	Owner       string
	ReviewDate  string

	// Time-off buffers
	Category string
	Note     string

	// Confirm is the submit/cancel toggle at the end of each form
	Confirm bool
}

// NewFormState creates a new FormState with default values.
func NewFormState() *FormState {
	return &FormState{Confirm: true}
}

// Reset clears the form and all field buffers.
func (s *FormState) Reset() {
	*s = FormState{Confirm: true}
}

// IsEditing reports whether the form edits an existing record.
func (s *FormState) IsEditing() bool {
	return s.EditingID != 0
}
