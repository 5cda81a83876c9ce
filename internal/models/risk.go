package models

import "time"

// Risk is an entry in the risk register. Impact, probability and status are
// free-form labels; ReviewDate drives the dashboard's risks-due projection.
type Risk struct {
	ID           int
	Title        string
	Description  string
	Impact       string
	Probability  string
	Mitigation   string
	Owner        string
	Status       string
	ReviewDate   string
	ResolvedDate string
	Project      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// GetID returns the risk's identifier.
func (r *Risk) GetID() int {
	return r.ID
}

// DefaultRiskStatus is assigned to newly created risks.
const DefaultRiskStatus = "open"
