package models

// ProgramIncrement is a PI planning window grouping several sprints.
type ProgramIncrement struct {
	ID        int
	Name      string
	StartDate string
	EndDate   string
}

// Sprint is a time-boxed iteration within a program increment.
type Sprint struct {
	ID        int
	PIID      *int
	Name      string
	StartDate string
	EndDate   string
}

// TimeOff marks a single non-working day (holiday, vacation, PTO).
type TimeOff struct {
	ID       int
	Date     string
	Category string
	Note     string
}
