package database

// DataStore defines the unified interface for all data operations needed by
// the services and the TUI. It is composed of smaller, domain-specific
// interfaces so consumers can depend on just the repositories they use.
type DataStore interface {
	TaskRepository
	RiskRepository
	PlanRepository
}
