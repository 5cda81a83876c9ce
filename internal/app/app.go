package app

import (
	"github.com/kamholtz/trak/internal/database"
	planservice "github.com/kamholtz/trak/internal/services/plan"
	riskservice "github.com/kamholtz/trak/internal/services/risk"
	taskservice "github.com/kamholtz/trak/internal/services/task"
)

// App holds all application services and provides dependency injection.
// This is the main application container that manages service lifecycles.
type App struct {
	// Repository layer (direct database access)
	repo database.DataStore

	// Service layer (business logic)
	TaskService taskservice.Service
	RiskService riskservice.Service
	PlanService planservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo database.DataStore) *App {
	return &App{
		repo:        repo,
		TaskService: taskservice.NewService(repo),
		RiskService: riskservice.NewService(repo),
		PlanService: planservice.NewService(repo),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() database.DataStore {
	return a.repo
}

// Close performs cleanup of application resources.
func (a *App) Close() error {
	return nil
}
