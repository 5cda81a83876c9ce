// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/kamholtz/trak/internal/models"
)

// TaskRepository covers task reads and writes.
type TaskRepository interface {
	CreateTask(ctx context.Context, t *models.Task) (*models.Task, error)
	GetTaskByID(ctx context.Context, id int) (*models.Task, error)
	GetAllTasks(ctx context.Context) ([]*models.Task, error)
	GetTasksByStatus(ctx context.Context, status models.Status) ([]*models.Task, error)
	UpdateTask(ctx context.Context, id int, patch TaskPatch) error
	UpdateTaskStatus(ctx context.Context, id int, status models.Status) error
	DeleteTask(ctx context.Context, id int) error
}

// RiskRepository covers risk-register reads and writes.
type RiskRepository interface {
	CreateRisk(ctx context.Context, risk *models.Risk) (*models.Risk, error)
	GetRiskByID(ctx context.Context, id int) (*models.Risk, error)
	GetAllRisks(ctx context.Context) ([]*models.Risk, error)
	UpdateRisk(ctx context.Context, id int, patch RiskPatch) error
	DeleteRisk(ctx context.Context, id int) error
}

// PlanRepository covers program increments, sprints and time off.
type PlanRepository interface {
	CreatePI(ctx context.Context, pi *models.ProgramIncrement) (*models.ProgramIncrement, error)
	GetPIs(ctx context.Context) ([]*models.ProgramIncrement, error)
	UpdatePI(ctx context.Context, id int, name, startDate, endDate string) error
	DeletePI(ctx context.Context, id int) error

	CreateSprint(ctx context.Context, s *models.Sprint) (*models.Sprint, error)
	GetSprints(ctx context.Context) ([]*models.Sprint, error)
	UpdateSprint(ctx context.Context, id int, name, startDate, endDate string) error
	DeleteSprint(ctx context.Context, id int) error

	CreateTimeOff(ctx context.Context, t *models.TimeOff) (*models.TimeOff, error)
	GetTimeOff(ctx context.Context) ([]*models.TimeOff, error)
	DeleteTimeOff(ctx context.Context, id int) error
}
