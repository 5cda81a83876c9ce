package database

import (
	"context"
	"database/sql"

	"github.com/kamholtz/trak/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*TaskRepo
	*RiskRepo
	*PlanRepo
}

// NewRepository creates a new Repository instance wrapping the given
// database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		TaskRepo: &TaskRepo{db: db},
		RiskRepo: &RiskRepo{db: db},
		PlanRepo: &PlanRepo{db: db},
	}
}

// Wrapper methods for TaskRepo to satisfy the TaskRepository interface
func (r *Repository) CreateTask(ctx context.Context, t *models.Task) (*models.Task, error) {
	return r.TaskRepo.Create(ctx, t)
}

func (r *Repository) GetTaskByID(ctx context.Context, id int) (*models.Task, error) {
	return r.TaskRepo.GetByID(ctx, id)
}

func (r *Repository) GetAllTasks(ctx context.Context) ([]*models.Task, error) {
	return r.TaskRepo.GetAll(ctx)
}

func (r *Repository) GetTasksByStatus(ctx context.Context, status models.Status) ([]*models.Task, error) {
	return r.TaskRepo.GetByStatus(ctx, status)
}

func (r *Repository) UpdateTask(ctx context.Context, id int, patch TaskPatch) error {
	return r.TaskRepo.Update(ctx, id, patch)
}

func (r *Repository) UpdateTaskStatus(ctx context.Context, id int, status models.Status) error {
	return r.TaskRepo.UpdateStatus(ctx, id, status)
}

func (r *Repository) DeleteTask(ctx context.Context, id int) error {
	return r.TaskRepo.Delete(ctx, id)
}

// Wrapper methods for RiskRepo to satisfy the RiskRepository interface
func (r *Repository) CreateRisk(ctx context.Context, risk *models.Risk) (*models.Risk, error) {
	return r.RiskRepo.Create(ctx, risk)
}

func (r *Repository) GetRiskByID(ctx context.Context, id int) (*models.Risk, error) {
	return r.RiskRepo.GetByID(ctx, id)
}

func (r *Repository) GetAllRisks(ctx context.Context) ([]*models.Risk, error) {
	return r.RiskRepo.GetAll(ctx)
}

func (r *Repository) UpdateRisk(ctx context.Context, id int, patch RiskPatch) error {
	return r.RiskRepo.Update(ctx, id, patch)
}

func (r *Repository) DeleteRisk(ctx context.Context, id int) error {
	return r.RiskRepo.Delete(ctx, id)
}
