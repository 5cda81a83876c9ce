package risk

import (
	"context"
	"fmt"

	"github.com/kamholtz/trak/internal/database"
	"github.com/kamholtz/trak/internal/models"
	"github.com/kamholtz/trak/internal/timeline"
)

// Service defines all risk-register business operations
type Service interface {
	ListRisks(ctx context.Context) ([]*models.Risk, error)
	GetRisk(ctx context.Context, riskID int) (*models.Risk, error)
	CreateRisk(ctx context.Context, req CreateRiskRequest) (*models.Risk, error)
	UpdateRisk(ctx context.Context, req UpdateRiskRequest) error
	DeleteRisk(ctx context.Context, riskID int) error
}

// CreateRiskRequest encapsulates all data needed to create a risk.
// Title is the only required field.
type CreateRiskRequest struct {
	Title       string
	Description string
	Impact      string
	Probability string
	Mitigation  string
	Owner       string
	ReviewDate  string
	Project     string
}

// UpdateRiskRequest encapsulates all data needed to update a risk.
// Fields with pointers are optional - nil means don't update.
type UpdateRiskRequest struct {
	RiskID       int
	Title        *string
	Description  *string
	Impact       *string
	Probability  *string
	Mitigation   *string
	Owner        *string
	Status       *string
	ReviewDate   *string
	ResolvedDate *string
}

type service struct {
	repo database.DataStore
}

// NewService creates a new risk service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

func (s *service) ListRisks(ctx context.Context) ([]*models.Risk, error) {
	risks, err := s.repo.GetAllRisks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list risks: %w", err)
	}
	return risks, nil
}

func (s *service) GetRisk(ctx context.Context, riskID int) (*models.Risk, error) {
	if riskID <= 0 {
		return nil, ErrInvalidRiskID
	}
	return s.repo.GetRiskByID(ctx, riskID)
}

func (s *service) CreateRisk(ctx context.Context, req CreateRiskRequest) (*models.Risk, error) {
	if req.Title == "" {
		return nil, ErrEmptyTitle
	}
	if err := validateDate(&req.ReviewDate); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateRisk(ctx, &models.Risk{
		Title:       req.Title,
		Description: req.Description,
		Impact:      req.Impact,
		Probability: req.Probability,
		Mitigation:  req.Mitigation,
		Owner:       req.Owner,
		Status:      models.DefaultRiskStatus,
		ReviewDate:  req.ReviewDate,
		Project:     req.Project,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create risk: %w", err)
	}
	return created, nil
}

func (s *service) UpdateRisk(ctx context.Context, req UpdateRiskRequest) error {
	if req.RiskID <= 0 {
		return ErrInvalidRiskID
	}
	if req.Title != nil && *req.Title == "" {
		return ErrEmptyTitle
	}
	for _, d := range []*string{req.ReviewDate, req.ResolvedDate} {
		if err := validateDate(d); err != nil {
			return err
		}
	}

	patch := database.RiskPatch{
		Title:        req.Title,
		Description:  req.Description,
		Impact:       req.Impact,
		Probability:  req.Probability,
		Mitigation:   req.Mitigation,
		Owner:        req.Owner,
		Status:       req.Status,
		ReviewDate:   req.ReviewDate,
		ResolvedDate: req.ResolvedDate,
	}
	if patch == (database.RiskPatch{}) {
		return ErrEmptyUpdate
	}

	if err := s.repo.UpdateRisk(ctx, req.RiskID, patch); err != nil {
		return fmt.Errorf("failed to update risk: %w", err)
	}
	return nil
}

func (s *service) DeleteRisk(ctx context.Context, riskID int) error {
	if riskID <= 0 {
		return ErrInvalidRiskID
	}
	if err := s.repo.DeleteRisk(ctx, riskID); err != nil {
		return fmt.Errorf("failed to delete risk: %w", err)
	}
	return nil
}

func validateDate(d *string) error {
	if d == nil || *d == "" {
		return nil
	}
	if _, ok := timeline.ParseDay(*d); !ok {
		return fmt.Errorf("%w: %q", ErrBadDate, *d)
	}
	return nil
}
