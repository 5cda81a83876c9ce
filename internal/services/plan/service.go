package plan

import (
	"context"
	"fmt"

	"github.com/kamholtz/trak/internal/database"
	"github.com/kamholtz/trak/internal/models"
	"github.com/kamholtz/trak/internal/timeline"
)

// Service defines all planning operations: program increments, sprints
// and the team's time-off calendar.
type Service interface {
	ListPIs(ctx context.Context) ([]*models.ProgramIncrement, error)
	CreatePI(ctx context.Context, name, startDate, endDate string) (*models.ProgramIncrement, error)
	UpdatePI(ctx context.Context, id int, name, startDate, endDate string) error
	DeletePI(ctx context.Context, id int) error

	ListSprints(ctx context.Context) ([]*models.Sprint, error)
	CreateSprint(ctx context.Context, piID *int, name, startDate, endDate string) (*models.Sprint, error)
	UpdateSprint(ctx context.Context, id int, name, startDate, endDate string) error
	DeleteSprint(ctx context.Context, id int) error

	ListTimeOff(ctx context.Context) ([]*models.TimeOff, error)
	CreateTimeOff(ctx context.Context, date, category, note string) (*models.TimeOff, error)
	DeleteTimeOff(ctx context.Context, id int) error
}

type service struct {
	repo database.DataStore
}

// NewService creates a new planning service
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

func (s *service) ListPIs(ctx context.Context) ([]*models.ProgramIncrement, error) {
	pis, err := s.repo.GetPIs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list program increments: %w", err)
	}
	return pis, nil
}

func (s *service) CreatePI(ctx context.Context, name, startDate, endDate string) (*models.ProgramIncrement, error) {
	if err := validateWindow(name, startDate, endDate); err != nil {
		return nil, err
	}
	created, err := s.repo.CreatePI(ctx, &models.ProgramIncrement{
		Name:      name,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create program increment: %w", err)
	}
	return created, nil
}

func (s *service) UpdatePI(ctx context.Context, id int, name, startDate, endDate string) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := validateWindow(name, startDate, endDate); err != nil {
		return err
	}
	if err := s.repo.UpdatePI(ctx, id, name, startDate, endDate); err != nil {
		return fmt.Errorf("failed to update program increment: %w", err)
	}
	return nil
}

func (s *service) DeletePI(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := s.repo.DeletePI(ctx, id); err != nil {
		return fmt.Errorf("failed to delete program increment: %w", err)
	}
	return nil
}

func (s *service) ListSprints(ctx context.Context) ([]*models.Sprint, error) {
	sprints, err := s.repo.GetSprints(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list sprints: %w", err)
	}
	return sprints, nil
}

func (s *service) CreateSprint(ctx context.Context, piID *int, name, startDate, endDate string) (*models.Sprint, error) {
	if err := validateWindow(name, startDate, endDate); err != nil {
		return nil, err
	}
	created, err := s.repo.CreateSprint(ctx, &models.Sprint{
		PIID:      piID,
		Name:      name,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sprint: %w", err)
	}
	return created, nil
}

func (s *service) UpdateSprint(ctx context.Context, id int, name, startDate, endDate string) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := validateWindow(name, startDate, endDate); err != nil {
		return err
	}
	if err := s.repo.UpdateSprint(ctx, id, name, startDate, endDate); err != nil {
		return fmt.Errorf("failed to update sprint: %w", err)
	}
	return nil
}

func (s *service) DeleteSprint(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := s.repo.DeleteSprint(ctx, id); err != nil {
		return fmt.Errorf("failed to delete sprint: %w", err)
	}
	return nil
}

func (s *service) ListTimeOff(ctx context.Context) ([]*models.TimeOff, error) {
	entries, err := s.repo.GetTimeOff(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list time off: %w", err)
	}
	return entries, nil
}

func (s *service) CreateTimeOff(ctx context.Context, date, category, note string) (*models.TimeOff, error) {
	if date == "" {
		return nil, ErrMissingDate
	}
	if _, ok := timeline.ParseDay(date); !ok {
		return nil, fmt.Errorf("%w: %q", ErrBadDate, date)
	}
	created, err := s.repo.CreateTimeOff(ctx, &models.TimeOff{
		Date:     date,
		Category: category,
		Note:     note,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create time off: %w", err)
	}
	return created, nil
}

func (s *service) DeleteTimeOff(ctx context.Context, id int) error {
	if id <= 0 {
		return ErrInvalidID
	}
	if err := s.repo.DeleteTimeOff(ctx, id); err != nil {
		return fmt.Errorf("failed to delete time off: %w", err)
	}
	return nil
}

// validateWindow checks the shared name + optional date pair shape used
// by both program increments and sprints.
func validateWindow(name, startDate, endDate string) error {
	if name == "" {
		return ErrEmptyName
	}
	for _, d := range []string{startDate, endDate} {
		if d == "" {
			continue
		}
		if _, ok := timeline.ParseDay(d); !ok {
			return fmt.Errorf("%w: %q", ErrBadDate, d)
		}
	}
	return nil
}
