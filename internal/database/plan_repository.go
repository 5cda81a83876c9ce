package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/kamholtz/trak/internal/models"
)

// ErrRecordNotFound indicates a planning record lookup matched no row.
var ErrRecordNotFound = errors.New("record not found")

// PlanRepo provides data access for the planning records: program
// increments, sprints and time off.
type PlanRepo struct {
	db *sql.DB
}

// ============================================================================
// Program Increments
// ============================================================================

// CreatePI inserts a new program increment.
func (r *PlanRepo) CreatePI(ctx context.Context, pi *models.ProgramIncrement) (*models.ProgramIncrement, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO program_increments (name, start_date, end_date) VALUES (?, ?, ?)`,
		pi.Name, pi.StartDate, pi.EndDate)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	created := *pi
	created.ID = int(id)
	return &created, nil
}

// GetPIs retrieves all program increments ordered by start date.
func (r *PlanRepo) GetPIs(ctx context.Context) ([]*models.ProgramIncrement, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, start_date, end_date FROM program_increments ORDER BY start_date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var pis []*models.ProgramIncrement
	for rows.Next() {
		pi := &models.ProgramIncrement{}
		if err := rows.Scan(&pi.ID, &pi.Name, &pi.StartDate, &pi.EndDate); err != nil {
			return nil, err
		}
		pis = append(pis, pi)
	}
	return pis, rows.Err()
}

// UpdatePI rewrites a program increment's fields.
func (r *PlanRepo) UpdatePI(ctx context.Context, id int, name, startDate, endDate string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE program_increments SET name = ?, start_date = ?, end_date = ? WHERE id = ?`,
		name, startDate, endDate, id)
	if err != nil {
		return err
	}
	return requireRowAffected(result, ErrRecordNotFound)
}

// DeletePI removes a program increment.
func (r *PlanRepo) DeletePI(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM program_increments WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRowAffected(result, ErrRecordNotFound)
}

// ============================================================================
// Sprints
// ============================================================================

// CreateSprint inserts a new sprint.
func (r *PlanRepo) CreateSprint(ctx context.Context, s *models.Sprint) (*models.Sprint, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO sprints (pi_id, name, start_date, end_date) VALUES (?, ?, ?, ?)`,
		nullableInt(s.PIID), s.Name, s.StartDate, s.EndDate)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	created := *s
	created.ID = int(id)
	return &created, nil
}

// GetSprints retrieves all sprints ordered by start date.
func (r *PlanRepo) GetSprints(ctx context.Context) ([]*models.Sprint, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, pi_id, name, start_date, end_date FROM sprints ORDER BY start_date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sprints []*models.Sprint
	for rows.Next() {
		s := &models.Sprint{}
		var piID sql.NullInt64
		if err := rows.Scan(&s.ID, &piID, &s.Name, &s.StartDate, &s.EndDate); err != nil {
			return nil, err
		}
		if piID.Valid {
			v := int(piID.Int64)
			s.PIID = &v
		}
		sprints = append(sprints, s)
	}
	return sprints, rows.Err()
}

// UpdateSprint rewrites a sprint's fields.
func (r *PlanRepo) UpdateSprint(ctx context.Context, id int, name, startDate, endDate string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE sprints SET name = ?, start_date = ?, end_date = ? WHERE id = ?`,
		name, startDate, endDate, id)
	if err != nil {
		return err
	}
	return requireRowAffected(result, ErrRecordNotFound)
}

// DeleteSprint removes a sprint.
func (r *PlanRepo) DeleteSprint(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM sprints WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRowAffected(result, ErrRecordNotFound)
}

// ============================================================================
// Time Off
// ============================================================================

// CreateTimeOff inserts a new non-working day.
func (r *PlanRepo) CreateTimeOff(ctx context.Context, t *models.TimeOff) (*models.TimeOff, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO time_off (date, category, note) VALUES (?, ?, ?)`,
		t.Date, t.Category, t.Note)
	if err != nil {
		return nil, err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	created := *t
	created.ID = int(id)
	return &created, nil
}

// GetTimeOff retrieves all non-working days ordered by date.
func (r *PlanRepo) GetTimeOff(ctx context.Context) ([]*models.TimeOff, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, category, note FROM time_off ORDER BY date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offs []*models.TimeOff
	for rows.Next() {
		t := &models.TimeOff{}
		if err := rows.Scan(&t.ID, &t.Date, &t.Category, &t.Note); err != nil {
			return nil, err
		}
		offs = append(offs, t)
	}
	return offs, rows.Err()
}

// DeleteTimeOff removes a non-working day.
func (r *PlanRepo) DeleteTimeOff(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM time_off WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRowAffected(result, ErrRecordNotFound)
}
