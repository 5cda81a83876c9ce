package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/kamholtz/trak/internal/models"
)

// RiskRepo provides data access for the risk register.
type RiskRepo struct {
	db *sql.DB
}

const riskColumns = `id, title, description, impact, probability, mitigation,
	owner, status, review_date, resolved_date, project, created_at, updated_at`

func scanRisk(row rowScanner) (*models.Risk, error) {
	risk := &models.Risk{}
	err := row.Scan(
		&risk.ID, &risk.Title, &risk.Description, &risk.Impact,
		&risk.Probability, &risk.Mitigation, &risk.Owner, &risk.Status,
		&risk.ReviewDate, &risk.ResolvedDate, &risk.Project,
		&risk.CreatedAt, &risk.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return risk, nil
}

// Create inserts a new risk and returns it with its assigned ID.
func (r *RiskRepo) Create(ctx context.Context, risk *models.Risk) (*models.Risk, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO risks (title, description, impact, probability, mitigation,
			owner, status, review_date, resolved_date, project)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		risk.Title, risk.Description, risk.Impact, risk.Probability,
		risk.Mitigation, risk.Owner, risk.Status, risk.ReviewDate,
		risk.ResolvedDate, risk.Project,
	)
	if err != nil {
		return nil, err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}
	return r.GetByID(ctx, int(id))
}

// GetByID retrieves a single risk.
func (r *RiskRepo) GetByID(ctx context.Context, id int) (*models.Risk, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+riskColumns+` FROM risks WHERE id = ?`, id)
	risk, err := scanRisk(row)
	if err == sql.ErrNoRows {
		return nil, models.ErrRiskNotFound
	}
	return risk, err
}

// GetAll retrieves every risk ordered by review date ascending, matching
// the register view.
func (r *RiskRepo) GetAll(ctx context.Context) ([]*models.Risk, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+riskColumns+` FROM risks ORDER BY review_date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var risks []*models.Risk
	for rows.Next() {
		risk, err := scanRisk(rows)
		if err != nil {
			return nil, err
		}
		risks = append(risks, risk)
	}
	return risks, rows.Err()
}

// RiskPatch carries the optional fields of a risk update.
type RiskPatch struct {
	Title        *string
	Description  *string
	Impact       *string
	Probability  *string
	Mitigation   *string
	Owner        *string
	Status       *string
	ReviewDate   *string
	ResolvedDate *string
	Project      *string
}

// Update applies a patch to a risk. At least one field must be set.
func (r *RiskRepo) Update(ctx context.Context, id int, patch RiskPatch) error {
	var sets []string
	var args []any

	add := func(column string, value any) {
		sets = append(sets, column+" = ?")
		args = append(args, value)
	}

	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Impact != nil {
		add("impact", *patch.Impact)
	}
	if patch.Probability != nil {
		add("probability", *patch.Probability)
	}
	if patch.Mitigation != nil {
		add("mitigation", *patch.Mitigation)
	}
	if patch.Owner != nil {
		add("owner", *patch.Owner)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.ReviewDate != nil {
		add("review_date", *patch.ReviewDate)
	}
	if patch.ResolvedDate != nil {
		add("resolved_date", *patch.ResolvedDate)
	}
	if patch.Project != nil {
		add("project", *patch.Project)
	}

	if len(sets) == 0 {
		return fmt.Errorf("risk update requires at least one field")
	}

	args = append(args, id)
	result, err := r.db.ExecContext(ctx,
		`UPDATE risks SET `+strings.Join(sets, ", ")+`, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		args...)
	if err != nil {
		return err
	}
	return requireRowAffected(result, models.ErrRiskNotFound)
}

// Delete removes a risk.
func (r *RiskRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM risks WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRowAffected(result, models.ErrRiskNotFound)
}
