package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/kamholtz/trak/internal/models"
)

// TaskRepo provides data access for tasks.
type TaskRepo struct {
	db *sql.DB
}

// taskColumns is the canonical select list, kept in sync with scanTask.
const taskColumns = `id, title, description, status, type, priority, story_points,
	parent_id, due_date, start_date, end_date,
	planned_start_date, planned_end_date, actual_end_date,
	pi_id, sprint_id, assignee, dependencies, created_at, updated_at`

// priorityRankExpr orders free-form priority labels most severe first in SQL,
// mirroring models.PriorityRank.
const priorityRankExpr = `CASE priority
	WHEN 'critical' THEN 0
	WHEN 'high' THEN 1
	WHEN 'medium' THEN 2
	WHEN 'low' THEN 3
	WHEN 'trivial' THEN 4
	ELSE 5 END`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask reads one task row, decoding nullable foreign keys and the
// dependencies JSON column.
func scanTask(row rowScanner) (*models.Task, error) {
	task := &models.Task{}
	var parentID, piID, sprintID sql.NullInt64
	var deps string

	err := row.Scan(
		&task.ID, &task.Title, &task.Description, &task.Status, &task.Type,
		&task.Priority, &task.StoryPoints,
		&parentID, &task.DueDate, &task.StartDate, &task.EndDate,
		&task.PlannedStartDate, &task.PlannedEndDate, &task.ActualEndDate,
		&piID, &sprintID, &task.Assignee, &deps,
		&task.CreatedAt, &task.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if parentID.Valid {
		v := int(parentID.Int64)
		task.ParentID = &v
	}
	if piID.Valid {
		v := int(piID.Int64)
		task.PIID = &v
	}
	if sprintID.Valid {
		v := int(sprintID.Int64)
		task.SprintID = &v
	}
	if deps != "" {
		// A corrupt dependencies column degrades to no dependencies; it
		// must not fail a whole snapshot fetch.
		_ = json.Unmarshal([]byte(deps), &task.Dependencies)
	}

	return task, nil
}

func nullableInt(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}

func marshalDeps(deps []int) string {
	if len(deps) == 0 {
		return "[]"
	}
	data, err := json.Marshal(deps)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// Create inserts a new task and returns it with its assigned ID and
// timestamps.
func (r *TaskRepo) Create(ctx context.Context, t *models.Task) (*models.Task, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO tasks (title, description, status, type, priority, story_points,
			parent_id, due_date, start_date, end_date,
			planned_start_date, planned_end_date, actual_end_date,
			pi_id, sprint_id, assignee, dependencies)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.Title, t.Description, t.Status, t.Type, t.Priority, t.StoryPoints,
		nullableInt(t.ParentID), t.DueDate, t.StartDate, t.EndDate,
		t.PlannedStartDate, t.PlannedEndDate, t.ActualEndDate,
		nullableInt(t.PIID), nullableInt(t.SprintID), t.Assignee,
		marshalDeps(t.Dependencies),
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

// GetByID retrieves a single task.
func (r *TaskRepo) GetByID(ctx context.Context, id int) (*models.Task, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = ?`, id)
	task, err := scanTask(row)
	if err == sql.ErrNoRows {
		return nil, models.ErrTaskNotFound
	}
	return task, err
}

// GetAll retrieves every task, most severe priority first, then by the
// effective due date ascending. This is the backlog list ordering.
func (r *TaskRepo) GetAll(ctx context.Context) ([]*models.Task, error) {
	return r.queryTasks(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 ORDER BY `+priorityRankExpr+`,
		 	CASE WHEN due_date != '' THEN due_date ELSE planned_end_date END,
		 	id`)
}

// GetByStatus retrieves tasks in one status bucket, same ordering as GetAll.
func (r *TaskRepo) GetByStatus(ctx context.Context, status models.Status) ([]*models.Task, error) {
	return r.queryTasks(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE status = ?
		 ORDER BY `+priorityRankExpr+`,
		 	CASE WHEN due_date != '' THEN due_date ELSE planned_end_date END,
		 	id`, status)
}

func (r *TaskRepo) queryTasks(ctx context.Context, query string, args ...any) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

// TaskPatch carries the optional fields of a task update. Nil pointers mean
// "leave unchanged"; this is the structured edit-request shape every edit
// path funnels through before a write reaches the store.
type TaskPatch struct {
	Title            *string
	Description      *string
	Status           *models.Status
	Type             *string
	Priority         *string
	StoryPoints      *int
	ParentID         *int
	DueDate          *string
	StartDate        *string
	EndDate          *string
	PlannedStartDate *string
	PlannedEndDate   *string
	ActualEndDate    *string
	PIID             *int
	SprintID         *int
	Assignee         *string
	Dependencies     *[]int
}

// Update applies a patch to a task. At least one field must be set.
func (r *TaskRepo) Update(ctx context.Context, id int, patch TaskPatch) error {
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
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.Type != nil {
		add("type", *patch.Type)
	}
	if patch.Priority != nil {
		add("priority", *patch.Priority)
	}
	if patch.StoryPoints != nil {
		add("story_points", *patch.StoryPoints)
	}
	if patch.ParentID != nil {
		add("parent_id", *patch.ParentID)
	}
	if patch.DueDate != nil {
		add("due_date", *patch.DueDate)
	}
	if patch.StartDate != nil {
		add("start_date", *patch.StartDate)
	}
	if patch.EndDate != nil {
		add("end_date", *patch.EndDate)
	}
	if patch.PlannedStartDate != nil {
		add("planned_start_date", *patch.PlannedStartDate)
	}
	if patch.PlannedEndDate != nil {
		add("planned_end_date", *patch.PlannedEndDate)
	}
	if patch.ActualEndDate != nil {
		add("actual_end_date", *patch.ActualEndDate)
	}
	if patch.PIID != nil {
		add("pi_id", *patch.PIID)
	}
	if patch.SprintID != nil {
		add("sprint_id", *patch.SprintID)
	}
	if patch.Assignee != nil {
		add("assignee", *patch.Assignee)
	}
	if patch.Dependencies != nil {
		add("dependencies", marshalDeps(*patch.Dependencies))
	}

	if len(sets) == 0 {
		return fmt.Errorf("task update requires at least one field")
	}

	args = append(args, id)
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET `+strings.Join(sets, ", ")+`, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		args...)
	if err != nil {
		return err
	}
	return requireRowAffected(result, models.ErrTaskNotFound)
}

// UpdateStatus moves a task to a new status bucket. This is the write behind
// every kanban move.
func (r *TaskRepo) UpdateStatus(ctx context.Context, id int, status models.Status) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE tasks SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		status, id)
	if err != nil {
		return err
	}
	return requireRowAffected(result, models.ErrTaskNotFound)
}

// Delete removes a task.
func (r *TaskRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return err
	}
	return requireRowAffected(result, models.ErrTaskNotFound)
}

// requireRowAffected translates a zero-row write into a not-found error.
func requireRowAffected(result sql.Result, notFound error) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
