package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Seed replaces every record with the sample data set. Destructive by
// design: callers confirm before invoking.
func Seed(ctx context.Context, db *sql.DB) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, table := range []string{"program_increments", "sprints", "tasks", "risks", "time_off"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	result, err := tx.ExecContext(ctx,
		`INSERT INTO program_increments (name, start_date, end_date) VALUES (?, ?, ?)`,
		"PI-1", "2025-10-20", "2025-12-14")
	if err != nil {
		return fmt.Errorf("failed to seed program increment: %w", err)
	}
	piID, err := result.LastInsertId()
	if err != nil {
		return err
	}

	sprints := []struct {
		name  string
		start string
		end   string
	}{
		{"Sprint 1", "2025-10-20", "2025-11-02"},
		{"Sprint 2", "2025-11-03", "2025-11-16"},
		{"Sprint 3", "2025-11-17", "2025-11-30"},
		{"Sprint 4", "2025-12-01", "2025-12-14"},
	}
	for _, s := range sprints {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO sprints (pi_id, name, start_date, end_date) VALUES (?, ?, ?, ?)`,
			piID, s.name, s.start, s.end); err != nil {
			return fmt.Errorf("failed to seed sprint: %w", err)
		}
	}

	tasks := []struct {
		title, description, status, typ, priority string
		points                                    int
		due, start, plannedStart, plannedEnd      string
		sprint                                    int
		deps                                      string
	}{
		{"Design Landing UI", "Create the dashboard hero and KPIs", "to-do", "task", "high",
			3, "2025-11-02", "2025-10-26", "2025-10-26", "2025-11-02", 1, "[]"},
		{"Build Kanban", "Drag-and-drop columns", "in progress", "task", "medium",
			5, "2025-11-10", "2025-10-27", "2025-10-27", "2025-11-10", 2, "[1]"},
		{"Bug: Gantt zoom glitch", "Zoom past month throws error", "backlog", "bug", "high",
			1, "2025-11-05", "", "", "", 2, "[]"},
		{"Integrate Outlook Draft", "Weekly report automation", "blocked", "task", "high",
			2, "2025-11-07", "", "", "", 2, "[1,2]"},
		{"Dependency: Seed Data", "Provide default datasets", "done", "dep", "low",
			1, "2025-10-28", "2025-10-27", "2025-10-25", "2025-10-27", 1, "[]"},
	}
	for _, t := range tasks {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (title, description, status, type, priority, story_points,
				due_date, start_date, planned_start_date, planned_end_date,
				pi_id, sprint_id, assignee, dependencies)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.title, t.description, t.status, t.typ, t.priority, t.points,
			t.due, t.start, t.plannedStart, t.plannedEnd,
			piID, t.sprint, "Kameron", t.deps); err != nil {
			return fmt.Errorf("failed to seed task: %w", err)
		}
	}

	risks := []struct {
		title, description, impact, probability, mitigation, status, review string
	}{
		{"Schedule risk", "Competing school deadlines", "high", "medium",
			"Block calendar and reduce scope", "monitoring", "2025-10-30"},
		{"Tech risk", "Outlook COM not available", "medium", "medium",
			"Fallback to .eml / text file", "open", "2025-11-01"},
	}
	for _, r := range risks {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO risks (title, description, impact, probability, mitigation,
				owner, status, review_date, project)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			r.title, r.description, r.impact, r.probability, r.mitigation,
			"Kameron", r.status, r.review, "Trak"); err != nil {
			return fmt.Errorf("failed to seed risk: %w", err)
		}
	}

	timeOff := []struct{ date, category, note string }{
		{"2025-11-27", "holiday", "Thanksgiving Day"},
		{"2025-11-28", "holiday", "Thanksgiving Friday"},
	}
	for _, o := range timeOff {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO time_off (date, category, note) VALUES (?, ?, ?)`,
			o.date, o.category, o.note); err != nil {
			return fmt.Errorf("failed to seed time off: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}
