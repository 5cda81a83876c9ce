package database

import (
	"context"
	"database/sql"
)

// Schema holds the complete database schema. Date columns are TEXT in the
// YYYY-MM-DD wire form; the engine treats them as naive calendar days.
// Exported so testutil can build in-memory databases from the same source.
const Schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT DEFAULT '',
	status TEXT NOT NULL DEFAULT 'backlog',
	type TEXT DEFAULT 'task',
	priority TEXT DEFAULT 'medium',
	story_points INTEGER DEFAULT 0,
	parent_id INTEGER,
	due_date TEXT DEFAULT '',
	start_date TEXT DEFAULT '',
	end_date TEXT DEFAULT '',
	planned_start_date TEXT DEFAULT '',
	planned_end_date TEXT DEFAULT '',
	actual_end_date TEXT DEFAULT '',
	pi_id INTEGER,
	sprint_id INTEGER,
	assignee TEXT DEFAULT '',
	dependencies TEXT DEFAULT '[]',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status);
CREATE INDEX IF NOT EXISTS idx_tasks_due ON tasks(due_date);

CREATE TABLE IF NOT EXISTS risks (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	title TEXT NOT NULL,
	description TEXT DEFAULT '',
	impact TEXT DEFAULT '',
	probability TEXT DEFAULT '',
	mitigation TEXT DEFAULT '',
	owner TEXT DEFAULT '',
	status TEXT NOT NULL DEFAULT 'open',
	review_date TEXT DEFAULT '',
	resolved_date TEXT DEFAULT '',
	project TEXT DEFAULT '',
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_risks_review ON risks(review_date);

CREATE TABLE IF NOT EXISTS program_increments (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL,
	start_date TEXT DEFAULT '',
	end_date TEXT DEFAULT ''
);

CREATE TABLE IF NOT EXISTS sprints (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	pi_id INTEGER REFERENCES program_increments(id) ON DELETE SET NULL,
	name TEXT NOT NULL,
	start_date TEXT DEFAULT '',
	end_date TEXT DEFAULT ''
);

CREATE TABLE IF NOT EXISTS time_off (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	date TEXT NOT NULL,
	category TEXT DEFAULT '',
	note TEXT DEFAULT ''
);
`

// runMigrations creates the database schema if it does not exist yet
func runMigrations(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, Schema)
	return err
}
