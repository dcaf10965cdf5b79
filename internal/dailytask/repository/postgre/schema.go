package postgre

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS tasks (
	id          TEXT PRIMARY KEY,
	title       TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	category    TEXT NOT NULL,
	completed   BOOLEAN NOT NULL DEFAULT FALSE,
	feedback    TEXT,
	date        DATE NOT NULL,
	user_id     TEXT NOT NULL,
	image_url   TEXT,
	link_url    TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE UNIQUE INDEX IF NOT EXISTS tasks_user_date_category_idx ON tasks (user_id, date, category);

CREATE TABLE IF NOT EXISTS user_preferences (
	id                  TEXT PRIMARY KEY,
	user_id             TEXT NOT NULL,
	dietary_preferences TEXT[] NOT NULL DEFAULT '{}',
	fitness_level       TEXT NOT NULL,
	content_interests   TEXT[] NOT NULL DEFAULT '{}',
	created_at          TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE INDEX IF NOT EXISTS user_preferences_user_idx ON user_preferences (user_id, created_at DESC);
`

// Migrate creates the tasks and user_preferences tables when absent.
func Migrate(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("migrate postgres schema: %w", err)
	}
	return nil
}
