package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS sessions (
		template_id     TEXT PRIMARY KEY,
		form_data       TEXT NOT NULL DEFAULT '{}',
		generated_email TEXT NOT NULL DEFAULT '',
		updated_at      TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS generated_emails (
		id          TEXT PRIMARY KEY,
		template_id TEXT NOT NULL,
		subject     TEXT NOT NULL DEFAULT '',
		content     TEXT NOT NULL,
		variables   TEXT NOT NULL DEFAULT '{}',
		source      TEXT NOT NULL CHECK(source IN ('llm','fallback')),
		provider    TEXT NOT NULL DEFAULT '',
		model       TEXT NOT NULL DEFAULT '',
		created_at  TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_generated_emails_template
		ON generated_emails(template_id, created_at)`,

	`CREATE INDEX IF NOT EXISTS idx_generated_emails_created
		ON generated_emails(created_at)`,

	// Added after the first release; older databases gain the column here.
	`ALTER TABLE generated_emails ADD COLUMN fallback_reason TEXT NOT NULL DEFAULT ''`,
}
