package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/mailforge/internal/db"
	"github.com/alexanderramin/mailforge/internal/domain"
)

// SQLiteSessionRepo implements SessionRepo using a SQLite database.
type SQLiteSessionRepo struct {
	db db.DBTX
}

// NewSQLiteSessionRepo creates a SQLiteSessionRepo. Pass a *sql.Tx to scope
// the repo to a transaction.
func NewSQLiteSessionRepo(db db.DBTX) *SQLiteSessionRepo {
	return &SQLiteSessionRepo{db: db}
}

func (r *SQLiteSessionRepo) Get(ctx context.Context, templateID string) (*domain.Session, error) {
	query := `SELECT template_id, form_data, generated_email, updated_at
		FROM sessions WHERE template_id = ?`

	var s domain.Session
	var formData, updatedAt string
	err := r.db.QueryRowContext(ctx, query, templateID).Scan(
		&s.TemplateID, &formData, &s.GeneratedEmail, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("session %s: %w", templateID, ErrNotFound)
		}
		return nil, fmt.Errorf("scanning session: %w", err)
	}

	values, err := decodeValues(formData)
	if err != nil {
		return nil, fmt.Errorf("session %s: %w", templateID, err)
	}
	s.Values = values
	s.UpdatedAt = parseTime(updatedAt)
	return &s, nil
}

func (r *SQLiteSessionRepo) SaveValues(ctx context.Context, templateID string, values map[string]string) error {
	formData, err := encodeValues(values)
	if err != nil {
		return err
	}
	query := `INSERT INTO sessions (template_id, form_data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(template_id) DO UPDATE SET
			form_data = excluded.form_data,
			updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, templateID, formData, nowUTC()); err != nil {
		return fmt.Errorf("saving session values: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) SaveEmail(ctx context.Context, templateID, email string) error {
	query := `INSERT INTO sessions (template_id, generated_email, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(template_id) DO UPDATE SET
			generated_email = excluded.generated_email,
			updated_at = excluded.updated_at`
	if _, err := r.db.ExecContext(ctx, query, templateID, email, nowUTC()); err != nil {
		return fmt.Errorf("saving session email: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) Delete(ctx context.Context, templateID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE template_id = ?`, templateID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}
	return nil
}

func (r *SQLiteSessionRepo) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions`)
	if err != nil {
		return 0, fmt.Errorf("deleting sessions: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting deleted sessions: %w", err)
	}
	return n, nil
}
