package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/mailforge/internal/db"
	"github.com/alexanderramin/mailforge/internal/domain"
)

// SQLiteEmailRepo implements EmailRepo using a SQLite database.
type SQLiteEmailRepo struct {
	db db.DBTX
}

// NewSQLiteEmailRepo creates a new SQLiteEmailRepo.
func NewSQLiteEmailRepo(db db.DBTX) *SQLiteEmailRepo {
	return &SQLiteEmailRepo{db: db}
}

const emailColumns = `id, template_id, subject, content, variables, source, provider, model, fallback_reason, created_at`

func (r *SQLiteEmailRepo) Create(ctx context.Context, e *domain.GeneratedEmail) error {
	variables, err := encodeValues(e.Variables)
	if err != nil {
		return err
	}
	query := `INSERT INTO generated_emails (` + emailColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		e.ID,
		e.TemplateID,
		e.Subject,
		e.Content,
		variables,
		string(e.Source),
		e.Provider,
		e.Model,
		e.FallbackReason,
		formatTime(e.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting generated email: %w", err)
	}
	return nil
}

func (r *SQLiteEmailRepo) GetByID(ctx context.Context, id string) (*domain.GeneratedEmail, error) {
	query := `SELECT ` + emailColumns + ` FROM generated_emails WHERE id = ?`
	e, err := scanEmail(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("generated email: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning generated email: %w", err)
	}
	return e, nil
}

func (r *SQLiteEmailRepo) List(ctx context.Context, templateID string, limit int) ([]*domain.GeneratedEmail, error) {
	var b strings.Builder
	var args []any

	b.WriteString(`SELECT ` + emailColumns + ` FROM generated_emails`)
	if templateID != "" {
		b.WriteString(` WHERE template_id = ?`)
		args = append(args, templateID)
	}
	b.WriteString(` ORDER BY created_at DESC, rowid DESC`)
	if limit > 0 {
		b.WriteString(` LIMIT ?`)
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("listing generated emails: %w", err)
	}
	defer rows.Close()

	var emails []*domain.GeneratedEmail
	for rows.Next() {
		e, err := scanEmail(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning generated email row: %w", err)
		}
		emails = append(emails, e)
	}
	return emails, rows.Err()
}

func (r *SQLiteEmailRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM generated_emails WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting generated email: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("generated email: %w", ErrNotFound)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmail(row rowScanner) (*domain.GeneratedEmail, error) {
	var e domain.GeneratedEmail
	var variables, source, createdAt string

	err := row.Scan(
		&e.ID, &e.TemplateID, &e.Subject, &e.Content, &variables,
		&source, &e.Provider, &e.Model, &e.FallbackReason, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	e.Variables, err = decodeValues(variables)
	if err != nil {
		return nil, err
	}
	e.Source = domain.GenerationSource(source)
	e.CreatedAt = parseTime(createdAt)
	return &e, nil
}
