package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/mailforge/internal/domain"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("not found")

// SessionRepo stores the last form values and generated email per template.
// SaveValues and SaveEmail each update only their own column, creating the
// row when it does not exist yet.
type SessionRepo interface {
	Get(ctx context.Context, templateID string) (*domain.Session, error)
	SaveValues(ctx context.Context, templateID string, values map[string]string) error
	SaveEmail(ctx context.Context, templateID, email string) error
	Delete(ctx context.Context, templateID string) error
	DeleteAll(ctx context.Context) (int64, error)
}

type EmailRepo interface {
	Create(ctx context.Context, e *domain.GeneratedEmail) error
	GetByID(ctx context.Context, id string) (*domain.GeneratedEmail, error)
	// List returns emails newest first. An empty templateID lists every
	// template; a limit <= 0 means no limit.
	List(ctx context.Context, templateID string, limit int) ([]*domain.GeneratedEmail, error)
	Delete(ctx context.Context, id string) error
}
