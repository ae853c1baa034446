package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/mailforge/internal/domain"
)

var (
	ErrTemplateNotFound = errors.New("template not found")
	ErrExampleNotFound  = errors.New("example not found")
	ErrEmailNotFound    = errors.New("generated email not found")
	ErrInvalidTemplate  = errors.New("invalid template")
)

// Fallback reasons recorded on emails that did not come from a provider.
// Provider failures record llm.ErrorCode of the last error instead.
const (
	ReasonOffline    = "offline"
	ReasonNoProvider = "no_provider"
)

type TemplateService interface {
	List(ctx context.Context) ([]*domain.EmailTemplate, error)
	Get(ctx context.Context, id string) (*domain.EmailTemplate, error)
	ByCategory(ctx context.Context, category domain.Category) ([]*domain.EmailTemplate, error)
	Featured(ctx context.Context) ([]*domain.EmailTemplate, error)
	Search(ctx context.Context, query string) ([]*domain.EmailTemplate, error)
}

// GenerateRequest describes one email generation.
type GenerateRequest struct {
	TemplateID string
	// Template, when set, is used instead of looking TemplateID up.
	Template *domain.EmailTemplate
	Values   map[string]string
	Provider string
	Model    string
	// Offline skips every provider and synthesizes locally.
	Offline bool
	// Persist records the email in history and updates the template's
	// session.
	Persist bool
	// Validate rejects values that fail the template's variable rules with
	// template.FieldErrors.
	Validate bool
}

type GenerationService interface {
	Preview(ctx context.Context, templateID string, values map[string]string) (string, error)
	Generate(ctx context.Context, req GenerateRequest) (*domain.GeneratedEmail, error)
}

type SessionService interface {
	// Get returns an empty session, not an error, when nothing is stored.
	Get(ctx context.Context, templateID string) (*domain.Session, error)
	SaveValues(ctx context.Context, templateID string, values map[string]string) error
	Clear(ctx context.Context, templateID string) error
	ClearAll(ctx context.Context) (int64, error)
}

type HistoryService interface {
	List(ctx context.Context, templateID string, limit int) ([]*domain.GeneratedEmail, error)
	Get(ctx context.Context, id string) (*domain.GeneratedEmail, error)
	Delete(ctx context.Context, id string) error
}

type ExampleService interface {
	List(ctx context.Context, templateID string) ([]domain.Example, error)
	Get(ctx context.Context, id int) (*domain.Example, error)
}
