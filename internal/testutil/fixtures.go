package testutil

import (
	"time"

	"github.com/alexanderramin/mailforge/internal/domain"
	"github.com/google/uuid"
)

type EmailOption func(*domain.GeneratedEmail)

func WithSource(source domain.GenerationSource) EmailOption {
	return func(e *domain.GeneratedEmail) {
		e.Source = source
		if source == domain.SourceLLM {
			e.Provider = "openai"
			e.Model = "gpt-4o-mini"
			e.FallbackReason = ""
		}
	}
}

func WithCreatedAt(t time.Time) EmailOption {
	return func(e *domain.GeneratedEmail) {
		e.CreatedAt = t
	}
}

func WithVariables(values map[string]string) EmailOption {
	return func(e *domain.GeneratedEmail) {
		e.Variables = values
	}
}

// NewTestEmail builds a fallback-generated email for templateID.
func NewTestEmail(templateID, subject string, opts ...EmailOption) *domain.GeneratedEmail {
	e := &domain.GeneratedEmail{
		ID:             uuid.New().String(),
		TemplateID:     templateID,
		Subject:        subject,
		Content:        "Subject: " + subject + "\n\nHello,\n\nBody text.",
		Variables:      map[string]string{"recipientName": "Sarah"},
		Source:         domain.SourceFallback,
		FallbackReason: "offline",
		CreatedAt:      time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// NewTestTemplate builds a small valid template with one required text
// variable and one optional select.
func NewTestTemplate(id string) *domain.EmailTemplate {
	return &domain.EmailTemplate{
		ID:          id,
		Name:        "Test " + id,
		Category:    domain.CategoryBusiness,
		Description: "Template used in tests",
		PromptText:  "Write to {recipientName} in a {tone} tone.",
		Variables: []domain.Variable{
			{Name: "recipientName", Label: "Recipient Name", Kind: domain.KindText, Required: true},
			{Name: "tone", Label: "Tone", Kind: domain.KindSelect, Options: []string{"formal", "friendly"}},
		},
	}
}
