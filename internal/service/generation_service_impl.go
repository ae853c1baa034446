package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/mailforge/internal/db"
	"github.com/alexanderramin/mailforge/internal/domain"
	"github.com/alexanderramin/mailforge/internal/fallback"
	"github.com/alexanderramin/mailforge/internal/llm"
	"github.com/alexanderramin/mailforge/internal/repository"
	tmpl "github.com/alexanderramin/mailforge/internal/template"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ProviderChain yields the LLM clients to try for a provider name.
// *llm.Registry satisfies it.
type ProviderChain interface {
	Chain(name string) ([]llm.Client, error)
}

type generationService struct {
	templates TemplateService
	providers ProviderChain
	uow       db.UnitOfWork
	logger    zerolog.Logger
	observer  UseCaseObserver
	now       func() time.Time
}

// NewGenerationService wires generation. providers may be nil, in which case
// every email is synthesized locally. uow may be nil, in which case Persist
// is ignored.
func NewGenerationService(
	templates TemplateService,
	providers ProviderChain,
	uow db.UnitOfWork,
	logger zerolog.Logger,
	observers ...UseCaseObserver,
) GenerationService {
	return &generationService{
		templates: templates,
		providers: providers,
		uow:       uow,
		logger:    logger,
		observer:  useCaseObserverOrNoop(observers),
		now:       time.Now,
	}
}

func (s *generationService) Preview(ctx context.Context, templateID string, values map[string]string) (string, error) {
	t, err := s.templates.Get(ctx, templateID)
	if err != nil {
		return "", err
	}
	return tmpl.CompilePrompt(t.PromptText, values), nil
}

func (s *generationService) Generate(ctx context.Context, req GenerateRequest) (email *domain.GeneratedEmail, err error) {
	startedAt := s.now().UTC()
	fields := map[string]any{"template": req.TemplateID}
	defer observe(ctx, s.observer, "generate-email", startedAt, fields, &err)

	t, err := s.resolveTemplate(ctx, req)
	if err != nil {
		return nil, err
	}
	fields["template"] = t.ID

	if req.Validate {
		if fieldErrs := tmpl.ValidateValues(t, req.Values); fieldErrs != nil {
			return nil, fieldErrs
		}
	}

	email = &domain.GeneratedEmail{
		ID:         uuid.New().String(),
		TemplateID: t.ID,
		Variables:  domain.CopyValues(req.Values),
		CreatedAt:  startedAt,
	}

	if req.Offline {
		email.FallbackReason = ReasonOffline
	} else {
		prompt := tmpl.CompilePrompt(t.PromptText, req.Values)
		s.generateRemote(ctx, req, prompt, email)
	}

	if email.Content == "" {
		email.Source = domain.SourceFallback
		email.Content = fallback.Synthesize(t.ID, req.Values)
	}
	email.Subject, _ = domain.SplitEmail(email.Content)

	fields["source"] = string(email.Source)
	if email.Provider != "" {
		fields["provider"] = email.Provider
	}
	if email.FallbackReason != "" {
		fields["fallback_reason"] = email.FallbackReason
	}

	if req.Persist {
		s.persist(ctx, email)
	}
	return email, nil
}

func (s *generationService) resolveTemplate(ctx context.Context, req GenerateRequest) (*domain.EmailTemplate, error) {
	if req.Template != nil {
		if errs := tmpl.ValidateTemplate(req.Template); len(errs) > 0 {
			return nil, fmt.Errorf("%w: %w", ErrInvalidTemplate, errors.Join(errs...))
		}
		return req.Template, nil
	}
	return s.templates.Get(ctx, req.TemplateID)
}

// generateRemote walks the provider chain and fills email on the first
// non-empty response. Failures only set FallbackReason.
func (s *generationService) generateRemote(ctx context.Context, req GenerateRequest, prompt string, email *domain.GeneratedEmail) {
	if s.providers == nil {
		email.FallbackReason = ReasonNoProvider
		return
	}
	chain, err := s.providers.Chain(req.Provider)
	if err != nil {
		s.logger.Warn().Err(err).Str("provider", req.Provider).Msg("provider chain unavailable, using fallback")
		email.FallbackReason = llm.ErrorCode(err)
		return
	}
	if len(chain) == 0 {
		email.FallbackReason = ReasonNoProvider
		return
	}

	var lastErr error
	for _, client := range chain {
		model := req.Model
		// An explicit model only applies to the provider it was chosen for.
		if req.Provider != "" && client.Name() != req.Provider {
			model = ""
		}
		resp, err := client.Generate(ctx, llm.GenerateRequest{Prompt: prompt, Model: model})
		if err == nil {
			text := llm.NormalizeEmail(resp.Text)
			if text != "" {
				email.Source = domain.SourceLLM
				email.Content = text
				email.Provider = resp.Provider
				email.Model = resp.Model
				return
			}
			err = llm.ErrEmptyResponse
		}
		lastErr = err
		s.logger.Warn().Err(err).Str("provider", client.Name()).Str("template", email.TemplateID).Msg("provider failed")
		if ctx.Err() != nil {
			break
		}
	}
	email.FallbackReason = llm.ErrorCode(lastErr)
}

// persist records the email in history and refreshes the session. Sessions
// are a cache, so a failure here is logged and the email is still returned.
func (s *generationService) persist(ctx context.Context, email *domain.GeneratedEmail) {
	if s.uow == nil {
		return
	}
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		if err := repository.NewSQLiteEmailRepo(tx).Create(ctx, email); err != nil {
			return err
		}
		sessions := repository.NewSQLiteSessionRepo(tx)
		if err := sessions.SaveValues(ctx, email.TemplateID, email.Variables); err != nil {
			return err
		}
		return sessions.SaveEmail(ctx, email.TemplateID, email.Content)
	})
	if err != nil {
		s.logger.Error().Err(err).Str("email_id", email.ID).Str("template", email.TemplateID).Msg("persisting generated email")
	}
}
