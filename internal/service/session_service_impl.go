package service

import (
	"context"
	"errors"

	"github.com/alexanderramin/mailforge/internal/domain"
	"github.com/alexanderramin/mailforge/internal/repository"
)

type sessionService struct {
	sessions repository.SessionRepo
}

func NewSessionService(sessions repository.SessionRepo) SessionService {
	return &sessionService{sessions: sessions}
}

func (s *sessionService) Get(ctx context.Context, templateID string) (*domain.Session, error) {
	session, err := s.sessions.Get(ctx, templateID)
	if errors.Is(err, repository.ErrNotFound) {
		return &domain.Session{TemplateID: templateID, Values: map[string]string{}}, nil
	}
	return session, err
}

func (s *sessionService) SaveValues(ctx context.Context, templateID string, values map[string]string) error {
	return s.sessions.SaveValues(ctx, templateID, values)
}

func (s *sessionService) Clear(ctx context.Context, templateID string) error {
	return s.sessions.Delete(ctx, templateID)
}

func (s *sessionService) ClearAll(ctx context.Context) (int64, error) {
	return s.sessions.DeleteAll(ctx)
}
