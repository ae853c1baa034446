package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/alexanderramin/mailforge/internal/domain"
	"github.com/alexanderramin/mailforge/internal/repository"
)

// DefaultHistoryLimit applies when List is called with a limit <= 0.
const DefaultHistoryLimit = 20

type historyService struct {
	emails repository.EmailRepo
}

func NewHistoryService(emails repository.EmailRepo) HistoryService {
	return &historyService{emails: emails}
}

func (s *historyService) List(ctx context.Context, templateID string, limit int) ([]*domain.GeneratedEmail, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return s.emails.List(ctx, templateID, limit)
}

func (s *historyService) Get(ctx context.Context, id string) (*domain.GeneratedEmail, error) {
	e, err := s.emails.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrEmailNotFound, id)
	}
	return e, err
}

func (s *historyService) Delete(ctx context.Context, id string) error {
	err := s.emails.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrEmailNotFound, id)
	}
	return err
}
