package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/mailforge/internal/domain"
	tmpl "github.com/alexanderramin/mailforge/internal/template"
)

type templateService struct {
	registry *tmpl.Registry
}

func NewTemplateService(registry *tmpl.Registry) TemplateService {
	return &templateService{registry: registry}
}

func (s *templateService) List(ctx context.Context) ([]*domain.EmailTemplate, error) {
	return s.registry.List(), nil
}

func (s *templateService) Get(ctx context.Context, id string) (*domain.EmailTemplate, error) {
	t, ok := s.registry.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrTemplateNotFound, id)
	}
	return t, nil
}

func (s *templateService) ByCategory(ctx context.Context, category domain.Category) ([]*domain.EmailTemplate, error) {
	if !category.Valid() {
		return nil, fmt.Errorf("unknown category %q", category)
	}
	return s.registry.ByCategory(category), nil
}

func (s *templateService) Featured(ctx context.Context) ([]*domain.EmailTemplate, error) {
	return s.registry.Featured(), nil
}

func (s *templateService) Search(ctx context.Context, query string) ([]*domain.EmailTemplate, error) {
	return s.registry.Search(query), nil
}
