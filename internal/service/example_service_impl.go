package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/mailforge/internal/domain"
	tmpl "github.com/alexanderramin/mailforge/internal/template"
)

type exampleService struct {
	examples []domain.Example
}

func NewExampleService(examples []domain.Example) ExampleService {
	return &exampleService{examples: examples}
}

func (s *exampleService) List(ctx context.Context, templateID string) ([]domain.Example, error) {
	return tmpl.ExamplesByTemplate(s.examples, templateID), nil
}

func (s *exampleService) Get(ctx context.Context, id int) (*domain.Example, error) {
	for i := range s.examples {
		if s.examples[i].ID == id {
			ex := s.examples[i]
			return &ex, nil
		}
	}
	return nil, fmt.Errorf("%w: %d", ErrExampleNotFound, id)
}
