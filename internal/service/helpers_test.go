package service

import (
	"context"
	"sync"
	"testing"

	"github.com/alexanderramin/mailforge/internal/llm"
	tmpl "github.com/alexanderramin/mailforge/internal/template"
	"github.com/stretchr/testify/require"
)

// stubClient is a scripted llm.Client.
type stubClient struct {
	name  string
	text  string
	model string
	err   error

	mu    sync.Mutex
	calls []llm.GenerateRequest
}

func (c *stubClient) Name() string { return c.name }

func (c *stubClient) Generate(ctx context.Context, req llm.GenerateRequest) (*llm.GenerateResponse, error) {
	c.mu.Lock()
	c.calls = append(c.calls, req)
	c.mu.Unlock()
	if c.err != nil {
		return nil, c.err
	}
	return &llm.GenerateResponse{Text: c.text, Provider: c.name, Model: c.model}, nil
}

func (c *stubClient) Available(context.Context) bool { return c.err == nil }

func (c *stubClient) callCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}

// staticChain returns the same clients for every provider name.
type staticChain struct {
	clients []llm.Client
	err     error
}

func (s staticChain) Chain(string) ([]llm.Client, error) { return s.clients, s.err }

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (o *recordingObserver) ObserveUseCase(_ context.Context, e UseCaseEvent) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func builtinTemplateService(t *testing.T) TemplateService {
	t.Helper()
	templates, err := tmpl.LoadBuiltinTemplates()
	require.NoError(t, err)
	return NewTemplateService(tmpl.NewRegistry(templates...))
}
