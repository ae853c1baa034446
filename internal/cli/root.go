package cli

import (
	"context"

	"github.com/alexanderramin/mailforge/internal/llm"
	"github.com/alexanderramin/mailforge/internal/service"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// ProviderLister reports LLM provider status. *llm.Registry satisfies it.
type ProviderLister interface {
	Providers() []llm.ProviderStatus
	Probe(ctx context.Context) []llm.ProviderStatus
}

// App holds references to all service interfaces used by CLI commands.
type App struct {
	Templates  service.TemplateService
	Generation service.GenerationService
	Sessions   service.SessionService
	History    service.HistoryService
	Examples   service.ExampleService
	Providers  ProviderLister

	Logger   zerolog.Logger
	HTTPAddr string

	// IsInteractive reports whether stdin is a terminal. Nil means never.
	IsInteractive func() bool
}

func (a *App) interactive() bool {
	return a.IsInteractive != nil && a.IsInteractive()
}

// NewRootCmd creates the top-level "mailforge" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "mailforge",
		Short:         "Generate emails from templates with an LLM or offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newTemplateCmd(app),
		newPromptCmd(app),
		newGenerateCmd(app),
		newSessionCmd(app),
		newHistoryCmd(app),
		newExampleCmd(app),
		newProvidersCmd(app),
		newServeCmd(app),
	)

	return root
}
