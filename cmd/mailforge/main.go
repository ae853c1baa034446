package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alexanderramin/mailforge/internal/cli"
	"github.com/alexanderramin/mailforge/internal/config"
	"github.com/alexanderramin/mailforge/internal/db"
	"github.com/alexanderramin/mailforge/internal/llm"
	"github.com/alexanderramin/mailforge/internal/logging"
	"github.com/alexanderramin/mailforge/internal/repository"
	"github.com/alexanderramin/mailforge/internal/service"
	tmpl "github.com/alexanderramin/mailforge/internal/template"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}
	logging.SetDefault(logger)

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Templates: builtins first so user files with the same ID replace them.
	builtin, err := tmpl.LoadBuiltinTemplates()
	if err != nil {
		return err
	}
	user, err := tmpl.LoadDir(cfg.TemplatesDir)
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}
	registry := tmpl.NewRegistry(append(builtin, user...)...)
	logger.Debug().
		Int("builtin", len(builtin)).
		Int("user", len(user)).
		Str("dir", cfg.TemplatesDir).
		Msg("templates loaded")
	logTemplateWarnings(logger, registry)

	examples, err := tmpl.LoadBuiltinExamples()
	if err != nil {
		return err
	}

	// LLM providers
	var observer llm.Observer = llm.NoopObserver{}
	if cfg.LLM.LogCalls {
		observer = llm.NewLogObserver(logging.Component("llm"))
	}
	providers := llm.NewRegistry(cfg.LLM, observer)

	// Wire repositories and services
	sessionRepo := repository.NewSQLiteSessionRepo(database)
	emailRepo := repository.NewSQLiteEmailRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)
	useCases := service.NewLogUseCaseObserver(logging.Component("service"))

	templateSvc := service.NewTemplateService(registry)
	app := &cli.App{
		Templates:  templateSvc,
		Generation: service.NewGenerationService(templateSvc, providers, uow, logging.Component("generation"), useCases),
		Sessions:   service.NewSessionService(sessionRepo),
		History:    service.NewHistoryService(emailRepo),
		Examples:   service.NewExampleService(examples),
		Providers:  providers,
		Logger:     logger,
		HTTPAddr:   cfg.HTTPAddr,
	}

	// Forms and the spinner only make sense on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

// logTemplateWarnings reports placeholder/variable mismatches once at
// startup. They never block loading.
func logTemplateWarnings(logger zerolog.Logger, registry *tmpl.Registry) {
	for _, t := range registry.List() {
		for _, w := range tmpl.LintTemplate(t) {
			logger.Warn().Str("template", t.ID).Str("source", t.Source).Msg(w)
		}
	}
}
