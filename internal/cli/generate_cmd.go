package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/alexanderramin/mailforge/internal/cli/formatter"
	"github.com/alexanderramin/mailforge/internal/domain"
	"github.com/alexanderramin/mailforge/internal/service"
	tmpl "github.com/alexanderramin/mailforge/internal/template"
	"github.com/spf13/cobra"
)

type generateOptions struct {
	vars     []string
	provider providerFlags
	raw      bool
	view     bool
	noSave   bool
}

func newGenerateCmd(app *App) *cobra.Command {
	var opts generateOptions

	cmd := &cobra.Command{
		Use:     "generate ID",
		Aliases: []string{"gen"},
		Short:   "Generate an email from a template",
		Long: `Generate an email from a template.

Values come from --var flags. Without any --var on an interactive terminal a
form opens, pre-filled with the values saved from the last run.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, app, args[0], opts)
		},
	}

	addVarFlag(cmd.Flags(), &opts.vars)
	addProviderFlags(cmd.Flags(), &opts.provider)
	cmd.Flags().BoolVar(&opts.raw, "raw", false, "print the plain email text only")
	cmd.Flags().BoolVar(&opts.view, "view", false, "open the email in a scrollable viewer")
	cmd.Flags().BoolVar(&opts.noSave, "no-save", false, "do not record history or update the session")

	return cmd
}

func runGenerate(cmd *cobra.Command, app *App, templateID string, opts generateOptions) error {
	ctx := cmd.Context()

	t, err := app.Templates.Get(ctx, templateID)
	if err != nil {
		return err
	}

	values, err := parseVars(opts.vars)
	if err != nil {
		return err
	}
	if len(opts.vars) == 0 && app.interactive() {
		values, err = promptValues(ctx, app, t)
		if err != nil {
			return err
		}
	}

	if fieldErrs := tmpl.ValidateValues(t, values); fieldErrs != nil {
		printFieldErrors(cmd.ErrOrStderr(), fieldErrs)
		return fmt.Errorf("%d field(s) need attention", len(fieldErrs))
	}

	stop := func() {}
	if app.interactive() && !opts.raw {
		stop = formatter.StartSpinner(cmd.ErrOrStderr(), "Writing your email…")
	}
	email, err := app.Generation.Generate(ctx, service.GenerateRequest{
		TemplateID: t.ID,
		Values:     values,
		Provider:   opts.provider.provider,
		Model:      opts.provider.model,
		Offline:    opts.provider.offline,
		Persist:    !opts.noSave,
	})
	stop()
	if err != nil {
		return err
	}

	return showEmail(cmd.OutOrStdout(), email, opts.raw, opts.view)
}

// promptValues runs the variable form, starting from the saved session.
func promptValues(ctx context.Context, app *App, t *domain.EmailTemplate) (map[string]string, error) {
	defaults := map[string]string{}
	if s, err := app.Sessions.Get(ctx, t.ID); err == nil {
		defaults = s.Values
	} else {
		app.Logger.Warn().Err(err).Str("template", t.ID).Msg("loading saved values")
	}

	vf := newVariableForm(t, defaults)
	if err := vf.form.RunWithContext(ctx); err != nil {
		return nil, err
	}
	return vf.values(), nil
}

func showEmail(w io.Writer, email *domain.GeneratedEmail, raw, view bool) error {
	switch {
	case raw:
		_, err := fmt.Fprintln(w, email.Content)
		return err
	case view:
		return runViewer(email.TemplateID, formatter.FormatEmail(email))
	default:
		_, err := fmt.Fprintln(w, formatter.FormatEmail(email))
		return err
	}
}

func printFieldErrors(w io.Writer, errs tmpl.FieldErrors) {
	for _, name := range sortedKeys(errs) {
		fmt.Fprintf(w, "  %s %s\n", formatter.StyleRed.Render("✖"), errs[name])
	}
}
