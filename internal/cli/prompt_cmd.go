package cli

import (
	"fmt"

	"github.com/alexanderramin/mailforge/internal/cli/formatter"
	tmpl "github.com/alexanderramin/mailforge/internal/template"
	"github.com/spf13/cobra"
)

func newPromptCmd(app *App) *cobra.Command {
	var vars []string
	var explain bool

	cmd := &cobra.Command{
		Use:   "prompt ID",
		Short: "Print the compiled prompt for a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			values, err := parseVars(vars)
			if err != nil {
				return err
			}

			t, err := app.Templates.Get(ctx, args[0])
			if err != nil {
				return err
			}
			prompt, err := app.Generation.Preview(ctx, t.ID, values)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, prompt)
			if explain {
				fmt.Fprintln(out)
				fmt.Fprint(out, formatter.FormatPromptExplain(t, tmpl.Placeholders(t.PromptText), values))
				for _, w := range tmpl.LintTemplate(t) {
					fmt.Fprintln(out, formatter.StyleYellow.Render("warning: ")+w)
				}
			}
			return nil
		},
	}

	addVarFlag(cmd.Flags(), &vars)
	cmd.Flags().BoolVar(&explain, "explain", false, "list placeholders and which ones have values")

	return cmd
}
