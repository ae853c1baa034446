package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/mailforge/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Inspect or clear saved form values",
	}

	cmd.AddCommand(
		newSessionShowCmd(app),
		newSessionClearCmd(app),
	)

	return cmd
}

func newSessionShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show TEMPLATE_ID",
		Short: "Show the saved values and last email for a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := app.Sessions.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatSession(s))
			return nil
		},
	}
}

func newSessionClearCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "clear [TEMPLATE_ID]",
		Short: "Forget saved values for one template, or all with --all",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if all {
				n, err := app.Sessions.ClearAll(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Cleared %s.\n", formatter.Pluralize(int(n), "session"))
				return nil
			}
			if len(args) == 0 {
				return errors.New("pass a template ID or --all")
			}
			if err := app.Sessions.Clear(ctx, args[0]); err != nil {
				return err
			}
			fmt.Fprintf(out, "Cleared session for %s.\n", args[0])
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "clear every template's session")
	return cmd
}
