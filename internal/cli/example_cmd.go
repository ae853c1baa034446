package cli

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/mailforge/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newExampleCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "example",
		Aliases: []string{"examples"},
		Short:   "Browse sample emails",
	}

	cmd.AddCommand(newExampleListCmd(app), newExampleShowCmd(app))
	return cmd
}

func newExampleListCmd(app *App) *cobra.Command {
	var templateID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List sample emails",
		RunE: func(cmd *cobra.Command, args []string) error {
			examples, err := app.Examples.List(cmd.Context(), templateID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(examples) == 0 {
				fmt.Fprintln(out, "No examples found.")
				return nil
			}
			fmt.Fprintln(out, formatter.FormatExampleList(examples))
			return nil
		},
	}

	cmd.Flags().StringVar(&templateID, "template", "", "only examples for this template")
	return cmd
}

func newExampleShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show one sample email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("example ID must be a number: %q", args[0])
			}
			ex, err := app.Examples.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatExample(ex))
			return nil
		},
	}
}
