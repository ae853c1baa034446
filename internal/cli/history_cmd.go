package cli

import (
	"fmt"

	"github.com/alexanderramin/mailforge/internal/cli/formatter"
	"github.com/alexanderramin/mailforge/internal/service"
	"github.com/spf13/cobra"
)

func newHistoryCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Browse previously generated emails",
	}

	cmd.AddCommand(
		newHistoryListCmd(app),
		newHistoryShowCmd(app),
		newHistoryRemoveCmd(app),
	)

	return cmd
}

func newHistoryListCmd(app *App) *cobra.Command {
	var templateID string
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List generated emails, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			emails, err := app.History.List(cmd.Context(), templateID, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(emails) == 0 {
				fmt.Fprintln(out, "No emails generated yet.")
				return nil
			}
			fmt.Fprintln(out, formatter.FormatHistoryList(emails))
			return nil
		},
	}

	cmd.Flags().StringVar(&templateID, "template", "", "only emails from this template")
	cmd.Flags().IntVarP(&limit, "limit", "n", service.DefaultHistoryLimit, "maximum number of emails")

	return cmd
}

func newHistoryShowCmd(app *App) *cobra.Command {
	var raw, view bool

	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show one generated email",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			email, err := app.History.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return showEmail(cmd.OutOrStdout(), email, raw, view)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the plain email text only")
	cmd.Flags().BoolVar(&view, "view", false, "open the email in a scrollable viewer")

	return cmd
}

func newHistoryRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "remove ID",
		Aliases: []string{"rm"},
		Short:   "Delete a generated email from history",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.History.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s.\n", args[0])
			return nil
		},
	}
}
