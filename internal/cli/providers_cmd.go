package cli

import (
	"encoding/json"
	"fmt"

	"github.com/alexanderramin/mailforge/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newProvidersCmd(app *App) *cobra.Command {
	var asJSON, check bool

	cmd := &cobra.Command{
		Use:   "providers",
		Short: "List LLM providers and their configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.Providers == nil {
				return fmt.Errorf("no provider registry configured")
			}
			providers := app.Providers.Providers()
			if check {
				providers = app.Providers.Probe(cmd.Context())
			}
			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(providers)
			}
			fmt.Fprintln(out, formatter.FormatProviders(providers))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print as JSON")
	cmd.Flags().BoolVar(&check, "check", false, "contact each configured provider and report whether it is reachable")
	return cmd
}
