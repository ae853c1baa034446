package cli

import (
	"github.com/alexanderramin/mailforge/internal/httpapi"
	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			router := httpapi.NewRouter(httpapi.Services{
				Templates:  app.Templates,
				Generation: app.Generation,
				Sessions:   app.Sessions,
				History:    app.History,
				Examples:   app.Examples,
			}, app.Logger)
			return httpapi.NewServer(addr, router, app.Logger).Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", app.HTTPAddr, "listen address")
	return cmd
}
