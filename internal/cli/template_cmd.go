package cli

import (
	"fmt"

	"github.com/alexanderramin/mailforge/internal/cli/formatter"
	"github.com/alexanderramin/mailforge/internal/domain"
	"github.com/spf13/cobra"
)

func newTemplateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "template",
		Aliases: []string{"templates", "t"},
		Short:   "Browse email templates",
	}

	cmd.AddCommand(
		newTemplateListCmd(app),
		newTemplateShowCmd(app),
	)

	return cmd
}

func newTemplateListCmd(app *App) *cobra.Command {
	var category, search string
	var featured bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			var templates []*domain.EmailTemplate
			var err error
			switch {
			case search != "":
				templates, err = app.Templates.Search(ctx, search)
			case featured:
				templates, err = app.Templates.Featured(ctx)
			default:
				templates, err = app.Templates.List(ctx)
			}
			if err != nil {
				return err
			}

			templates = filterTemplates(templates, domain.Category(category), featured)
			out := cmd.OutOrStdout()
			if len(templates) == 0 {
				fmt.Fprintln(out, "No templates found.")
				return nil
			}
			fmt.Fprintln(out, formatter.FormatTemplateList(templates))
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "filter by category (business, personal, marketing, support, sales)")
	cmd.Flags().BoolVar(&featured, "featured", false, "only featured templates")
	cmd.Flags().StringVarP(&search, "search", "s", "", "search names, descriptions and tags")

	return cmd
}

func filterTemplates(templates []*domain.EmailTemplate, category domain.Category, featured bool) []*domain.EmailTemplate {
	out := templates[:0:0]
	for _, t := range templates {
		if category != "" && t.Category != category {
			continue
		}
		if featured && !t.Featured {
			continue
		}
		out = append(out, t)
	}
	return out
}

func newTemplateShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show ID",
		Short: "Show a template and its variables",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := app.Templates.Get(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.FormatTemplateShow(t))
			return nil
		},
	}
}
