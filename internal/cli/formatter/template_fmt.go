package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mailforge/internal/domain"
)

// FormatTemplateList renders templates as a table inside a box.
func FormatTemplateList(templates []*domain.EmailTemplate) string {
	headers := []string{"ID", "NAME", "CATEGORY", "FIELDS", ""}
	rows := make([][]string, 0, len(templates))

	for _, t := range templates {
		star := ""
		if t.Featured {
			star = StyleYellow.Render("★")
		}
		rows = append(rows, []string{
			Dim(t.ID),
			Bold(t.Name),
			CategoryBadge(t.Category),
			fmt.Sprintf("%d/%d", len(t.RequiredVariables()), len(t.Variables)),
			star,
		})
	}

	return RenderBox("Templates", RenderTable(headers, rows))
}

// FormatTemplateShow renders a template card with its variables.
func FormatTemplateShow(t *domain.EmailTemplate) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("%s  %s\n", StyleBold.Render(t.Name), CategoryBadge(t.Category)))
	if t.Description != "" {
		b.WriteString(Dim(t.Description) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("ID    "), t.ID))
	if t.Source != "" {
		b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("SOURCE"), Dim(t.Source)))
	}
	if len(t.Tags) > 0 {
		b.WriteString(fmt.Sprintf("  %s  %s\n", StyleDim.Render("TAGS  "), StylePurple.Render(strings.Join(t.Tags, ", "))))
	}

	b.WriteString("\n")
	b.WriteString(Header("Variables"))
	b.WriteString("\n")

	headers := []string{"NAME", "LABEL", "TYPE", "REQ", "OPTIONS"}
	rows := make([][]string, 0, len(t.Variables))
	for _, v := range t.Variables {
		rows = append(rows, []string{
			v.Name,
			v.Label,
			Dim(string(v.Kind)),
			Check(v.Required),
			Truncate(strings.Join(v.Options, ", "), 40),
		})
	}
	b.WriteString(RenderTable(headers, rows))

	return RenderBox("", b.String())
}

// FormatPromptExplain lists the placeholders of a prompt and whether each
// one has a value.
func FormatPromptExplain(t *domain.EmailTemplate, placeholders []string, values map[string]string) string {
	headers := []string{"PLACEHOLDER", "DEFINED", "VALUE"}
	rows := make([][]string, 0, len(placeholders))
	for _, name := range placeholders {
		value := strings.TrimSpace(values[name])
		shown := StyleRed.Render("(empty)")
		if value != "" {
			shown = Truncate(value, 50)
		}
		rows = append(rows, []string{"{" + name + "}", Check(t.Variable(name) != nil), shown})
	}
	return Header("Placeholders") + "\n" + RenderTable(headers, rows)
}
