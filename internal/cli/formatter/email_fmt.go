package formatter

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/alexanderramin/mailforge/internal/domain"
	"github.com/alexanderramin/mailforge/internal/llm"
	"github.com/charmbracelet/lipgloss"
)

var subjectStyle = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)

// FormatEmail renders a generated email with its subject, body and a stats
// footer.
func FormatEmail(e *domain.GeneratedEmail) string {
	subject, body := domain.SplitEmail(e.Content)

	var b strings.Builder
	if subject != "" {
		b.WriteString(StyleDim.Render("Subject: ") + subjectStyle.Render(subject) + "\n\n")
	}
	b.WriteString(StyleFg.Render(body))
	b.WriteString("\n\n")
	b.WriteString(FormatStats(domain.ComputeStats(e.Content)))
	b.WriteString("  " + SourcePill(e))

	return RenderBox(e.TemplateID, b.String())
}

// FormatStats renders word, character and reading-time counts.
func FormatStats(s domain.EmailStats) string {
	return Dim(fmt.Sprintf("%s · %s · %d min read",
		Pluralize(s.Words, "word"), Pluralize(s.Characters, "char"), s.ReadingMinutes))
}

// FormatHistoryList renders past generations newest first.
func FormatHistoryList(emails []*domain.GeneratedEmail) string {
	headers := []string{"ID", "TEMPLATE", "SUBJECT", "SOURCE", "CREATED"}
	rows := make([][]string, 0, len(emails))
	for _, e := range emails {
		rows = append(rows, []string{
			TruncID(e.ID),
			e.TemplateID,
			Truncate(domain.CoalesceStr(e.Subject, "(no subject)"), 48),
			SourcePill(e),
			Dim(HumanTimestamp(e.CreatedAt)),
		})
	}
	return RenderBox("History", RenderTable(headers, rows))
}

// FormatSession renders the saved values and last email for a template.
func FormatSession(s *domain.Session) string {
	var b strings.Builder
	b.WriteString(Header("Saved values"))
	b.WriteString("\n")

	if len(s.Values) == 0 {
		b.WriteString(Dim("  none") + "\n")
	} else {
		keys := make([]string, 0, len(s.Values))
		for k := range s.Values {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		rows := make([][]string, 0, len(keys))
		for _, k := range keys {
			rows = append(rows, []string{k, Truncate(s.Values[k], 60)})
		}
		b.WriteString(RenderTable([]string{"FIELD", "VALUE"}, rows))
	}

	if s.GeneratedEmail != "" {
		b.WriteString("\n")
		b.WriteString(Header("Last email"))
		b.WriteString("\n")
		b.WriteString(s.GeneratedEmail)
		b.WriteString("\n")
	}
	if !s.UpdatedAt.IsZero() {
		b.WriteString("\n" + Dim("Updated "+HumanTimestamp(s.UpdatedAt)) + "\n")
	}

	return RenderBox("Session · "+s.TemplateID, b.String())
}

// FormatExampleList renders the example gallery.
func FormatExampleList(examples []domain.Example) string {
	headers := []string{"#", "TITLE", "TEMPLATE", "TONE", "USE CASE"}
	rows := make([][]string, 0, len(examples))
	for _, ex := range examples {
		rows = append(rows, []string{
			Dim(fmt.Sprint(ex.ID)),
			Bold(ex.Title),
			ex.TemplateID,
			StylePurple.Render(ex.Tone),
			Truncate(ex.UseCase, 40),
		})
	}
	return RenderBox("Examples", RenderTable(headers, rows))
}

func FormatExample(ex *domain.Example) string {
	var b strings.Builder
	b.WriteString(Bold(ex.Title) + "  " + StylePurple.Render(ex.Tone) + "\n")
	b.WriteString(Dim(ex.UseCase) + "\n\n")
	b.WriteString(ex.FullEmail + "\n\n")
	b.WriteString(FormatStats(domain.ComputeStats(ex.FullEmail)))
	return RenderBox(ex.TemplateID, b.String())
}

// FormatProviders renders one row per LLM provider. A REACHABLE column is
// added when any provider was probed.
func FormatProviders(providers []llm.ProviderStatus) string {
	probed := slices.ContainsFunc(providers, func(p llm.ProviderStatus) bool { return p.Reachable != nil })

	headers := []string{"PROVIDER", "CONFIGURED", "DEFAULT", "MODEL", "MODELS"}
	if probed {
		headers = append(headers, "REACHABLE")
	}
	rows := make([][]string, 0, len(providers))
	for _, p := range providers {
		name := p.Name
		if p.Default {
			name = StyleHeader.Render(name)
		}
		row := []string{
			name,
			Check(p.Configured),
			Check(p.Default),
			p.DefaultModel,
			Dim(Truncate(strings.Join(p.Models, ", "), 50)),
		}
		if probed {
			row = append(row, reachability(p.Reachable))
		}
		rows = append(rows, row)
	}
	return RenderBox("Providers", RenderTable(headers, rows))
}

func reachability(up *bool) string {
	switch {
	case up == nil:
		return Dim("–")
	case *up:
		return StyleGreen.Render("up")
	default:
		return StyleRed.Render("down")
	}
}
