package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/mailforge/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

var categoryStyles = map[domain.Category]lipgloss.Style{
	domain.CategoryBusiness:  StyleBlue,
	domain.CategoryPersonal:  StylePurple,
	domain.CategoryMarketing: StyleYellow,
	domain.CategorySupport:   StyleGreen,
	domain.CategorySales:     StyleRed,
}

// CategoryBadge renders a capitalized category label in its own color.
func CategoryBadge(c domain.Category) string {
	if c == "" {
		return StyleDim.Render("--")
	}
	style, ok := categoryStyles[c]
	if !ok {
		style = StyleDim
	}
	label := strings.ToUpper(string(c[:1])) + string(c[1:])
	return style.Render(label)
}

// SourcePill shows where an email came from, with the provider or the
// fallback reason.
func SourcePill(e *domain.GeneratedEmail) string {
	if e.Source == domain.SourceLLM {
		label := "● " + e.Provider
		if e.Model != "" {
			label += " · " + e.Model
		}
		return StyleGreen.Render(label)
	}
	label := "○ fallback"
	if e.FallbackReason != "" {
		label += " (" + e.FallbackReason + ")"
	}
	return StyleYellow.Render(label)
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}

// Check renders a green check or a dim dash.
func Check(ok bool) string {
	if ok {
		return StyleGreen.Render("✔")
	}
	return StyleDim.Render("–")
}
