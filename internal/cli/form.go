package cli

import (
	"errors"
	"slices"
	"strings"

	"github.com/alexanderramin/mailforge/internal/cli/formatter"
	"github.com/alexanderramin/mailforge/internal/domain"
	tmpl "github.com/alexanderramin/mailforge/internal/template"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const fieldsPerGroup = 4

// mailforgeHuhTheme returns a huh theme using the formatter palette.
func mailforgeHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.MultiSelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.ErrorMessage = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.ErrorIndicator = lipgloss.NewStyle().Foreground(formatter.ColorRed)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// variableForm binds one huh field per template variable. Values start from
// the given defaults, usually the saved session.
type variableForm struct {
	form   *huh.Form
	single map[string]*string
	multi  map[string]*[]string
}

func newVariableForm(t *domain.EmailTemplate, defaults map[string]string) *variableForm {
	vf := &variableForm{
		single: map[string]*string{},
		multi:  map[string]*[]string{},
	}

	fields := make([]huh.Field, 0, len(t.Variables))
	for _, v := range t.Variables {
		fields = append(fields, vf.field(v, defaults[v.Name]))
	}

	var groups []*huh.Group
	for start := 0; start < len(fields); start += fieldsPerGroup {
		end := min(start+fieldsPerGroup, len(fields))
		groups = append(groups, huh.NewGroup(fields[start:end]...))
	}
	if len(groups) == 0 {
		groups = append(groups, huh.NewGroup(huh.NewNote().Title(t.Name).Description("This template has no variables.")))
	}

	vf.form = huh.NewForm(groups...).WithTheme(mailforgeHuhTheme()).WithShowHelp(true)
	return vf
}

func (vf *variableForm) field(v domain.Variable, initial string) huh.Field {
	title := domain.CoalesceStr(v.Label, v.Name)
	if v.Required {
		title += " *"
	}

	switch v.Kind {
	case domain.KindSelect:
		value := initial
		vf.single[v.Name] = &value
		options := huh.NewOptions(v.Options...)
		if !v.Required {
			options = append([]huh.Option[string]{huh.NewOption("(none)", "")}, options...)
		}
		return huh.NewSelect[string]().
			Title(title).
			Description(v.Description).
			Options(options...).
			Value(&value)

	case domain.KindMultiSelect:
		selected := slices.DeleteFunc(tmpl.SplitMulti(initial), func(s string) bool {
			return !slices.Contains(v.Options, s)
		})
		vf.multi[v.Name] = &selected
		return huh.NewMultiSelect[string]().
			Title(title).
			Description(v.Description).
			Options(huh.NewOptions(v.Options...)...).
			Value(&selected).
			Validate(func(s []string) error {
				if v.Required && len(s) == 0 {
					return errors.New("pick at least one option")
				}
				return nil
			})

	case domain.KindTextarea:
		value := initial
		vf.single[v.Name] = &value
		return huh.NewText().
			Title(title).
			Description(v.Description).
			Placeholder(v.Placeholder).
			Lines(4).
			Value(&value).
			Validate(fieldValidator(v))

	default:
		value := initial
		vf.single[v.Name] = &value
		return huh.NewInput().
			Title(title).
			Description(v.Description).
			Placeholder(v.Placeholder).
			Value(&value).
			Validate(fieldValidator(v))
	}
}

// fieldValidator checks one value with the same rules ValidateValues
// applies to the whole form.
func fieldValidator(v domain.Variable) func(string) error {
	single := &domain.EmailTemplate{Variables: []domain.Variable{v}}
	return func(s string) error {
		if errs := tmpl.ValidateValues(single, map[string]string{v.Name: s}); errs != nil {
			return errors.New(errs[v.Name])
		}
		return nil
	}
}

// values returns the current form state. Multiselect picks are joined with
// ", ".
func (vf *variableForm) values() map[string]string {
	out := make(map[string]string, len(vf.single)+len(vf.multi))
	for name, v := range vf.single {
		out[name] = strings.TrimSpace(*v)
	}
	for name, v := range vf.multi {
		out[name] = strings.Join(*v, ", ")
	}
	return out
}
