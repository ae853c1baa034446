package template

import (
	"fmt"
	"regexp"

	"github.com/alexanderramin/mailforge/internal/domain"
)

// ValidateTemplate checks a template for structural errors.
// Returns a slice of errors (empty if valid).
func ValidateTemplate(t *domain.EmailTemplate) []error {
	var errs []error

	if t.ID == "" {
		errs = append(errs, fmt.Errorf("template id is required"))
	}
	if t.Name == "" {
		errs = append(errs, fmt.Errorf("template name is required"))
	}
	if !t.Category.Valid() {
		errs = append(errs, fmt.Errorf("template category %q is not valid", t.Category))
	}

	names := map[string]bool{}
	for i, v := range t.Variables {
		if v.Name == "" {
			errs = append(errs, fmt.Errorf("variable[%d]: name is required", i))
		} else if names[v.Name] {
			errs = append(errs, fmt.Errorf("variable[%d]: duplicate name %q", i, v.Name))
		}
		names[v.Name] = true

		if !v.Kind.Valid() {
			errs = append(errs, fmt.Errorf("variable[%d]: unknown type %q", i, v.Kind))
		}
		if v.Kind.HasOptions() && len(v.Options) == 0 {
			errs = append(errs, fmt.Errorf("variable[%d]: %s requires options", i, v.Kind))
		}

		if v.Validation == nil {
			continue
		}
		if v.Validation.Pattern != "" {
			if _, err := regexp.Compile(v.Validation.Pattern); err != nil {
				errs = append(errs, fmt.Errorf("variable[%d]: invalid pattern: %w", i, err))
			}
		}
		minLen, maxLen := v.Validation.MinLength, v.Validation.MaxLength
		if minLen != nil && maxLen != nil && *minLen > *maxLen {
			errs = append(errs, fmt.Errorf("variable[%d]: minLength %d exceeds maxLength %d", i, *minLen, *maxLen))
		}
	}

	return errs
}

// LintTemplate reports mismatches between the prompt's placeholders and the
// declared variables. These are warnings; compilation tolerates both.
func LintTemplate(t *domain.EmailTemplate) []string {
	var warnings []string

	used := map[string]bool{}
	for _, name := range Placeholders(t.PromptText) {
		used[name] = true
		if t.Variable(name) == nil {
			warnings = append(warnings, fmt.Sprintf("placeholder {%s} has no variable", name))
		}
	}
	for _, v := range t.Variables {
		if !used[v.Name] {
			warnings = append(warnings, fmt.Sprintf("variable %q is not used in the prompt", v.Name))
		}
	}

	return warnings
}
