package template

import (
	"fmt"
	"regexp"
	"slices"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/alexanderramin/mailforge/internal/domain"
)

// FieldErrors maps a variable name to its validation message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "invalid values: " + strings.Join(parts, "; ")
}

// ValidateValues checks form values against the template's variable
// definitions. Blank optional fields always pass. Returns nil when valid.
func ValidateValues(t *domain.EmailTemplate, values map[string]string) FieldErrors {
	errs := FieldErrors{}

	for _, v := range t.Variables {
		raw := values[v.Name]
		value := strings.TrimSpace(raw)
		if value == "" {
			if v.Required {
				errs[v.Name] = fmt.Sprintf("%s is required", labelOf(v))
			}
			continue
		}
		if msg := checkValue(v, value); msg != "" {
			errs[v.Name] = msg
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}

func checkValue(v domain.Variable, value string) string {
	label := labelOf(v)

	switch v.Kind {
	case domain.KindSelect:
		if !slices.Contains(v.Options, value) {
			return fmt.Sprintf("%s must be one of: %s", label, strings.Join(v.Options, ", "))
		}
	case domain.KindMultiSelect:
		for _, part := range SplitMulti(value) {
			if !slices.Contains(v.Options, part) {
				return fmt.Sprintf("%s has unknown option %q", label, part)
			}
		}
	case domain.KindNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return fmt.Sprintf("%s must be a number", label)
		}
	}

	if rule := v.Validation; rule != nil {
		n := utf8.RuneCountInString(value)
		if rule.MinLength != nil && n < *rule.MinLength {
			return fmt.Sprintf("%s must be at least %d characters", label, *rule.MinLength)
		}
		if rule.MaxLength != nil && n > *rule.MaxLength {
			return fmt.Sprintf("%s must be at most %d characters", label, *rule.MaxLength)
		}
		if rule.Pattern != "" {
			re, err := regexp.Compile(rule.Pattern)
			if err != nil || !re.MatchString(value) {
				return fmt.Sprintf("%s has an invalid format", label)
			}
		}
	}

	return ""
}

// SplitMulti splits a comma-separated multiselect value into trimmed,
// non-empty entries.
func SplitMulti(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func labelOf(v domain.Variable) string {
	return domain.CoalesceStr(v.Label, v.Name)
}
