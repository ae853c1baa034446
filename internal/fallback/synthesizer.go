// Package fallback writes complete emails locally when no generation
// provider is available. Every function here is pure: the same template ID
// and values always produce the same bytes.
package fallback

import (
	"fmt"
	"sort"
	"strings"
)

// Rule assembles one template's email from its values.
type Rule func(v Values) string

var rules = map[string]Rule{
	"professional-business": professionalBusiness,
	"cold-outreach":         coldOutreach,
	"customer-support":      customerSupport,
	"job-application":       jobApplication,
	"event-invitation":      eventInvitation,
}

// Synthesize returns a "Subject:"-prefixed email for templateID. It never
// fails: unknown templates get a generic note naming the template.
func Synthesize(templateID string, values map[string]string) string {
	rule, ok := rules[templateID]
	if !ok {
		return unknownTemplate(templateID)
	}
	return rule(Values(values))
}

// Known reports whether templateID has a dedicated rule.
func Known(templateID string) bool {
	_, ok := rules[templateID]
	return ok
}

// TemplateIDs returns the IDs with a dedicated rule, sorted.
func TemplateIDs() []string {
	ids := make([]string, 0, len(rules))
	for id := range rules {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func unknownTemplate(templateID string) string {
	name := strings.TrimSpace(templateID)
	if name == "" {
		name = "unknown"
	}
	l := newLetter("Generated Email")
	l.add(fmt.Sprintf("Demo email generated for the %q template with your provided variables.", name))
	return l.String()
}
