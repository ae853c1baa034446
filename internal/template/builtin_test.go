package template

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/mailforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var builtinIDs = []string{
	"cold-outreach",
	"customer-support",
	"event-invitation",
	"job-application",
	"professional-business",
}

func TestLoadBuiltinTemplates(t *testing.T) {
	templates, err := LoadBuiltinTemplates()
	require.NoError(t, err)
	require.Len(t, templates, len(builtinIDs))

	var ids []string
	for _, tmpl := range templates {
		ids = append(ids, tmpl.ID)
		assert.Equal(t, SourceBuiltin, tmpl.Source)
		assert.NotEmpty(t, tmpl.PromptText, tmpl.ID)
		assert.Empty(t, ValidateTemplate(tmpl), tmpl.ID)
		assert.Empty(t, LintTemplate(tmpl), tmpl.ID)
	}
	assert.ElementsMatch(t, builtinIDs, ids)

	for i := 1; i < len(templates); i++ {
		assert.LessOrEqual(t, templates[i-1].Name, templates[i].Name)
	}
}

func TestLoadBuiltinTemplates_ColdOutreachOptions(t *testing.T) {
	templates, err := LoadBuiltinTemplates()
	require.NoError(t, err)

	reg := NewRegistry(templates...)
	tmpl, ok := reg.Get("cold-outreach")
	require.True(t, ok)

	outreach := tmpl.Variable("outreachType")
	require.NotNil(t, outreach)
	assert.Equal(t, domain.KindSelect, outreach.Kind)
	assert.Equal(t, []string{"Customer", "Partner", "Investor", "Professional Contact"}, outreach.Options)

	cta := tmpl.Variable("callToAction")
	require.NotNil(t, cta)
	assert.Len(t, cta.Options, 8)

	value := tmpl.Variable("valueProposition")
	require.NotNil(t, value)
	require.NotNil(t, value.Validation)
	assert.Equal(t, 20, *value.Validation.MinLength)
	assert.Equal(t, 800, *value.Validation.MaxLength)
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	custom := `id: thank-you
name: Thank You Note
category: personal
description: Short thanks
prompt: Write a thank-you note to {recipient}.
variables:
  - name: recipient
    label: Recipient
    type: text
    required: true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "thanks.yml"), []byte(custom), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0o644))

	templates, err := LoadDir(dir)
	require.NoError(t, err)
	require.Len(t, templates, 1)

	tmpl := templates[0]
	assert.Equal(t, "thank-you", tmpl.ID)
	assert.Equal(t, filepath.Join(dir, "thanks.yml"), tmpl.Source)
	assert.Equal(t, []string{"recipient"}, tmpl.RequiredVariables())
}

func TestLoadDir_MissingDirectory(t *testing.T) {
	templates, err := LoadDir(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Empty(t, templates)

	templates, err = LoadDir("")
	require.NoError(t, err)
	assert.Empty(t, templates)
}

func TestLoadDir_RejectsInvalidTemplate(t *testing.T) {
	dir := t.TempDir()
	bad := `id: broken
name: Broken
category: finance
prompt: "{x}"
variables:
  - name: x
    type: select
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.yaml"), []byte(bad), 0o644))

	_, err := LoadDir(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken.yaml")
	assert.Contains(t, err.Error(), "category")
	assert.Contains(t, err.Error(), "requires options")
}

func TestLoadBuiltinExamples(t *testing.T) {
	examples, err := LoadBuiltinExamples()
	require.NoError(t, err)
	require.NotEmpty(t, examples)

	seen := map[int]bool{}
	for _, ex := range examples {
		assert.False(t, seen[ex.ID], "duplicate example id %d", ex.ID)
		seen[ex.ID] = true
		assert.Contains(t, builtinIDs, ex.TemplateID)
		assert.Contains(t, ex.FullEmail, "Subject:")
	}

	for _, id := range builtinIDs {
		assert.NotEmpty(t, ExamplesByTemplate(examples, id), id)
	}
	assert.Len(t, ExamplesByTemplate(examples, ""), len(examples))
	assert.Empty(t, ExamplesByTemplate(examples, "missing"))
}
