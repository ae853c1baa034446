package template

import (
	"testing"

	"github.com/alexanderramin/mailforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRegistry() *Registry {
	return NewRegistry(
		&domain.EmailTemplate{ID: "b", Name: "Bravo", Category: domain.CategorySales, Tags: []string{"Outreach"}},
		&domain.EmailTemplate{ID: "a", Name: "Alpha", Category: domain.CategoryBusiness, Description: "Quarterly review"},
		&domain.EmailTemplate{ID: "c", Name: "Charlie", Category: domain.CategorySales, Featured: true},
	)
}

func TestRegistry_ListFeaturedFirst(t *testing.T) {
	reg := testRegistry()

	var ids []string
	for _, tmpl := range reg.List() {
		ids = append(ids, tmpl.ID)
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
	assert.Equal(t, 3, reg.Len())
}

func TestRegistry_Get(t *testing.T) {
	reg := testRegistry()

	tmpl, ok := reg.Get("a")
	require.True(t, ok)
	assert.Equal(t, "Alpha", tmpl.Name)

	_, ok = reg.Get("zzz")
	assert.False(t, ok)
}

func TestRegistry_LaterTemplateOverrides(t *testing.T) {
	reg := NewRegistry(
		&domain.EmailTemplate{ID: "a", Name: "Builtin", Source: SourceBuiltin},
		&domain.EmailTemplate{ID: "a", Name: "Custom", Source: "/tmp/a.yaml"},
	)

	tmpl, ok := reg.Get("a")
	require.True(t, ok)
	assert.Equal(t, "Custom", tmpl.Name)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_ByCategoryAndFeatured(t *testing.T) {
	reg := testRegistry()

	assert.Len(t, reg.ByCategory(domain.CategorySales), 2)
	assert.Empty(t, reg.ByCategory(domain.CategorySupport))

	featured := reg.Featured()
	require.Len(t, featured, 1)
	assert.Equal(t, "c", featured[0].ID)
}

func TestRegistry_Search(t *testing.T) {
	reg := testRegistry()

	tests := []struct {
		query string
		want  []string
	}{
		{"alpha", []string{"a"}},
		{"QUARTERLY", []string{"a"}},
		{"outreach", []string{"b"}},
		{"", []string{"c", "a", "b"}},
		{"nothing", nil},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			var ids []string
			for _, tmpl := range reg.Search(tt.query) {
				ids = append(ids, tmpl.ID)
			}
			assert.Equal(t, tt.want, ids)
		})
	}
}
