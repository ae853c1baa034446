package template

import (
	"sort"
	"strings"

	"github.com/alexanderramin/mailforge/internal/domain"
)

// Registry indexes templates by ID. It is read-only after construction and
// safe for concurrent use.
type Registry struct {
	byID  map[string]*domain.EmailTemplate
	order []*domain.EmailTemplate
}

// NewRegistry indexes templates. A later template with an ID already seen
// replaces the earlier one, so user templates passed after the builtins
// override them.
func NewRegistry(templates ...*domain.EmailTemplate) *Registry {
	r := &Registry{byID: make(map[string]*domain.EmailTemplate, len(templates))}
	for _, t := range templates {
		if t == nil {
			continue
		}
		r.byID[t.ID] = t
	}

	r.order = make([]*domain.EmailTemplate, 0, len(r.byID))
	for _, t := range r.byID {
		r.order = append(r.order, t)
	}
	sort.Slice(r.order, func(i, j int) bool {
		a, b := r.order[i], r.order[j]
		if a.Featured != b.Featured {
			return a.Featured
		}
		if a.Name != b.Name {
			return a.Name < b.Name
		}
		return a.ID < b.ID
	})
	return r
}

// Get returns the template with the given ID.
func (r *Registry) Get(id string) (*domain.EmailTemplate, bool) {
	t, ok := r.byID[id]
	return t, ok
}

// List returns all templates, featured first, then by name.
func (r *Registry) List() []*domain.EmailTemplate {
	return append([]*domain.EmailTemplate(nil), r.order...)
}

func (r *Registry) ByCategory(c domain.Category) []*domain.EmailTemplate {
	return r.filter(func(t *domain.EmailTemplate) bool { return t.Category == c })
}

func (r *Registry) Featured() []*domain.EmailTemplate {
	return r.filter(func(t *domain.EmailTemplate) bool { return t.Featured })
}

// Search matches query case-insensitively against name, description and
// tags. An empty query matches everything.
func (r *Registry) Search(query string) []*domain.EmailTemplate {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return r.List()
	}
	return r.filter(func(t *domain.EmailTemplate) bool {
		if strings.Contains(strings.ToLower(t.Name), q) ||
			strings.Contains(strings.ToLower(t.Description), q) {
			return true
		}
		for _, tag := range t.Tags {
			if strings.Contains(strings.ToLower(tag), q) {
				return true
			}
		}
		return false
	})
}

func (r *Registry) Len() int { return len(r.order) }

func (r *Registry) filter(keep func(*domain.EmailTemplate) bool) []*domain.EmailTemplate {
	var out []*domain.EmailTemplate
	for _, t := range r.order {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}
