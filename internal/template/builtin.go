package template

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/alexanderramin/mailforge/internal/domain"
	"gopkg.in/yaml.v3"
)

// SourceBuiltin marks templates bundled with the binary.
const SourceBuiltin = "builtin"

//go:embed builtin/templates/*.yaml builtin/examples.yaml
var builtinFS embed.FS

// LoadBuiltinTemplates returns the templates bundled with mailforge, sorted
// by name.
func LoadBuiltinTemplates() ([]*domain.EmailTemplate, error) {
	entries, err := fs.ReadDir(builtinFS, "builtin/templates")
	if err != nil {
		return nil, fmt.Errorf("read builtin templates: %w", err)
	}

	templates := make([]*domain.EmailTemplate, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		data, err := builtinFS.ReadFile("builtin/templates/" + entry.Name())
		if err != nil {
			return nil, fmt.Errorf("read builtin template %s: %w", entry.Name(), err)
		}
		tmpl, err := ParseTemplate(data)
		if err != nil {
			return nil, fmt.Errorf("parse builtin template %s: %w", entry.Name(), err)
		}
		tmpl.Source = SourceBuiltin
		templates = append(templates, tmpl)
	}

	sort.Slice(templates, func(i, j int) bool {
		return templates[i].Name < templates[j].Name
	})
	return templates, nil
}

// LoadDir loads every *.yaml and *.yml template in dir. A missing directory
// yields no templates.
func LoadDir(dir string) ([]*domain.EmailTemplate, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read template dir %s: %w", dir, err)
	}

	var templates []*domain.EmailTemplate
	for _, entry := range entries {
		if entry.IsDir() || !isYAML(entry.Name()) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		tmpl, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		templates = append(templates, tmpl)
	}
	return templates, nil
}

// LoadFile parses and validates a single template file.
func LoadFile(path string) (*domain.EmailTemplate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}
	tmpl, err := ParseTemplate(data)
	if err != nil {
		return nil, fmt.Errorf("parse template %s: %w", path, err)
	}
	tmpl.Source = path
	return tmpl, nil
}

// ParseTemplate decodes YAML into a template and rejects it when
// ValidateTemplate reports any error.
func ParseTemplate(data []byte) (*domain.EmailTemplate, error) {
	var tmpl domain.EmailTemplate
	if err := yaml.Unmarshal(data, &tmpl); err != nil {
		return nil, err
	}
	if errs := ValidateTemplate(&tmpl); len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return &tmpl, nil
}

// LoadBuiltinExamples returns the bundled example gallery.
func LoadBuiltinExamples() ([]domain.Example, error) {
	data, err := builtinFS.ReadFile("builtin/examples.yaml")
	if err != nil {
		return nil, fmt.Errorf("read builtin examples: %w", err)
	}
	var examples []domain.Example
	if err := yaml.Unmarshal(data, &examples); err != nil {
		return nil, fmt.Errorf("parse builtin examples: %w", err)
	}
	return examples, nil
}

// ExamplesByTemplate filters examples to one template. An empty id returns
// all of them.
func ExamplesByTemplate(examples []domain.Example, templateID string) []domain.Example {
	if templateID == "" {
		return examples
	}
	var out []domain.Example
	for _, ex := range examples {
		if ex.TemplateID == templateID {
			out = append(out, ex)
		}
	}
	return out
}

func isYAML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".yaml" || ext == ".yml"
}
