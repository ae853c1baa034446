package domain

// Validation holds the optional form constraints for a variable.
type Validation struct {
	MinLength *int   `yaml:"minLength,omitempty" json:"minLength,omitempty"`
	MaxLength *int   `yaml:"maxLength,omitempty" json:"maxLength,omitempty"`
	Pattern   string `yaml:"pattern,omitempty" json:"pattern,omitempty"`
}

// Variable describes one form field and the placeholder it fills.
type Variable struct {
	Name        string       `yaml:"name" json:"name"`
	Label       string       `yaml:"label" json:"label"`
	Kind        VariableKind `yaml:"type" json:"type"`
	Required    bool         `yaml:"required" json:"required"`
	Options     []string     `yaml:"options,omitempty" json:"options,omitempty"`
	Placeholder string       `yaml:"placeholder,omitempty" json:"placeholder,omitempty"`
	Description string       `yaml:"description,omitempty" json:"description,omitempty"`
	Validation  *Validation  `yaml:"validation,omitempty" json:"validation,omitempty"`
}

// EmailTemplate is a named definition of one kind of email.
type EmailTemplate struct {
	ID          string     `yaml:"id" json:"id"`
	Name        string     `yaml:"name" json:"name"`
	Category    Category   `yaml:"category" json:"category"`
	Description string     `yaml:"description" json:"description"`
	PromptText  string     `yaml:"prompt" json:"promptText"`
	Variables   []Variable `yaml:"variables" json:"variables"`
	Tags        []string   `yaml:"tags,omitempty" json:"tags,omitempty"`
	Featured    bool       `yaml:"featured,omitempty" json:"featured,omitempty"`
	Source      string     `yaml:"-" json:"source,omitempty"`
}

// Variable returns the definition with the given name, or nil.
func (t *EmailTemplate) Variable(name string) *Variable {
	for i := range t.Variables {
		if t.Variables[i].Name == name {
			return &t.Variables[i]
		}
	}
	return nil
}

// RequiredVariables returns the names of all required variables in order.
func (t *EmailTemplate) RequiredVariables() []string {
	var names []string
	for _, v := range t.Variables {
		if v.Required {
			names = append(names, v.Name)
		}
	}
	return names
}
