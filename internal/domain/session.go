package domain

import "time"

// Session is the last form state and generated email for one template.
type Session struct {
	TemplateID     string
	Values         map[string]string
	GeneratedEmail string
	UpdatedAt      time.Time
}

// Example is a static sample email shown in the gallery.
type Example struct {
	ID         int    `yaml:"id" json:"id"`
	TemplateID string `yaml:"templateId" json:"templateId"`
	Title      string `yaml:"title" json:"title"`
	Preview    string `yaml:"preview" json:"preview"`
	Category   string `yaml:"category" json:"category"`
	UseCase    string `yaml:"useCase" json:"useCase"`
	Tone       string `yaml:"tone" json:"tone"`
	FullEmail  string `yaml:"fullEmail" json:"fullEmail"`
}
