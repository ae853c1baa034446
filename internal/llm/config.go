package llm

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
	ProviderOllama    = "ollama"
)

// KnownProviders lists every provider in display order.
var KnownProviders = []string{ProviderOpenAI, ProviderAnthropic, ProviderOllama}

type OpenAIConfig struct {
	APIKey  string `env:"OPENAI_API_KEY"`
	BaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com"`
	Model   string `env:"OPENAI_MODEL" envDefault:"gpt-4.1-nano"`
}

type AnthropicConfig struct {
	APIKey  string `env:"ANTHROPIC_API_KEY"`
	BaseURL string `env:"ANTHROPIC_BASE_URL" envDefault:"https://api.anthropic.com"`
	Model   string `env:"ANTHROPIC_MODEL" envDefault:"claude-3-5-sonnet-20241022"`
	Version string `env:"ANTHROPIC_VERSION" envDefault:"2023-06-01"`
}

// OllamaConfig configures a local Ollama server. An empty endpoint disables it.
type OllamaConfig struct {
	Endpoint string `env:"OLLAMA_ENDPOINT"`
	Model    string `env:"OLLAMA_MODEL" envDefault:"llama3.2"`
}

// Config holds all configuration for the generation backends.
type Config struct {
	Provider          string   `env:"MAILFORGE_LLM_PROVIDER" envDefault:"openai"`
	FallbackProviders []string `env:"MAILFORGE_LLM_FALLBACK_PROVIDERS" envSeparator:","`
	Model             string   `env:"MAILFORGE_LLM_MODEL"`
	TimeoutMs         int      `env:"MAILFORGE_LLM_TIMEOUT_MS" envDefault:"30000"`
	MaxRetries        int      `env:"MAILFORGE_LLM_MAX_RETRIES" envDefault:"1"`
	Temperature       float64  `env:"MAILFORGE_LLM_TEMPERATURE" envDefault:"0.6"`
	MaxTokens         int      `env:"MAILFORGE_LLM_MAX_TOKENS" envDefault:"4000"`
	LogCalls          bool     `env:"MAILFORGE_LLM_LOG_CALLS"`

	OpenAI    OpenAIConfig
	Anthropic AnthropicConfig
	Ollama    OllamaConfig
}

// DefaultConfig returns the configuration used when no environment
// variables are set. No provider has credentials, so none is usable.
func DefaultConfig() Config {
	var cfg Config
	// Parsing an empty environment only applies envDefault tags.
	_ = env.ParseWithOptions(&cfg, env.Options{Environment: map[string]string{}})
	return cfg
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for unset values.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse llm config: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	defaults := DefaultConfig()
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if c.Provider == "" {
		c.Provider = defaults.Provider
	}
	fallbacks := c.FallbackProviders[:0]
	for _, p := range c.FallbackProviders {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			fallbacks = append(fallbacks, p)
		}
	}
	c.FallbackProviders = fallbacks
	if c.TimeoutMs <= 0 {
		c.TimeoutMs = defaults.TimeoutMs
	}
	if c.MaxRetries < 0 {
		c.MaxRetries = 0
	}
	if c.MaxTokens <= 0 {
		c.MaxTokens = defaults.MaxTokens
	}
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}

// Configured reports whether provider has the credentials or endpoint it
// needs.
func (c Config) Configured(provider string) bool {
	switch provider {
	case ProviderOpenAI:
		return c.OpenAI.APIKey != ""
	case ProviderAnthropic:
		return c.Anthropic.APIKey != ""
	case ProviderOllama:
		return c.Ollama.Endpoint != ""
	default:
		return false
	}
}
