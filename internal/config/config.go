// Package config loads application settings from the environment.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexanderramin/mailforge/internal/llm"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the application settings.
type Config struct {
	DBPath       string `env:"MAILFORGE_DB"`
	TemplatesDir string `env:"MAILFORGE_TEMPLATES"`
	HTTPAddr     string `env:"MAILFORGE_HTTP_ADDR" envDefault:":8080"`
	LogLevel     string `env:"MAILFORGE_LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"MAILFORGE_LOG_FORMAT" envDefault:"console"`

	// LLM is filled by llm.LoadConfig.
	LLM llm.Config
}

// Load reads .env when present, then the environment.
func Load() (*Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	if cfg.DBPath == "" {
		cfg.DBPath = filepath.Join(home, ".mailforge", "mailforge.db")
	}
	if cfg.TemplatesDir == "" {
		cfg.TemplatesDir = defaultTemplatesDir(home)
	}

	cfg.LLM, err = llm.LoadConfig()
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

// defaultTemplatesDir prefers ./templates in the working directory.
func defaultTemplatesDir(home string) string {
	if info, err := os.Stat("templates"); err == nil && info.IsDir() {
		return "templates"
	}
	return filepath.Join(home, ".mailforge", "templates")
}
