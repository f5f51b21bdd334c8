package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/subosito/gotenv"
)

// Config carries everything the binaries read from the environment.
type Config struct {
	ExportDir     string `env:"EXPORT_DIR,required"`
	ProfileOutput string `env:"PROFILE_OUTPUT" envDefault:"analysis_results.json"`

	OpenAIAPIKey string `env:"OPENAI_API_KEY"`
	OpenAIModel  string `env:"OPENAI_MODEL" envDefault:"gpt-4o"`

	PromptPath      string `env:"PROFILER_PROMPT_PATH" envDefault:"profiler_prompt.md"`
	NarrativeOutput string `env:"NARRATIVE_OUTPUT" envDefault:"psychological_profile.md"`

	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
}

// LoadEnv loads the env file for the given environment name into the process
// environment. A missing file is fine, the OS environment still applies.
func LoadEnv(environment string) {
	envFile := "config/envs/.env." + environment
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment")
	}
}

// Load parses the process environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
