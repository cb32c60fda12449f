package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	OpenAIAPIKey string  `env:"OPENAI_API_KEY,required,notEmpty"`
	Addr         string  `env:"ADDR"               envDefault:":8080"`
	Model        string  `env:"OPENAI_MODEL"       envDefault:"gpt-4o-mini"`
	Temperature  float64 `env:"OPENAI_TEMPERATURE" envDefault:"0.1"`
	ExamplePath  string  `env:"EXAMPLE_PATH"       envDefault:"conversation_example.txt"`
}

// Load parses the process environment. A missing or empty OPENAI_API_KEY is
// an error: the caller halts startup instead of serving a broken UI.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
