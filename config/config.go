// Package config loads process configuration from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process configuration. AuthToken guards the MCP
// endpoint; MyNumber is the identity string returned by the validate
// tool.
type Config struct {
	AuthToken  string `env:"AUTH_TOKEN,required,notEmpty"`
	MyNumber   string `env:"MY_NUMBER,required,notEmpty"`
	DataDir    string `env:"DATA_DIR" envDefault:"data"`
	ListenAddr string `env:"LISTEN_ADDR" envDefault:":8086"`
	LogLevel   string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat  string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load reads a .env file when present, then parses configuration from
// environment variables.
func Load() (Config, error) {
	// A missing .env file is fine; real environments set variables
	// directly.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
