// Package config loads process settings from a YAML file or the environment.
package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	AppName            string        `yaml:"app_name" env:"APP_NAME" env-default:"todo-tracker"`
	LogLevel           string        `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort           int           `yaml:"http_port" env:"HTTP_PORT" env-default:"8080"`
	RequestTimeout     time.Duration `yaml:"http_request_timeout" env:"HTTP_REQUEST_TIMEOUT" env-default:"5s"`
	CORSAllowedOrigins string        `yaml:"cors_allowed_origins" env:"CORS_ALLOWED_ORIGINS" env-default:"*"`
	ShutdownTimeout    time.Duration `yaml:"shutdown_timeout" env:"SHUTDOWN_TIMEOUT" env-default:"30s"`
	ActivityCapacity   int           `yaml:"activity_capacity" env:"ACTIVITY_CAPACITY" env-default:"500"`
	SeedDemoData       bool          `yaml:"seed_demo_data" env:"SEED_DEMO_DATA" env-default:"false"`
}

// Load reads configPath, falling back to the environment when the path is
// empty or the file does not exist.
func Load(configPath string) (Config, error) {
	var cfg Config

	if configPath == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("cannot read env: %w", err)
		}
		return cfg, cfg.validate()
	}

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		var pe *os.PathError
		if !errors.As(err, &pe) {
			return Config{}, fmt.Errorf("cannot read config %q: %w", configPath, err)
		}
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return Config{}, fmt.Errorf("cannot read env: %w", err)
		}
	}

	return cfg, cfg.validate()
}

// MustLoad is Load that exits the process on error.
func MustLoad(configPath string) Config {
	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("failed to load config: %s", err)
	}
	return cfg
}

func (c Config) validate() error {
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("http_port out of range: %d", c.HTTPPort)
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("http_request_timeout must be positive")
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown_timeout must be positive")
	}
	return nil
}
