package config

import (
	"fmt"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// Load reads configuration from a YAML file and environment variables.
// Priority: ENV > YAML > defaults. The file path comes from CONFIG_PATH
// and falls back to ./config.yaml; when neither exists, configuration is
// read from ENV and defaults only.
func Load() (*Config, error) {
	var cfg Config

	path := os.Getenv("CONFIG_PATH")
	explicitPath := path != ""
	if !explicitPath {
		path = "./config.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if explicitPath {
		return nil, fmt.Errorf("config: file %s: %w", path, err)
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	return &cfg, nil
}
