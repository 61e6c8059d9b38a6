// Package config holds the server configuration.
package config

import "fmt"

// Config is the root server configuration.
type Config struct {
	Server Server `yaml:"server"`
	Morph  Morph  `yaml:"morphology"`
	Log    Log    `yaml:"log"`
}

// Server holds HTTP server settings.
type Server struct {
	Host        string `yaml:"host"         env:"SERVER_HOST"         env-default:"0.0.0.0"`
	Port        int    `yaml:"port"         env:"SERVER_PORT"         env-default:"8070"`
	RoutePrefix string `yaml:"route_prefix" env:"SERVER_ROUTE_PREFIX" env-default:"/"`
}

// Morph selects the pretrained resources the server loads at startup.
type Morph struct {
	// Dataset names a catalogued dataset. Empty selects the catalogue
	// default.
	Dataset string `yaml:"dataset"    env:"MORPH_DATASET"`
	// DBPath points at a local morphology database file, bypassing the
	// catalogue.
	DBPath    string `yaml:"db_path"    env:"MORPH_DB_PATH"`
	Backoff   string `yaml:"backoff"    env:"MORPH_BACKOFF"    env-default:"NOAN_PROP"`
	CacheSize int    `yaml:"cache_size" env:"MORPH_CACHE_SIZE" env-default:"100000"`
}

// Log holds logging settings.
type Log struct {
	Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
}

// Addr returns the host:port pair the server listens on.
func (s Server) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}
