package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// StructuredConfig is the top-level configuration container assembled by
// merging environment variables, command-line flags, and an optional JSON
// file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the backend address and request timeout used by the
	// HTTP gateway.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c/-config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds network settings for the outbound transport layer.
type Adapter struct {
	// BaseURL is the backend base URL, e.g. "http://localhost:8000".
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout is the default timeout for a single outbound request
	// (e.g. "15s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the local persistence settings.
type Storage struct {
	// DB holds the local SQLite settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the connection settings for the local SQLite state database.
type DB struct {
	// DSN is the SQLite file path.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// ClientAdapter is the validated transport view handed to the HTTP gateway.
type ClientAdapter struct {
	BaseURL        string
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings.
type ClientDB struct {
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Storage ClientStorage
}

// GetClientConfig builds and validates the client configuration: env over
// flags over JSON file over defaults.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error building structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.DB.DSN},
		},
	}

	return clientCfg, clientCfg.validate()
}

// defaultConfig returns the built-in fallback values: a local development
// backend and a state database under the user's home directory.
func defaultConfig() *StructuredConfig {
	dsn := "gamideck.db"
	if home, err := os.UserHomeDir(); err == nil {
		dsn = filepath.Join(home, ".gamideck", "gamideck.db")
	}

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        "http://localhost:8000",
			RequestTimeout: 15 * time.Second,
		},
		Storage: Storage{DB: DB{DSN: dsn}},
	}
}
