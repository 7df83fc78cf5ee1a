package config

import (
	"flag"
	"os"
	"time"
)

// ParseFlags parses all configuration flags from os.Args.
//
// Flags:
//
//	-s backend base URL, e.g. "http://localhost:8000"
//	-d local state database path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	return parseFlagsFrom(os.Args[0], os.Args[1:])
}

// parseFlagsFrom parses args with a fresh FlagSet so tests can call it
// repeatedly without tripping the global flag package.
func parseFlagsFrom(name string, args []string) *StructuredConfig {
	fs := flag.NewFlagSet(name, flag.ExitOnError)

	var baseURL string
	var databaseDSN string
	var jsonConfigPath string
	var requestTimeout time.Duration

	fs.StringVar(&baseURL, "s", "", "Backend base URL")
	fs.StringVar(&databaseDSN, "d", "", "Local database path")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	// ExitOnError makes the error unreachable here.
	_ = fs.Parse(args)

	return &StructuredConfig{
		Adapter: Adapter{
			BaseURL:        baseURL,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
