package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alnah/go-md2html/internal/config"
)

// envPrefix is shared by all recognized environment variables.
const envPrefix = "MD2HTML_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // MD2HTML_CONFIG: config file path
	CreateDirs *bool  // MD2HTML_CREATE_DIRS: nil when unset or unparsable
}

// knownEnvVars lists valid MD2HTML_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"MD2HTML_CONFIG":      true,
	"MD2HTML_CREATE_DIRS": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MD2HTML_CONFIG"),
	}

	if v := getenv("MD2HTML_CREATE_DIRS"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.CreateDirs = &b
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MD2HTML_* variables.
// Helps catch typos like MD2HTML_CREATEDIRS instead of MD2HTML_CREATE_DIRS.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, env := range environ {
		if strings.HasPrefix(env, envPrefix) {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values over the config file.
// CLI flags are applied afterwards, so the precedence is:
// CLI flags > env vars > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.CreateDirs != nil {
		cfg.Output.CreateDirs = *env.CreateDirs
	}
}
