// Package config loads the layered CLI configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config holds all CLI configuration options.
type Config struct {
	Output     string `koanf:"output"`
	Verbose    bool   `koanf:"verbose"`
	DateFormat string `koanf:"date_format"`
	MaxSamples int    `koanf:"max_samples"`
}

// Default configuration values.
const (
	DefaultOutput     = "auto" // Auto-detect: TTY=text, non-TTY=markdown
	DefaultDateFormat = "2006-01-02"
	DefaultMaxSamples = 10
)

// envPrefix is the prefix for configuration environment variables.
const envPrefix = "LEAPCHECK_"

// configFileUsed tracks the config file loaded by the last Load call.
var configFileUsed string

// findConfigFile finds the config file to use.
// Priority: explicit path > leapcheck.yaml > leapcheck.yml.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"leapcheck.yaml", "leapcheck.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load loads configuration from defaults, an optional config file,
// LEAPCHECK_* environment variables, and explicitly set CLI flags.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"output":      DefaultOutput,
		"verbose":     false,
		"date_format": DefaultDateFormat,
		"max_samples": DefaultMaxSamples,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Environment variables: LEAPCHECK_DATE_FORMAT -> date_format
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags, only when explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	return &cfg, nil
}

// GetConfigFileUsed returns the path to the config file being used, if any.
func GetConfigFileUsed() string {
	return configFileUsed
}

// Reset clears file tracking. Used for testing.
func Reset() {
	configFileUsed = ""
}
