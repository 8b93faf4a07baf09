package main

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

// Config holds the tool settings.
type Config struct {
	Out      string `koanf:"out"`
	Verbose  bool   `koanf:"verbose"`
	LogLevel string `koanf:"log_level"`
}

// findConfigFile finds the config file to use.
// Priority: explicit path > qasmgen.yaml > qasmgen.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat("qasmgen.yaml"); err == nil {
		return "qasmgen.yaml"
	}
	if _, err := os.Stat("qasmgen.yml"); err == nil {
		return "qasmgen.yml"
	}
	return ""
}

// loadConfig loads configuration from file, environment variables, and
// flags. Precedence (highest to lowest): flags > env vars > config file
// > defaults.
func loadConfig(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"out":       "",
		"verbose":   false,
		"log_level": "info",
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if cfgUsed := findConfigFile(cfgFile); cfgUsed != "" {
		if err := k.Load(file.Provider(cfgUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", cfgUsed, err)
		}
	}

	// QASMGEN_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider("QASMGEN_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "QASMGEN_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

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
