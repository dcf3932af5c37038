// Package config loads pytableaux's configuration via koanf, layering
// defaults, a project config file, environment variables, and CLI flags:
// a package-level koanf.New("."), provider ordering low-to-high precedence,
// and config-file search helpers.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// Config is the process-wide configuration.
type Config struct {
	DefaultLogic       string `koanf:"default_logic"`
	DefaultNotation    string `koanf:"default_notation"`
	MaxSteps           int    `koanf:"max_steps"`
	TimeoutSeconds     int    `koanf:"timeout_seconds"`
	RankOptimizations  bool   `koanf:"rank_optimizations"`
	GroupOptimizations bool   `koanf:"group_optimizations"`
	BuildModels        bool   `koanf:"build_models"`
	OutputFormat       string `koanf:"output_format"`
	Verbose            bool   `koanf:"verbose"`
	ListenAddr         string `koanf:"listen_addr"`
}

const maxUpwardSearchLevels = 10

var (
	k              = koanf.New(".")
	configFileUsed string
)

// ResetConfig clears package-level load state. Used by tests.
func ResetConfig() {
	k = koanf.New(".")
	configFileUsed = ""
}

// GetConfigFileUsed returns the path of the config file the last Load call
// picked up, or "" if none was found.
func GetConfigFileUsed() string {
	return configFileUsed
}

func configExistsIn(dir string) bool {
	for _, name := range []string{"pytableaux.yaml", "pytableaux.yml"} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

func findProjectRootUpward(start string) string {
	dir := start
	for i := 0; i < maxUpwardSearchLevels; i++ {
		if configExistsIn(dir) {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return ""
}

func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}
	root := findProjectRootUpward(cwd)
	if root == "" {
		root = cwd
	}
	for _, name := range []string{"pytableaux.yaml", "pytableaux.yml"} {
		candidate := filepath.Join(root, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

func defaults() map[string]any {
	return map[string]any{
		"default_logic":       "CPL",
		"default_notation":    "standard",
		"max_steps":           10_000,
		"timeout_seconds":     30,
		"rank_optimizations":  true,
		"group_optimizations": true,
		"build_models":        true,
		"output_format":       "text",
		"verbose":             false,
		"listen_addr":         ":8080",
	}
}

// Load loads configuration with precedence (lowest to highest): defaults,
// cfgFile (or a discovered pytableaux.yaml/.yml), environment variables
// prefixed PYTABLEAUX_, then flags (only those the caller actually set).
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k = koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: failed to load defaults: %w", err)
	}

	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: failed to read %s: %w", configFileUsed, err)
		}
	}

	if err := k.Load(env.Provider("PYTABLEAUX_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PYTABLEAUX_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("config: failed to load environment: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("config: failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode: %w", err)
	}
	return &cfg, nil
}
