// Package config holds the apidrift configuration: which routes file to
// parse, which UI trees to scan, and how files are filtered.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the apidrift configuration.
type Config struct {
	// RoutesFile is the server source file containing route registrations,
	// relative to the repository root.
	RoutesFile string `yaml:"routes_file"`

	// MountPrefix is prepended to every declared sub-path to form the full
	// request path the UI would reference.
	MountPrefix string `yaml:"mount_prefix"`

	// UIDirs are the roots scanned for references, relative to the
	// repository root. Roots that do not exist are skipped.
	UIDirs []string `yaml:"ui_dirs"`

	// Extensions is the allow-list of file suffixes opened during the scan.
	// Comparison is case-insensitive.
	Extensions []string `yaml:"extensions"`

	// ExcludeDirs are glob patterns for directory names pruned from the
	// scan (matched against the directory's base name). Empty by default:
	// the bare invocation enumerates every file under each UI root.
	ExcludeDirs []string `yaml:"exclude_dirs"`
}

// Default returns the built-in configuration. The tool is designed to run
// with no arguments and no config file; these values mirror the repository
// layout it was written for.
func Default() *Config {
	return &Config{
		RoutesFile:  filepath.Join("cmd", "sdsm", "main.go"),
		MountPrefix: "/api",
		UIDirs:      []string{"ui", "webassets"},
		Extensions: []string{
			".html", ".htm",
			".js", ".ts", ".tsx",
			".css", ".scss",
			".go", ".json",
			".md", ".txt", ".tmpl",
		},
		ExcludeDirs: []string{},
	}
}

// Load returns the effective configuration: the defaults, overlaid with the
// given config file if set, otherwise with a discovered one if present.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath == "" {
		configPath = findConfigFile()
	}
	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	return cfg, nil
}

// Save writes the configuration to a file as YAML.
func Save(cfg *Config, configPath string) error {
	if dir := filepath.Dir(configPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// findConfigFile looks for a config file in the working directory.
func findConfigFile() string {
	candidates := []string{
		".apidrift.yaml",
		".apidrift.yml",
	}
	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return ""
}
