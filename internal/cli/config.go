package cli

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no explicit
// config path is given.
const DefaultConfigFile = "mirrorgen.yaml"

// Config stores the options of one generation run. Flags override whatever
// the YAML file set.
type Config struct {
	// Patterns are the package patterns to scan, e.g. "./...".
	Patterns []string `yaml:"patterns"`

	// Dir is the working directory for pattern resolution.
	Dir string `yaml:"dir"`

	// FileSuffix overrides the generated file suffix (default "_mirror.go").
	FileSuffix string `yaml:"file_suffix"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose"`
}

// LoadConfig loads and parses a YAML config file from the given path.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML data into a Config.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config

	err := yaml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(cfg *Config) {
	if len(cfg.Patterns) == 0 {
		cfg.Patterns = []string{"./..."}
	}
}

// resolveConfig assembles the effective configuration: the explicit config
// file when given, the default file when present, built-in defaults
// otherwise.
func resolveConfig(path string) (*Config, error) {
	if path != "" {
		return LoadConfig(path)
	}

	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return LoadConfig(DefaultConfigFile)
	}

	cfg := &Config{}
	applyDefaults(cfg)

	return cfg, nil
}
