package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"

	"github.com/mcncl/jfield/internal/formatter"
)

// EnvPrefix prefixes every environment override, e.g. JFIELD_OUTPUT_FORMAT.
const EnvPrefix = "JFIELD_"

// Config represents the complete configuration for jfield
type Config struct {
	File          string        `yaml:"file"`
	OutputFormat  string        `yaml:"output_format"`
	StripQuotes   bool          `yaml:"strip_quotes"`
	CreateMissing bool          `yaml:"create_missing"`
	InPlace       bool          `yaml:"in_place"`
	Indent        int           `yaml:"indent"`
	Presets       PresetsConfig `yaml:"presets"`
	Dev           DevConfig     `yaml:"dev"`
}

// PresetsConfig controls the package.json convenience commands
type PresetsConfig struct {
	File string `yaml:"file"`
}

// DevConfig contains development/debug options
type DevConfig struct {
	Debug bool `yaml:"debug"`
}

// Overrides carries values given on the command line. Empty strings and
// false booleans mean "not given".
type Overrides struct {
	File          string
	OutputFormat  string
	StripQuotes   bool
	CreateMissing bool
	InPlace       bool
	Debug         bool
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		File:          "package.json",
		OutputFormat:  string(formatter.FormatRaw),
		StripQuotes:   false,
		CreateMissing: false,
		InPlace:       false,
		Indent:        formatter.DefaultIndent,
		Presets: PresetsConfig{
			File: "package.json",
		},
		Dev: DevConfig{
			Debug: false,
		},
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return findConfigFrom(currentDir)
}

func findConfigFrom(dir string) string {
	configNames := []string{".jfield.yml", ".jfield.yaml", "jfield.yml", "jfield.yaml"}

	for {
		for _, name := range configNames {
			configPath := filepath.Join(dir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(dir)
		if parentDir == dir {
			// Reached root directory
			break
		}
		dir = parentDir
	}

	return ""
}

// Validate checks values that YAML decoding cannot
func (c *Config) Validate() error {
	if _, err := formatter.ParseFormat(c.OutputFormat); err != nil {
		return fmt.Errorf("invalid output_format: %w", err)
	}
	if c.Indent < 1 || c.Indent > 8 {
		return fmt.Errorf("invalid indent %d: must be between 1 and 8", c.Indent)
	}
	return nil
}

// envSetting binds a config field, named as its Go identifier, to a setter.
type envSetting struct {
	field string
	apply func(c *Config, raw string) error
}

var envSettings = []envSetting{
	{"File", func(c *Config, raw string) error { c.File = raw; return nil }},
	{"OutputFormat", func(c *Config, raw string) error { c.OutputFormat = raw; return nil }},
	{"StripQuotes", boolSetter(func(c *Config) *bool { return &c.StripQuotes })},
	{"CreateMissing", boolSetter(func(c *Config) *bool { return &c.CreateMissing })},
	{"InPlace", boolSetter(func(c *Config) *bool { return &c.InPlace })},
	{"Indent", func(c *Config, raw string) error {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return err
		}
		c.Indent = n
		return nil
	}},
	{"PresetsFile", func(c *Config, raw string) error { c.Presets.File = raw; return nil }},
	{"Debug", boolSetter(func(c *Config) *bool { return &c.Dev.Debug })},
}

func boolSetter(field func(c *Config) *bool) func(c *Config, raw string) error {
	return func(c *Config, raw string) error {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return err
		}
		*field(c) = b
		return nil
	}
}

// EnvName returns the environment variable that overrides a config field,
// e.g. "OutputFormat" -> "JFIELD_OUTPUT_FORMAT".
func EnvName(field string) string {
	return EnvPrefix + strcase.ToScreamingSnake(field)
}

// ApplyEnv overrides fields from environment variables found via lookup
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	for _, setting := range envSettings {
		name := EnvName(setting.field)
		raw, ok := lookup(name)
		if !ok || raw == "" {
			continue
		}
		if err := setting.apply(c, raw); err != nil {
			return fmt.Errorf("invalid value for %s: %w", name, err)
		}
	}
	return nil
}

// ApplyOverrides applies command-line values on top of c
func (c *Config) ApplyOverrides(o Overrides) {
	if o.File != "" {
		c.File = o.File
	}
	if o.OutputFormat != "" {
		c.OutputFormat = o.OutputFormat
	}

	// A boolean flag can only switch a setting on
	if o.StripQuotes {
		c.StripQuotes = true
	}
	if o.CreateMissing {
		c.CreateMissing = true
	}
	if o.InPlace {
		c.InPlace = true
	}
	if o.Debug {
		c.Dev.Debug = true
	}
}

// LoadConfigWithCLI builds the effective configuration. Precedence, lowest
// first: defaults, config file, environment, command line.
func LoadConfigWithCLI(configPath string, o Overrides, lookup func(string) (string, bool)) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if lookup != nil {
		if err := cfg.ApplyEnv(lookup); err != nil {
			return nil, err
		}
	}

	cfg.ApplyOverrides(o)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
