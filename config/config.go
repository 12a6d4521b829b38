package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v2"
)

// Config represents the calculator configuration. Every field is optional;
// missing values take the defaults from Default.
type Config struct {
	Prompt    string `yaml:"prompt"`
	MaxFaults int    `yaml:"max_faults"`
	ShowHelp  *bool  `yaml:"show_help"`
	LogLevel  string `yaml:"log_level"`
}

// validLogLevels are the level names accepted for log_level.
var validLogLevels = []string{"debug", "info", "warn", "error"}

// Default returns the configuration used when no file is supplied.
func Default() *Config {
	showHelp := true
	return &Config{
		Prompt:    "> ",
		MaxFaults: 10,
		ShowHelp:  &showHelp,
		LogLevel:  "warn",
	}
}

// Load loads and validates the configuration from the given file path.
func Load(filePath string) (*Config, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", filePath)
	}

	configFile, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	err = yaml.Unmarshal(configFile, &cfg)
	if err != nil {
		return nil, fmt.Errorf("unable to parse YAML config file: %w", err)
	}

	if err := validateAndPrepare(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validateAndPrepare checks the supplied fields and fills in defaults.
func validateAndPrepare(c *Config) error {
	def := Default()

	if c.Prompt == "" {
		c.Prompt = def.Prompt
	}
	if c.MaxFaults < 0 {
		return errors.New("max_faults must not be negative")
	}
	if c.MaxFaults == 0 {
		c.MaxFaults = def.MaxFaults
	}
	if c.ShowHelp == nil {
		c.ShowHelp = def.ShowHelp
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	return c.SetLogLevel(c.LogLevel)
}

// SetLogLevel validates and sets the log level.
func (c *Config) SetLogLevel(level string) error {
	level = strings.ToLower(level)
	for _, l := range validLogLevels {
		if level == l {
			c.LogLevel = level
			return nil
		}
	}
	return fmt.Errorf("invalid log_level %q, want one of %s", level, strings.Join(validLogLevels, ", "))
}

// HelpOnStart reports whether the help screen is shown at startup.
func (c *Config) HelpOnStart() bool {
	return c.ShowHelp == nil || *c.ShowHelp
}
