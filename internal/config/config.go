// =============================================================================
// Daily Sales Summary - Configuration Module
// =============================================================================
//
// This module loads the application configuration. All settings are optional;
// the tool runs with built-in defaults when no configuration file exists.
//
// PRECEDENCE (lowest to highest):
//   1. Built-in defaults (Default)
//   2. The YAML configuration file (config.yaml unless --config is given)
//   3. Command-line flags that were explicitly set
//
// EXAMPLE config.yaml:
//   invoices_dir: ./invoices
//   out: ./reports/summary.txt
//   xlsx_out: ./reports/summary.xlsx
//   metrics_file: /var/lib/node_exporter/textfile/salesummary.prom
//   log_level: info
//   log_format: text
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// DEFAULTS
// =============================================================================

const (
	// DefaultConfigFile is read when --config is not given. It may be absent.
	DefaultConfigFile = "config.yaml"

	// DefaultInvoicesDir is the directory scanned for invoice files.
	DefaultInvoicesDir = "invoices"

	// DefaultOut is the report destination.
	DefaultOut = "summary.txt"

	// DefaultLogLevel is the logrus level used when none is configured.
	DefaultLogLevel = "info"

	// LogFormatText and LogFormatJSON select the logrus formatter.
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the application configuration.
type Config struct {
	// =========================================================================
	// INPUT / OUTPUT
	// =========================================================================

	// InvoicesDir is the directory containing invoice .txt files.
	// Default: "invoices"
	InvoicesDir string `yaml:"invoices_dir"`

	// Out is the path of the text report.
	// Default: "summary.txt"
	Out string `yaml:"out"`

	// XLSXOut is the path of the optional spreadsheet export.
	// Empty disables the export.
	XLSXOut string `yaml:"xlsx_out"`

	// MetricsFile is the path of the optional Prometheus textfile.
	// Empty disables metrics output.
	MetricsFile string `yaml:"metrics_file"`

	// =========================================================================
	// LOGGING
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// LogFormat selects the log line format: "text" or "json".
	// Default: "text"
	LogFormat string `yaml:"log_format"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Load reads the configuration from a YAML file.
//
// PARAMETERS:
//   - path: The configuration file path.
//   - required: When false, a missing file yields the defaults instead of an
//     error. Any other read or parse failure is always an error.
//
// RETURNS:
//   - The configuration with defaults applied.
//   - An error if the file cannot be read, parsed, or fails validation.
func Load(path string, required bool) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.InvoicesDir == "" {
		cfg.InvoicesDir = DefaultInvoicesDir
	}
	if cfg.Out == "" {
		cfg.Out = DefaultOut
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = LogFormatText
	}
}

// Validate checks the logging settings.
// Paths are not checked here; the pipeline reports missing directories.
func (c *Config) Validate() error {
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	switch strings.ToLower(c.LogFormat) {
	case LogFormatText, LogFormatJSON:
	default:
		return fmt.Errorf("log_format: unknown format %q (want %q or %q)", c.LogFormat, LogFormatText, LogFormatJSON)
	}

	return nil
}

// =============================================================================
// LOGGER
// =============================================================================

// NewLogger builds the logrus logger described by the configuration.
// Log lines go to stderr so that stdout carries only the report.
func (c *Config) NewLogger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log_level: %w", err)
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	logger.SetLevel(level)

	if strings.ToLower(c.LogFormat) == LogFormatJSON {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger, nil
}
