// Package config provides configuration file support for toolcatalog.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"toolcatalog/internal/doc"
)

// LocalConfigName is the project configuration file looked up in the
// working directory.
const LocalConfigName = ".toolcatalog.toml"

// Config represents the toolcatalog configuration file.
type Config struct {
	// Output contains document settings.
	Output OutputConfig `toml:"output"`

	// Catalog contains descriptor source settings.
	Catalog CatalogConfig `toml:"catalog"`

	// Logging contains local and remote logging settings.
	Logging LoggingConfig `toml:"logging"`
}

// OutputConfig contains settings of the generated document.
type OutputConfig struct {
	// Path is the document path, relative to the working directory.
	Path string `toml:"path"`

	// Generator is the program name shown in the banner.
	Generator string `toml:"generator"`
}

// CatalogConfig selects the catalog files to load.
type CatalogConfig struct {
	// Paths lists catalog files. Relative paths are resolved against the
	// directory of the configuration file that sets them.
	// Empty means the built-in catalog.
	Paths []string `toml:"paths"`

	// Builtin also loads the built-in catalog when Paths is set.
	Builtin bool `toml:"builtin"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// ErrorLog is a local file receiving warnings and errors.
	// Empty disables the local log.
	ErrorLog string `toml:"error_log"`

	// Receivers is a list of remote log destinations.
	Receivers []ReceiverConfig `toml:"receivers"`

	// Attributes are custom key-value pairs added to all log entries.
	Attributes map[string]string `toml:"attributes"`
}

// ReceiverConfig defines a single log receiver.
type ReceiverConfig struct {
	// Type is the receiver type: "syslog", "syslog-remote", or "otlp".
	Type string `toml:"type"`

	// Address is the remote server address (for syslog-remote and otlp).
	Address string `toml:"address"`

	// Endpoint is the OTLP endpoint URL (alias for Address, for otlp type).
	Endpoint string `toml:"endpoint"`

	// Protocol is the transport protocol:
	// - For syslog-remote: "udp" or "tcp" (default: udp)
	// - For otlp: "http" or "grpc" (default: http)
	Protocol string `toml:"protocol"`

	// Facility is the syslog facility (e.g., "local0").
	Facility string `toml:"facility"`

	// Tag is the syslog program tag.
	Tag string `toml:"tag"`

	// Headers are custom HTTP headers for OTLP.
	Headers map[string]string `toml:"headers"`

	// BatchSize is the OTLP batch size before flush.
	BatchSize int `toml:"batch_size"`

	// Timeout is the OTLP export timeout (e.g., "5s").
	Timeout string `toml:"timeout"`

	// Insecure disables TLS for gRPC connections.
	Insecure bool `toml:"insecure"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Path:      doc.DefaultOutputPath,
			Generator: doc.DefaultGenerator,
		},
	}
}

// ConfigPath returns the path to the user config file.
// Uses XDG_CONFIG_HOME/toolcatalog/config.toml or ~/.config/toolcatalog/config.toml
func ConfigPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "toolcatalog", "config.toml")
}

// Load reads the user configuration and merges the project configuration
// of projectDir over it. It returns the paths of the files that were read.
func Load(projectDir string) (*Config, []string, error) {
	var sources []string

	cfg, found, err := readFile(ConfigPath())
	if err != nil {
		return nil, nil, err
	}
	if found {
		sources = append(sources, ConfigPath())
	}

	if projectDir != "" {
		localPath := filepath.Join(projectDir, LocalConfigName)
		local, found, err := readFile(localPath)
		if err != nil {
			return nil, nil, err
		}
		if found {
			cfg = mergeConfigs(cfg, local)
			sources = append(sources, localPath)
		}
	}

	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, sources, nil
}

// LoadFrom reads the configuration from the specified path.
// Returns default config if file doesn't exist.
func LoadFrom(path string) (*Config, error) {
	cfg, _, err := readFile(path)
	if err != nil {
		return nil, err
	}
	applyDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// readFile decodes path. A missing file yields an empty config.
func readFile(path string) (*Config, bool, error) {
	cfg := &Config{}
	if path == "" {
		return cfg, false, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, false, fmt.Errorf("%s: %w", path, err)
	}

	baseDir := filepath.Dir(path)
	for i, p := range cfg.Catalog.Paths {
		p = expandHome(p)
		if !filepath.IsAbs(p) {
			p = filepath.Join(baseDir, p)
		}
		cfg.Catalog.Paths[i] = p
	}
	if cfg.Logging.ErrorLog != "" {
		cfg.Logging.ErrorLog = expandHome(cfg.Logging.ErrorLog)
	}
	return cfg, true, nil
}

func applyDefaults(cfg *Config) {
	if cfg.Output.Path == "" {
		cfg.Output.Path = doc.DefaultOutputPath
	}
	if cfg.Output.Generator == "" {
		cfg.Output.Generator = doc.DefaultGenerator
	}
}

// Validate checks configuration values for correctness.
func (c *Config) Validate() error {
	if c.Output.Path == "" {
		return fmt.Errorf("output.path cannot be empty")
	}

	for i, p := range c.Catalog.Paths {
		if p == "" {
			return fmt.Errorf("catalog.paths[%d] cannot be empty", i)
		}
	}

	for i, r := range c.Logging.Receivers {
		switch r.Type {
		case "syslog":
		case "syslog-remote":
			if r.Address == "" {
				return fmt.Errorf("logging.receivers[%d]: address is required for syslog-remote", i)
			}
			if r.Protocol != "" && r.Protocol != "udp" && r.Protocol != "tcp" {
				return fmt.Errorf("logging.receivers[%d]: protocol must be 'udp' or 'tcp', got %q", i, r.Protocol)
			}
		case "otlp":
			if r.Endpoint == "" && r.Address == "" {
				return fmt.Errorf("logging.receivers[%d]: endpoint is required for otlp", i)
			}
			if r.Protocol != "" && r.Protocol != "http" && r.Protocol != "grpc" {
				return fmt.Errorf("logging.receivers[%d]: protocol must be 'http' or 'grpc', got %q", i, r.Protocol)
			}
			if r.Timeout != "" {
				if _, err := time.ParseDuration(r.Timeout); err != nil {
					return fmt.Errorf("logging.receivers[%d]: invalid timeout: %w", i, err)
				}
			}
		default:
			return fmt.Errorf("logging.receivers[%d]: unknown type %q", i, r.Type)
		}
	}

	return nil
}

// expandHome expands ~ to the user's home directory.
func expandHome(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}

	if len(path) == 1 {
		return home
	}

	if path[1] == '/' {
		return filepath.Join(home, path[2:])
	}

	return path
}

// GenerateDefault returns the default configuration as a TOML string
// with comments explaining each option.
func GenerateDefault() string {
	return `# toolcatalog configuration file
# Location: ~/.config/toolcatalog/config.toml
# A .toolcatalog.toml in the working directory is merged over this file.

[output]
# Document path, relative to the working directory
path = "../SUPPORTED-FORMATS.md"

# Program name written to the "DO NOT EDIT" banner
generator = "ToolsLister"

[catalog]
# Catalog files (TOML or YAML) with the tool descriptors.
# Relative paths are resolved against the directory of this file.
# When empty, the built-in catalog is used.
# paths = ["tools.toml"]

# Also load the built-in catalog when paths are set
# builtin = false

[logging]
# Local file receiving warnings and errors (empty disables)
# error_log = "~/.local/state/toolcatalog/errors.log"

# Custom attributes added to all log entries
# [logging.attributes]
# pipeline = "docs"

# Example: Local syslog
# [[logging.receivers]]
# type = "syslog"
# facility = "local0"
# tag = "toolcatalog"

# Example: Remote syslog server
# [[logging.receivers]]
# type = "syslog-remote"
# address = "logs.example.com:514"
# protocol = "udp"  # or "tcp"

# Example: OpenTelemetry collector (HTTP)
# [[logging.receivers]]
# type = "otlp"
# endpoint = "http://localhost:4318/v1/logs"
# protocol = "http"  # default
# headers = { "Authorization" = "Bearer token" }
# batch_size = 100
# timeout = "5s"

# Example: OpenTelemetry collector (gRPC)
# [[logging.receivers]]
# type = "otlp"
# endpoint = "localhost:4317"
# protocol = "grpc"
# insecure = true
`
}
