// Package config provides configuration management for docsrv using
// Viper for flexible loading from files, environment variables, and
// command-line flags.
//
// Configuration supports YAML files, environment overrides with the
// DOCSRV_ prefix, and validation. It covers the server address, the
// template root and reload behavior, the optional config-store
// connection, the optional global alert, and logging.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/docsrv/docsrv/internal/resolver"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Templates TemplatesConfig `yaml:"templates"`
	Database  DatabaseConfig  `yaml:"database"`
	Alert     AlertConfig     `yaml:"alert"`
	Logging   LoggingConfig   `yaml:"logging"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type TemplatesConfig struct {
	// Root is the directory the scanner and watcher observe.
	Root string `yaml:"root"`
	// Watch enables the background reload loop.
	Watch bool `yaml:"watch"`
	// Debounce is the quiet period before a burst of filesystem
	// events collapses into one rebuild.
	Debounce time.Duration `yaml:"debounce"`
	// Index is the logical name rendered for "/".
	Index string `yaml:"index"`
}

type DatabaseConfig struct {
	// URL is the Postgres connection string for the config store.
	// Empty disables external value resolution; the resolver then
	// falls back for every externally-sourced value.
	URL string `yaml:"url"`
}

type AlertConfig struct {
	// File points at a YAML file holding the alert payload. Absence
	// of both File and Text means no alert.
	File string `yaml:"file"`
	// Text and CSSClass define the alert inline.
	Text     string `yaml:"text"`
	CSSClass string `yaml:"css_class" mapstructure:"css_class"`
}

type LoggingConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" mapstructure:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
}

// Load builds the configuration from viper's merged sources.
func Load() (*Config, error) {
	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, err
	}

	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

func applyDefaults(c *Config) {
	if c.Server.Host == "" {
		c.Server.Host = "localhost"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.Templates.Root == "" {
		c.Templates.Root = "templates"
	}
	if c.Templates.Debounce == 0 {
		c.Templates.Debounce = 2 * time.Second
	}
	if c.Templates.Index == "" {
		c.Templates.Index = "index.html"
	}
	if !viper.IsSet("templates.watch") {
		c.Templates.Watch = true
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Logging.MaxSizeMB == 0 {
		c.Logging.MaxSizeMB = 100
	}
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server port %d out of range", c.Server.Port)
	}
	if c.Templates.Root == "" {
		return fmt.Errorf("templates root must be set")
	}
	if c.Templates.Debounce < 0 {
		return fmt.Errorf("templates debounce must not be negative")
	}
	if f := c.Logging.Format; f != "text" && f != "json" {
		return fmt.Errorf("logging format %q must be text or json", f)
	}
	return nil
}

// GlobalAlert resolves the configured alert, nil when none is
// configured. A file takes precedence over inline text.
func (c *Config) GlobalAlert() (*resolver.Alert, error) {
	if c.Alert.File != "" {
		raw, err := os.ReadFile(c.Alert.File)
		if err != nil {
			return nil, fmt.Errorf("reading alert file: %w", err)
		}
		var alert resolver.Alert
		if err := yaml.Unmarshal(raw, &alert); err != nil {
			return nil, fmt.Errorf("parsing alert file: %w", err)
		}
		return &alert, nil
	}

	if c.Alert.Text != "" {
		return &resolver.Alert{Text: c.Alert.Text, CSSClass: c.Alert.CSSClass}, nil
	}
	return nil, nil
}
