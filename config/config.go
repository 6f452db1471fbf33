// Package config handles loading the optional YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"todo-tui/store"
)

// DefaultFile is the task file used when neither the command line nor the
// config names one.
const DefaultFile = "TODO.txt"

// Config represents the application configuration.
type Config struct {
	// File is the task file path.
	File string `yaml:"file,omitempty"`

	// SaveOnQuit writes unsaved changes when the editor is closed with q.
	SaveOnQuit bool `yaml:"save_on_quit"`

	// Backups is how many rotating backups of the task file are kept.
	Backups *int `yaml:"backups,omitempty"`

	LogFile  string `yaml:"log_file,omitempty"`
	LogLevel string `yaml:"log_level,omitempty"`

	Highlight HighlightConfig `yaml:"highlight,omitempty"`
}

// HighlightConfig colors the selected row and active tab. Empty colors
// fall back to inverse video.
type HighlightConfig struct {
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
}

// Template is written by `todo-tui init`.
const Template = `# todo-tui configuration

# Task file used when none is given on the command line.
file: TODO.txt

# Save unsaved changes when quitting with q (ctrl+c never saves).
save_on_quit: false

# Rotating backups of the task file kept on save (0 keeps only <file>.bak).
backups: 5

# Debug log; empty disables logging.
log_file: ""
log_level: info

# Colors for the selected row and the active tab; empty means inverse video.
highlight:
  foreground: ""
  background: ""
`

// DefaultConfig returns a new Config with default values.
func DefaultConfig() *Config {
	backups := store.DefaultBackups
	return &Config{
		File:     DefaultFile,
		Backups:  &backups,
		LogLevel: "info",
	}
}

// DefaultPath returns ~/.config/todo-tui/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "todo-tui", "config.yaml"), nil
}

// Load reads the configuration at path.
// If the file doesn't exist, returns a default configuration.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if strings.TrimSpace(cfg.File) == "" {
		cfg.File = DefaultFile
	}
	if cfg.Backups != nil && *cfg.Backups < 0 {
		return nil, fmt.Errorf("config %s: backups must not be negative", path)
	}
	if _, err := cfg.Level(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// WriteTemplate creates the config file at path unless it already exists.
// It reports whether a file was written.
func WriteTemplate(path string) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return false, fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(Template), 0o600); err != nil {
		return false, fmt.Errorf("failed to write config file: %w", err)
	}
	return true, nil
}

// BackupCount returns the configured backup rotation.
func (c *Config) BackupCount() int {
	if c.Backups == nil {
		return store.DefaultBackups
	}
	return *c.Backups
}

// Level parses LogLevel; empty means info.
func (c *Config) Level() (log.Level, error) {
	if strings.TrimSpace(c.LogLevel) == "" {
		return log.InfoLevel, nil
	}
	return log.ParseLevel(strings.ToLower(strings.TrimSpace(c.LogLevel)))
}

// HighlightStyle returns the style used for highlighted cells.
func (c *Config) HighlightStyle() lipgloss.Style {
	h := c.Highlight
	if h.Foreground == "" && h.Background == "" {
		return lipgloss.NewStyle().Reverse(true)
	}
	style := lipgloss.NewStyle()
	if h.Foreground != "" {
		style = style.Foreground(lipgloss.Color(h.Foreground))
	}
	if h.Background != "" {
		style = style.Background(lipgloss.Color(h.Background))
	}
	return style
}
