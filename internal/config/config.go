// Package config handles configuration and on-disk paths for mindmate.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/diogo/mindmate/internal/models"
)

// Environment variables that override the config file
const (
	EnvHome     = "MINDMATE_HOME"
	EnvEndpoint = "MINDMATE_ENDPOINT"
	EnvTimeout  = "MINDMATE_TIMEOUT"
	EnvVerbose  = "MINDMATE_VERBOSE"
)

// MarkdownConfig configures markdown rendering options
type MarkdownConfig struct {
	EnableEmoji      bool `json:"enable_emoji"`       // Convert :emoji: to unicode
	PreserveNewLines bool `json:"preserve_newlines"`  // Preserve original line breaks
	TableWrap        bool `json:"table_wrap"`         // Enable word wrap in table cells
	InlineTableLinks bool `json:"inline_table_links"` // Render links inline in tables
}

// Config represents the user configuration
type Config struct {
	// Endpoint is the base URL of the reply service; requests go to Endpoint + /chat.
	Endpoint string `json:"endpoint"`
	// TimeoutSeconds bounds a single reply request at the transport level.
	TimeoutSeconds int `json:"timeout_seconds"`
	// Verbose enables the debug log file.
	Verbose         bool   `json:"verbose"`
	CopyToClipboard bool   `json:"copy_to_clipboard"`
	LogFile         string `json:"log_file,omitempty"` // Defaults to <config dir>/mindmate.log
	// DarkPalette names the TUI palette used in dark mode
	DarkPalette string         `json:"dark_palette,omitempty"`
	Markdown    MarkdownConfig `json:"markdown,omitempty"`
}

// DefaultMarkdownConfig returns the default markdown configuration
func DefaultMarkdownConfig() MarkdownConfig {
	return MarkdownConfig{
		EnableEmoji:      true,
		PreserveNewLines: true,
		TableWrap:        true,
		InlineTableLinks: false,
	}
}

// DefaultConfig returns the default configuration
func DefaultConfig() Config {
	return Config{
		Endpoint:        models.DefaultEndpoint,
		TimeoutSeconds:  300,
		Verbose:         false,
		CopyToClipboard: false,
		DarkPalette:     "dark",
		Markdown:        DefaultMarkdownConfig(),
	}
}

// Timeout returns the request timeout as a duration
func (c Config) Timeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return 300 * time.Second
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// ChatURL returns the full reply service URL
func (c Config) ChatURL() string {
	return strings.TrimRight(c.Endpoint, "/") + models.ChatPath
}

// GetConfigDir returns the configuration directory path
func GetConfigDir() (string, error) {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	return filepath.Join(home, ".mindmate"), nil
}

// EnsureConfigDir creates the configuration directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(configDir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return configDir, nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// GetStoragePath returns the path to the key/value preference storage file
func GetStoragePath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "storage.json"), nil
}

// GetLogPath returns the debug log path from config, or the default location
func GetLogPath(cfg Config) (string, error) {
	if cfg.LogFile != "" {
		return cfg.LogFile, nil
	}
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "mindmate.log"), nil
}

// LoadConfig loads the configuration from disk and applies environment overrides
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()

	configPath, err := GetConfigPath()
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return ApplyEnv(cfg), nil // Use defaults if config doesn't exist
		}
		return ApplyEnv(cfg), fmt.Errorf("failed to read config file: %w", err)
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return ApplyEnv(DefaultConfig()), fmt.Errorf("failed to parse config file: %w", err)
	}

	return ApplyEnv(cfg), nil
}

// SaveConfig saves the configuration to disk
func SaveConfig(cfg Config) error {
	configDir, err := EnsureConfigDir()
	if err != nil {
		return err
	}

	configPath := filepath.Join(configDir, "config.json")

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0o600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// ApplyEnv overlays environment variables on cfg
func ApplyEnv(cfg Config) Config {
	if endpoint := os.Getenv(EnvEndpoint); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	if raw := os.Getenv(EnvTimeout); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
			cfg.TimeoutSeconds = secs
		}
	}
	if raw := os.Getenv(EnvVerbose); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			cfg.Verbose = v
		}
	}
	return cfg
}

// LoadDotEnv loads variables from the given .env files (default ./.env).
// Missing files are ignored; variables already set in the environment win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}

	var present []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			present = append(present, f)
		}
	}
	if len(present) == 0 {
		return nil
	}

	if err := godotenv.Load(present...); err != nil {
		return fmt.Errorf("failed to load env file: %w", err)
	}
	return nil
}
