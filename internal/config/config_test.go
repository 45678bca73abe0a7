package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Endpoint != "http://localhost:3000" {
		t.Errorf("Expected default endpoint to be 'http://localhost:3000', got '%s'", cfg.Endpoint)
	}

	if cfg.TimeoutSeconds != 300 {
		t.Errorf("Expected TimeoutSeconds to be 300, got %d", cfg.TimeoutSeconds)
	}

	if cfg.Verbose != false {
		t.Errorf("Expected Verbose to be false, got %v", cfg.Verbose)
	}

	if !cfg.Markdown.EnableEmoji {
		t.Error("Expected emoji to be enabled by default")
	}

	if cfg.DarkPalette != "dark" {
		t.Errorf("Expected DarkPalette to be 'dark', got '%s'", cfg.DarkPalette)
	}
}

func TestConfig_ChatURL(t *testing.T) {
	tests := []struct {
		endpoint string
		want     string
	}{
		{"http://localhost:3000", "http://localhost:3000/chat"},
		{"http://localhost:3000/", "http://localhost:3000/chat"},
		{"https://mindmate.example/api", "https://mindmate.example/api/chat"},
	}

	for _, tt := range tests {
		t.Run(tt.endpoint, func(t *testing.T) {
			cfg := Config{Endpoint: tt.endpoint}
			if got := cfg.ChatURL(); got != tt.want {
				t.Errorf("ChatURL() = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestConfig_Timeout(t *testing.T) {
	if got := (Config{TimeoutSeconds: 10}).Timeout(); got != 10*time.Second {
		t.Errorf("Timeout() = %v, want 10s", got)
	}
	if got := (Config{}).Timeout(); got != 300*time.Second {
		t.Errorf("Timeout() = %v, want 300s fallback", got)
	}
}

func TestGetConfigDir_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvHome, dir)

	got, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() returned error: %v", err)
	}
	if got != dir {
		t.Errorf("GetConfigDir() = %s, want %s", got, dir)
	}

	storage, err := GetStoragePath()
	if err != nil {
		t.Fatalf("GetStoragePath() returned error: %v", err)
	}
	if storage != filepath.Join(dir, "storage.json") {
		t.Errorf("GetStoragePath() = %s", storage)
	}
}

func TestGetConfigDir_Default(t *testing.T) {
	t.Setenv(EnvHome, "")

	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() returned error: %v", err)
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("GetConfigDir() returned relative path: %s", dir)
	}
	if filepath.Base(dir) != ".mindmate" {
		t.Errorf("GetConfigDir() = %s, want a .mindmate directory", dir)
	}
}

func TestGetLogPath(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvHome, dir)

	got, err := GetLogPath(Config{})
	if err != nil {
		t.Fatalf("GetLogPath() returned error: %v", err)
	}
	if got != filepath.Join(dir, "mindmate.log") {
		t.Errorf("GetLogPath() = %s", got)
	}

	got, _ = GetLogPath(Config{LogFile: "/tmp/custom.log"})
	if got != "/tmp/custom.log" {
		t.Errorf("GetLogPath() = %s, want custom path", got)
	}
}

func TestLoadConfig_FileNotExists(t *testing.T) {
	t.Setenv(EnvHome, t.TempDir())
	t.Setenv(EnvEndpoint, "")
	t.Setenv(EnvTimeout, "")
	t.Setenv(EnvVerbose, "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if cfg.Endpoint != DefaultConfig().Endpoint {
		t.Errorf("Endpoint = %s, want default", cfg.Endpoint)
	}
}

func TestSaveAndLoadConfig(t *testing.T) {
	t.Setenv(EnvHome, filepath.Join(t.TempDir(), "nested"))
	t.Setenv(EnvEndpoint, "")
	t.Setenv(EnvTimeout, "")
	t.Setenv(EnvVerbose, "")

	cfg := DefaultConfig()
	cfg.Endpoint = "https://support.example"
	cfg.TimeoutSeconds = 30
	cfg.CopyToClipboard = true

	if err := SaveConfig(cfg); err != nil {
		t.Fatalf("SaveConfig() returned error: %v", err)
	}

	path, _ := GetConfigPath()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not written: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("config file mode = %v, want 0600", info.Mode().Perm())
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() returned error: %v", err)
	}
	if loaded.Endpoint != cfg.Endpoint || loaded.TimeoutSeconds != 30 || !loaded.CopyToClipboard {
		t.Errorf("LoadConfig() = %+v, want %+v", loaded, cfg)
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(EnvHome, dir)
	t.Setenv(EnvEndpoint, "")

	if err := os.WriteFile(filepath.Join(dir, "config.json"), []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig()
	if err == nil {
		t.Error("Expected parse error for invalid config")
	}
	if cfg.Endpoint != DefaultConfig().Endpoint {
		t.Errorf("Expected defaults on parse error, got %s", cfg.Endpoint)
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvEndpoint, "http://10.0.0.5:3000")
	t.Setenv(EnvTimeout, "45")
	t.Setenv(EnvVerbose, "true")

	cfg := ApplyEnv(DefaultConfig())
	if cfg.Endpoint != "http://10.0.0.5:3000" {
		t.Errorf("Endpoint = %s", cfg.Endpoint)
	}
	if cfg.TimeoutSeconds != 45 {
		t.Errorf("TimeoutSeconds = %d", cfg.TimeoutSeconds)
	}
	if !cfg.Verbose {
		t.Error("Expected Verbose from env")
	}

	t.Setenv(EnvTimeout, "soon")
	if got := ApplyEnv(DefaultConfig()).TimeoutSeconds; got != 300 {
		t.Errorf("invalid timeout should be ignored, got %d", got)
	}
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	if err := os.WriteFile(envFile, []byte("MINDMATE_TEST_DOTENV=loaded\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MINDMATE_TEST_DOTENV", "")
	os.Unsetenv("MINDMATE_TEST_DOTENV")

	if err := LoadDotEnv(envFile); err != nil {
		t.Fatalf("LoadDotEnv() returned error: %v", err)
	}
	if got := os.Getenv("MINDMATE_TEST_DOTENV"); got != "loaded" {
		t.Errorf("MINDMATE_TEST_DOTENV = %q, want loaded", got)
	}

	// Missing files are not an error
	if err := LoadDotEnv(filepath.Join(dir, "missing.env")); err != nil {
		t.Errorf("LoadDotEnv() on missing file returned error: %v", err)
	}
}
