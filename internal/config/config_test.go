package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// writeFile creates a file with the given content for testing
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	err := os.WriteFile(path, []byte(content), 0644)
	if err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
}

// clearEnv unsets all recognized environment variables so ambient values
// cannot leak into a test. t.Setenv registers the restore before the unset.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, override := range envOverrides {
		t.Setenv(override.envVar, "")
		os.Unsetenv(override.envVar)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := t.TempDir()
	clearEnv(t)

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Model != DefaultModel {
		t.Errorf("expected Model to be %q, got %q", DefaultModel, cfg.Model)
	}
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected BaseURL to be %q, got %q", DefaultBaseURL, cfg.BaseURL)
	}
	if cfg.Timeout != DefaultTimeout {
		t.Errorf("expected Timeout to be %q, got %q", DefaultTimeout, cfg.Timeout)
	}
	if cfg.LogLevel != DefaultLogLevel {
		t.Errorf("expected LogLevel to be %q, got %q", DefaultLogLevel, cfg.LogLevel)
	}
	if cfg.LogFile != DefaultLogFile {
		t.Errorf("expected LogFile to be %q, got %q", DefaultLogFile, cfg.LogFile)
	}
	if cfg.APIKey != "" {
		t.Errorf("expected APIKey to be empty, got %q", cfg.APIKey)
	}
}

func TestLoadConfig_FileOverrides(t *testing.T) {
	dir := t.TempDir()
	clearEnv(t)

	configContent := `
model: gemini-2.5-pro
timeout: 90s
log_level: debug
log_file: practice.log
`
	writeFile(t, filepath.Join(dir, ConfigFileName), configContent)

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Model != "gemini-2.5-pro" {
		t.Errorf("expected Model to be 'gemini-2.5-pro', got %q", cfg.Model)
	}
	if cfg.Timeout != "90s" {
		t.Errorf("expected Timeout to be '90s', got %q", cfg.Timeout)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected LogLevel to be 'debug', got %q", cfg.LogLevel)
	}
	if cfg.LogFile != "practice.log" {
		t.Errorf("expected LogFile to be 'practice.log', got %q", cfg.LogFile)
	}
	// Fields not set in the file keep their defaults.
	if cfg.BaseURL != DefaultBaseURL {
		t.Errorf("expected BaseURL to be %q, got %q", DefaultBaseURL, cfg.BaseURL)
	}
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	clearEnv(t)

	writeFile(t, filepath.Join(dir, ConfigFileName), "model: from-file\n")
	t.Setenv("GYM_MODEL", "from-env")
	t.Setenv("GEMINI_API_KEY", "test-key-123")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Model != "from-env" {
		t.Errorf("expected env to win over file, got Model %q", cfg.Model)
	}
	if cfg.APIKey != "test-key-123" {
		t.Errorf("expected APIKey from env, got %q", cfg.APIKey)
	}
}

func TestLoadConfig_DotEnvFile(t *testing.T) {
	dir := t.TempDir()
	clearEnv(t)

	writeFile(t, filepath.Join(dir, ".env"), "GEMINI_API_KEY=dotenv-key\n")

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.APIKey != "dotenv-key" {
		t.Errorf("expected APIKey from .env file, got %q", cfg.APIKey)
	}
}

func TestLoadConfig_MissingAPIKeyIsNotAnError(t *testing.T) {
	dir := t.TempDir()
	clearEnv(t)

	cfg, err := LoadConfig(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "" {
		t.Errorf("expected empty APIKey, got %q", cfg.APIKey)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	clearEnv(t)

	writeFile(t, filepath.Join(dir, ConfigFileName), "model: [unclosed\n")

	_, err := LoadConfig(dir)
	if err == nil {
		t.Fatal("expected error for malformed config file")
	}
	if !strings.Contains(err.Error(), ConfigFileName) {
		t.Errorf("expected error to name the config file, got: %v", err)
	}
}

func TestLoadConfig_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{
			name:    "bad timeout",
			content: "timeout: not-a-duration\n",
			field:   "timeout",
		},
		{
			name:    "bad log level",
			content: "log_level: verbose\n",
			field:   "log_level",
		},
		{
			name:    "empty model",
			content: "model: \"\"\n",
			field:   "model",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			clearEnv(t)
			writeFile(t, filepath.Join(dir, ConfigFileName), tt.content)

			_, err := LoadConfig(dir)
			if err == nil {
				t.Fatal("expected validation error")
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("expected a ValidationError, got: %v", err)
			}
			if !strings.Contains(err.Error(), tt.field) {
				t.Errorf("expected error to mention %q, got: %v", tt.field, err)
			}
		})
	}
}

func TestLoadConfig_JoinsAllValidationErrors(t *testing.T) {
	dir := t.TempDir()
	clearEnv(t)
	writeFile(t, filepath.Join(dir, ConfigFileName), "timeout: nope\nlog_level: loud\n")

	_, err := LoadConfig(dir)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, field := range []string{"timeout", "log_level"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("expected joined error to mention %q, got: %v", field, err)
		}
	}
}

func TestTimeoutDuration(t *testing.T) {
	cfg := DefaultConfig()
	d, err := cfg.TimeoutDuration()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Seconds() != 60 {
		t.Errorf("expected 60s, got %v", d)
	}

	cfg.Timeout = "bogus"
	if _, err := cfg.TimeoutDuration(); err == nil {
		t.Error("expected error for invalid duration")
	}
}
