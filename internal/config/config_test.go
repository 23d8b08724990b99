package config

import (
	"os"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	// Ensure no env vars interfere
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("LOG_FORMAT")
	os.Unsetenv("OUTPUT_FORMAT")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Log defaults
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q, want info", cfg.Log.Level)
	}
	if cfg.Log.Format != "console" {
		t.Errorf("Log.Format = %q, want console", cfg.Log.Format)
	}

	// Output defaults
	if cfg.Output.Format != "text" {
		t.Errorf("Output.Format = %q, want text", cfg.Output.Format)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("OUTPUT_FORMAT", "sarif")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if cfg.Log.Format != "json" {
		t.Errorf("Log.Format = %q, want json", cfg.Log.Format)
	}
	if cfg.Output.Format != "sarif" {
		t.Errorf("Output.Format = %q, want sarif", cfg.Output.Format)
	}
}

func TestLoad_InvalidOutputFormatFromEnv(t *testing.T) {
	t.Setenv("OUTPUT_FORMAT", "xml")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should reject unknown output format")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name:    "valid text",
			cfg:     Config{Log: LogConfig{Level: "info", Format: "console"}, Output: OutputConfig{Format: "text"}},
			wantErr: false,
		},
		{
			name:    "valid json report",
			cfg:     Config{Log: LogConfig{Level: "info", Format: "json"}, Output: OutputConfig{Format: "json"}},
			wantErr: false,
		},
		{
			name:    "valid sarif",
			cfg:     Config{Log: LogConfig{Level: "debug", Format: "json"}, Output: OutputConfig{Format: "sarif"}},
			wantErr: false,
		},
		{
			name:    "bad log format",
			cfg:     Config{Log: LogConfig{Level: "info", Format: "logfmt"}, Output: OutputConfig{Format: "text"}},
			wantErr: true,
		},
		{
			name:    "bad output format",
			cfg:     Config{Log: LogConfig{Level: "info", Format: "console"}, Output: OutputConfig{Format: "yaml"}},
			wantErr: true,
		},
		{
			name:    "empty output format",
			cfg:     Config{Log: LogConfig{Level: "info", Format: "console"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
