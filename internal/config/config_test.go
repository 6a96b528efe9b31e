package config

import (
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Sieve.MaxBound != 100000000 {
		t.Errorf("expected MaxBound=100000000, got %d", cfg.Sieve.MaxBound)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("expected Format=text, got %s", cfg.Output.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestConfig_SaveLoad(t *testing.T) {
	t.Setenv("ERATOS_MAX_BOUND", "")
	t.Setenv("ERATOS_WORKERS", "")
	t.Setenv("ERATOS_FORMAT", "")

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")

	cfg := DefaultConfig()
	cfg.Sieve.MaxBound = 5000
	cfg.Output.Format = "json"

	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Sieve.MaxBound != 5000 {
		t.Errorf("expected MaxBound=5000, got %d", loaded.Sieve.MaxBound)
	}
	if loaded.Output.Format != "json" {
		t.Errorf("expected Format=json, got %s", loaded.Output.Format)
	}
}

func TestConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("ERATOS_MAX_BOUND", "")
	t.Setenv("ERATOS_WORKERS", "")
	t.Setenv("ERATOS_FORMAT", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "no-such-file.yaml"))
	if err != nil {
		t.Fatalf("Load of missing file should fall back to defaults: %v", err)
	}
	if cfg.Sieve.MaxBound != DefaultConfig().Sieve.MaxBound {
		t.Errorf("expected default MaxBound, got %d", cfg.Sieve.MaxBound)
	}
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("ERATOS_MAX_BOUND", "1234")
	t.Setenv("ERATOS_WORKERS", "3")
	t.Setenv("ERATOS_FORMAT", "json")

	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	if cfg.Sieve.MaxBound != 1234 {
		t.Errorf("expected MaxBound=1234, got %d", cfg.Sieve.MaxBound)
	}
	if cfg.Sieve.Workers != 3 {
		t.Errorf("expected Workers=3, got %d", cfg.Sieve.Workers)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected Format=json, got %s", cfg.Output.Format)
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"max_bound too small", func(c *Config) { c.Sieve.MaxBound = 1 }, true},
		{"negative workers", func(c *Config) { c.Sieve.Workers = -1 }, true},
		{"bad format", func(c *Config) { c.Output.Format = "xml" }, true},
		{"zero columns", func(c *Config) { c.Output.Columns = 0 }, true},
		{"bad level", func(c *Config) { c.Logging.Level = "trace" }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}
