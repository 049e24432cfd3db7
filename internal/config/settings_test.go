package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestNewSettings(t *testing.T) {
	settings := NewSettings()

	if settings.DatasetPath != DefaultDatasetPath {
		t.Errorf("Expected dataset path %s, got %s", DefaultDatasetPath, settings.DatasetPath)
	}
	if settings.LogoScale != DefaultLogoScale {
		t.Errorf("Expected logo scale %v, got %v", DefaultLogoScale, settings.LogoScale)
	}
	if !settings.Fullscreen {
		t.Error("Expected fullscreen by default")
	}
	if err := settings.Validate(); err != nil {
		t.Errorf("Default settings should validate, got %v", err)
	}
}

func TestSetLogoScale(t *testing.T) {
	settings := NewSettings()

	settings.SetLogoScale(1.5)
	if settings.LogoScale != 1.5 {
		t.Errorf("Expected logo scale 1.5, got %v", settings.LogoScale)
	}

	settings.SetLogoScale(0) // Should be clamped to MinLogoScale
	if settings.LogoScale != MinLogoScale {
		t.Errorf("Logo scale should be clamped to minimum %v, got %v", MinLogoScale, settings.LogoScale)
	}

	settings.SetLogoScale(100) // Should be clamped to MaxLogoScale
	if settings.LogoScale != MaxLogoScale {
		t.Errorf("Logo scale should be clamped to maximum %v, got %v", MaxLogoScale, settings.LogoScale)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
		want   error
	}{
		{"empty dataset", func(s *Settings) { s.DatasetPath = "" }, ErrInvalidPath},
		{"empty logo", func(s *Settings) { s.LogoPath = "" }, ErrInvalidPath},
		{"zero width", func(s *Settings) { s.WindowWidth = 0 }, ErrInvalidWindowSize},
		{"negative height", func(s *Settings) { s.WindowHeight = -1 }, ErrInvalidWindowSize},
		{"bad level", func(s *Settings) { s.LogLevel = "verbose" }, ErrInvalidLogLevel},
		{"bad format", func(s *Settings) { s.LogFormat = "xml" }, ErrInvalidLogFormat},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			settings := NewSettings()
			test.modify(settings)
			if err := settings.Validate(); !errors.Is(err, test.want) {
				t.Errorf("Validate() = %v, expected %v", err, test.want)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "survey-viewer.toml")
	content := `
[data]
dataset = "data/survey.csv"
logo = "assets/logo.png"

[display]
logo-scale = 0.25
fullscreen = false

[log]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Data.Dataset == nil || *cfg.Data.Dataset != "data/survey.csv" {
		t.Errorf("Expected dataset data/survey.csv, got %v", cfg.Data.Dataset)
	}
	if cfg.Data.Overview != nil {
		t.Errorf("Expected overview unset, got %v", *cfg.Data.Overview)
	}
	if cfg.Display.LogoScale == nil || *cfg.Display.LogoScale != 0.25 {
		t.Errorf("Expected logo-scale 0.25, got %v", cfg.Display.LogoScale)
	}
	if cfg.Display.Fullscreen == nil || *cfg.Display.Fullscreen {
		t.Errorf("Expected fullscreen false, got %v", cfg.Display.Fullscreen)
	}
	if cfg.Log.Level == nil || *cfg.Log.Level != "debug" {
		t.Errorf("Expected log level debug, got %v", cfg.Log.Level)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Missing file should not be an error, got %v", err)
	}
	if cfg.Data.Dataset != nil || cfg.Display.LogoScale != nil {
		t.Error("Expected empty config for missing file")
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Error("Expected error for empty path")
	}

	dir := t.TempDir()
	tests := map[string]string{
		"malformed.toml": "[data\ndataset = ",
		"unknown.toml":   "[data]\ndatset = \"typo.csv\"\n",
		"badtype.toml":   "[display]\nlogo-scale = \"big\"\n",
	}
	for name, content := range tests {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
		if _, err := LoadConfig(path); err == nil {
			t.Errorf("%s: expected error, got nil", name)
		}
	}
}
