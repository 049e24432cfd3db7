// Package config holds runtime settings and the optional TOML config file.
package config

import (
	"errors"
	"fmt"
)

// Default values
const (
	DefaultDatasetPath  = "CleanedDataset-Manual.csv"
	DefaultOverviewPath = "Overview.ipynb"
	DefaultJournalPath  = "ProjectJournal.ipynb"
	DefaultLogoPath     = "GHSLogo.png"
	DefaultConfigPath   = "survey-viewer.toml"
	DefaultLogoScale    = 0.5
	DefaultFullscreen   = true
	DefaultWindowWidth  = 800
	DefaultWindowHeight = 600
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "console"
	DefaultLanguage     = "en"
)

// Logo scale bounds
const (
	MinLogoScale = 0.05
	MaxLogoScale = 4.0
)

var (
	ErrInvalidPath       = errors.New("path must not be empty")
	ErrInvalidWindowSize = errors.New("window size must be positive")
	ErrInvalidLogLevel   = errors.New("unknown log level")
	ErrInvalidLogFormat  = errors.New("unknown log format")
)

// Settings manages application configuration
type Settings struct {
	DatasetPath  string
	OverviewPath string
	JournalPath  string
	LogoPath     string
	LogoScale    float64
	Fullscreen   bool
	WindowWidth  int
	WindowHeight int
	LogLevel     string
	LogFormat    string
	Language     string
}

// NewSettings creates settings populated with defaults
func NewSettings() *Settings {
	return &Settings{
		DatasetPath:  DefaultDatasetPath,
		OverviewPath: DefaultOverviewPath,
		JournalPath:  DefaultJournalPath,
		LogoPath:     DefaultLogoPath,
		LogoScale:    DefaultLogoScale,
		Fullscreen:   DefaultFullscreen,
		WindowWidth:  DefaultWindowWidth,
		WindowHeight: DefaultWindowHeight,
		LogLevel:     DefaultLogLevel,
		LogFormat:    DefaultLogFormat,
		Language:     DefaultLanguage,
	}
}

// SetLogoScale sets the logo scale, clamped to [MinLogoScale, MaxLogoScale]
func (s *Settings) SetLogoScale(scale float64) {
	if scale < MinLogoScale {
		scale = MinLogoScale
	}
	if scale > MaxLogoScale {
		scale = MaxLogoScale
	}
	s.LogoScale = scale
}

// GetLogLevelOptions returns the accepted log levels
func (s *Settings) GetLogLevelOptions() []string {
	return []string{"debug", "info", "warn", "error"}
}

// GetLogFormatOptions returns the accepted log formats
func (s *Settings) GetLogFormatOptions() []string {
	return []string{"console", "json"}
}

// Validate checks that the settings can be used to start the viewer
func (s *Settings) Validate() error {
	paths := map[string]string{
		"dataset":  s.DatasetPath,
		"overview": s.OverviewPath,
		"journal":  s.JournalPath,
		"logo":     s.LogoPath,
	}
	for _, name := range []string{"dataset", "overview", "journal", "logo"} {
		if paths[name] == "" {
			return fmt.Errorf("%s: %w", name, ErrInvalidPath)
		}
	}

	if s.WindowWidth <= 0 || s.WindowHeight <= 0 {
		return fmt.Errorf("%dx%d: %w", s.WindowWidth, s.WindowHeight, ErrInvalidWindowSize)
	}
	if !contains(s.GetLogLevelOptions(), s.LogLevel) {
		return fmt.Errorf("%q: %w", s.LogLevel, ErrInvalidLogLevel)
	}
	if !contains(s.GetLogFormatOptions(), s.LogFormat) {
		return fmt.Errorf("%q: %w", s.LogFormat, ErrInvalidLogFormat)
	}
	return nil
}

func contains(values []string, v string) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}
