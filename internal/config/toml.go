package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file. Every field is
// optional; nil means "not set in the file".
type FileConfig struct {
	Data    DataConfig    `toml:"data"`
	Display DisplayConfig `toml:"display"`
	Log     LogConfig     `toml:"log"`
}

// DataConfig maps input file locations
type DataConfig struct {
	Dataset  *string `toml:"dataset"`
	Overview *string `toml:"overview"`
	Journal  *string `toml:"journal"`
	Logo     *string `toml:"logo"`
}

// DisplayConfig maps presentation options
type DisplayConfig struct {
	LogoScale    *float64 `toml:"logo-scale"`
	Fullscreen   *bool    `toml:"fullscreen"`
	WindowWidth  *int     `toml:"window-width"`
	WindowHeight *int     `toml:"window-height"`
	Language     *string  `toml:"language"`
}

// LogConfig maps logging options
type LogConfig struct {
	Level  *string `toml:"level"`
	Format *string `toml:"format"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
