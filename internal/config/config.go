// Package config loads awaken.ini and applies environment overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/ini.v1"
)

// FileName is the config file looked up next to the executable.
const FileName = "awaken.ini"

// Configuration structure
type Config struct {
	Settings struct {
		TypingDelay time.Duration `ini:"TypingDelay" env:"AWAKEN_TYPING_DELAY"`
		Color       bool          `ini:"Color" env:"AWAKEN_COLOR"`
		Plain       bool          `ini:"Plain" env:"AWAKEN_PLAIN"`
	} `ini:"Settings"`
	Log struct {
		File  string `ini:"File" env:"AWAKEN_LOG_FILE"`
		Level string `ini:"Level" env:"AWAKEN_LOG_LEVEL"`
	} `ini:"Log"`
}

func Default() *Config {
	cfg := &Config{}
	cfg.Settings.TypingDelay = 25 * time.Millisecond
	cfg.Settings.Color = true
	cfg.Log.Level = "info"
	return cfg
}

// Path returns awaken.ini beside the running executable.
func Path() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	return filepath.Join(filepath.Dir(exePath), FileName), nil
}

// Load reads path over the defaults, then applies AWAKEN_* environment
// variables. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	iniFile, err := ini.Load(path)
	switch {
	case err == nil:
		if err := iniFile.StrictMapTo(cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("environment: %w", err)
	}
	return cfg, nil
}

// LoadOrCreate is Load, but writes a default file first when none exists.
func LoadOrCreate(path string) (*Config, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := Save(path, Default()); err != nil {
			return nil, err
		}
	}
	return Load(path)
}

// Save writes cfg to path.
func Save(path string, cfg *Config) error {
	f := ini.Empty()
	settings := f.Section("Settings")
	settings.Key("TypingDelay").SetValue(cfg.Settings.TypingDelay.String())
	settings.Key("Color").SetValue(strconv.FormatBool(cfg.Settings.Color))
	settings.Key("Plain").SetValue(strconv.FormatBool(cfg.Settings.Plain))
	logs := f.Section("Log")
	logs.Key("File").SetValue(cfg.Log.File)
	logs.Key("Level").SetValue(cfg.Log.Level)
	if err := f.SaveTo(path); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
