package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dmitrijs2005/travelbook/internal/timex"
	"gopkg.in/yaml.v3"
)

// FileConfig is a DTO used exclusively for config file unmarshalling.
type FileConfig struct {
	DBPath          string         `json:"db_path" yaml:"db_path"`
	LogLevel        string         `json:"log_level" yaml:"log_level"`
	LogFormat       string         `json:"log_format" yaml:"log_format"`
	SplashDelay     timex.Duration `json:"splash_delay" yaml:"splash_delay"`
	RememberSession bool           `json:"remember_session" yaml:"remember_session"`
}

// parseFile overlays cfg with values from the file at path. An empty path
// loads nothing.
func parseFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	fc := FileConfig{
		DBPath:          cfg.DBPath,
		LogLevel:        cfg.LogLevel,
		LogFormat:       cfg.LogFormat,
		SplashDelay:     timex.Duration{Duration: cfg.SplashDelay},
		RememberSession: cfg.RememberSession,
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	default:
		err = json.Unmarshal(data, &fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	cfg.DBPath = fc.DBPath
	cfg.LogLevel = fc.LogLevel
	cfg.LogFormat = fc.LogFormat
	cfg.SplashDelay = time.Duration(fc.SplashDelay.Duration)
	cfg.RememberSession = fc.RememberSession
	return nil
}
