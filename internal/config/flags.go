package config

import (
	"fmt"

	"github.com/spf13/pflag"
)

// Flag names shared by AddFlags and LoadConfig.
const (
	FlagConfig    = "config"
	FlagDB        = "db"
	FlagLogLevel  = "log-level"
	FlagLogFormat = "log-format"
	FlagSplash    = "splash"
	FlagRemember  = "remember"
)

// AddFlags registers the configuration flags on fs with the built-in defaults.
func AddFlags(fs *pflag.FlagSet) {
	var d Config
	d.LoadDefaults()

	fs.StringP(FlagConfig, "c", "", "path to a JSON or YAML config file")
	fs.String(FlagDB, d.DBPath, "path to the SQLite database file")
	fs.String(FlagLogLevel, d.LogLevel, "log level (debug, info, warn, error)")
	fs.String(FlagLogFormat, d.LogFormat, "log format (text, json)")
	fs.Duration(FlagSplash, d.SplashDelay, "startup banner delay")
	fs.Bool(FlagRemember, d.RememberSession, "keep the session across runs")
}

// parseFlags overlays cfg with the flags the user actually set on fs, so an
// untouched flag never hides a value from the file or the environment.
func parseFlags(cfg *Config, fs *pflag.FlagSet) error {
	var err error

	if fs.Changed(FlagDB) {
		if cfg.DBPath, err = fs.GetString(FlagDB); err != nil {
			return fmt.Errorf("read --%s: %w", FlagDB, err)
		}
	}
	if fs.Changed(FlagLogLevel) {
		if cfg.LogLevel, err = fs.GetString(FlagLogLevel); err != nil {
			return fmt.Errorf("read --%s: %w", FlagLogLevel, err)
		}
	}
	if fs.Changed(FlagLogFormat) {
		if cfg.LogFormat, err = fs.GetString(FlagLogFormat); err != nil {
			return fmt.Errorf("read --%s: %w", FlagLogFormat, err)
		}
	}
	if fs.Changed(FlagSplash) {
		if cfg.SplashDelay, err = fs.GetDuration(FlagSplash); err != nil {
			return fmt.Errorf("read --%s: %w", FlagSplash, err)
		}
	}
	if fs.Changed(FlagRemember) {
		if cfg.RememberSession, err = fs.GetBool(FlagRemember); err != nil {
			return fmt.Errorf("read --%s: %w", FlagRemember, err)
		}
	}
	return nil
}
