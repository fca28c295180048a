package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Config holds runtime settings for the travelbook CLI.
type Config struct {
	DBPath          string        `env:"DB_PATH"`
	LogLevel        string        `env:"LOG_LEVEL"`
	LogFormat       string        `env:"LOG_FORMAT"`
	SplashDelay     time.Duration `env:"SPLASH_DELAY"`
	RememberSession bool          `env:"REMEMBER_SESSION"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DBPath = "travelbook.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.SplashDelay = 2 * time.Second
	c.RememberSession = false
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the config file named by --config, the environment and the flags set on fs.
// fs must carry the flags registered by AddFlags and be parsed already. Later
// sources take precedence over earlier ones.
func LoadConfig(fs *pflag.FlagSet) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	path, err := fs.GetString(FlagConfig)
	if err != nil {
		return nil, fmt.Errorf("read flags: %w", err)
	}
	if err := parseFile(cfg, path); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, nil); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, fs); err != nil {
		return nil, err
	}
	return cfg, nil
}
