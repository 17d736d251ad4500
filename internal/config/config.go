// Package config loads runtime settings from an optional YAML file and
// ALPHABETTER_* environment variables.
package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/spf13/viper"

	"alphabetter/internal/fetcher"
	"alphabetter/internal/logger"
)

type Config struct {
	API     APIConfig     `mapstructure:"api"`
	UI      UIConfig      `mapstructure:"ui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

type APIConfig struct {
	BaseURL   string        `mapstructure:"base_url"`
	Timeout   time.Duration `mapstructure:"timeout"`
	UserAgent string        `mapstructure:"user_agent"`
}

type UIConfig struct {
	StartRoute string `mapstructure:"start_route"` // "", "/props" or "/team-info"
	Mouse      bool   `mapstructure:"mouse"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

// Load reads configuration from path (if non-empty) and the environment.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("ALPHABETTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	d := fetcher.DefaultConfig()
	v.SetDefault("api.base_url", d.BaseURL)
	v.SetDefault("api.timeout", d.Timeout.String())
	v.SetDefault("api.user_agent", d.UserAgent)

	v.SetDefault("ui.start_route", "")
	v.SetDefault("ui.mouse", true)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.file", "alphabetter.log")
}

// Validate checks that all configuration values are usable.
func (c *Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url must be an absolute URL, got %q", c.API.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.base_url must use http or https")
	}
	if c.API.Timeout <= 0 {
		return fmt.Errorf("api.timeout must be positive")
	}
	switch c.UI.StartRoute {
	case "", "/props", "/team-info":
	default:
		return fmt.Errorf("ui.start_route must be one of: /props, /team-info")
	}
	if _, ok := logger.ParseLevel(c.Logging.Level); !ok {
		return fmt.Errorf("logging.level must be one of: debug, info, warn, error")
	}
	return nil
}

// Fetcher converts the api section into a fetcher.Config.
func (c *Config) Fetcher() fetcher.Config {
	return fetcher.DefaultConfig().
		WithBaseURL(c.API.BaseURL).
		WithTimeout(c.API.Timeout).
		WithUserAgent(c.API.UserAgent)
}
