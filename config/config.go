// Package config loads snapdash settings from file, environment and flags.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/Atrox/homedir"
	"github.com/spf13/viper"

	"github.com/daticahealth/snapdash/profile"
	"github.com/daticahealth/snapdash/session"
)

// EnvPrefix is prepended to environment variable overrides, e.g. SNAPDASH_API_HOST.
const EnvPrefix = "SNAPDASH"

// Config is the complete snapdash configuration.
type Config struct {
	API     APIConfig     `mapstructure:"api"`
	Session SessionConfig `mapstructure:"session"`
	Output  OutputConfig  `mapstructure:"output"`
	Verbose bool          `mapstructure:"verbose"`
}

// APIConfig points at the profile microservice.
type APIConfig struct {
	Host string `mapstructure:"host"`
	// Timeout bounds each request. Zero waits indefinitely.
	Timeout time.Duration `mapstructure:"timeout"`
}

// SessionConfig locates the stored session.
type SessionConfig struct {
	File string `mapstructure:"file"`
}

// OutputConfig contains output formatting settings.
type OutputConfig struct {
	Colors bool `mapstructure:"colors"`
}

// Load reads configuration from cfgFile (or the default search path), the
// environment and any values already bound on v. Pass nil to use a fresh viper.
func Load(v *viper.Viper, cfgFile string) (*Config, error) {
	if v == nil {
		v = viper.New()
	}

	if cfgFile != "" {
		exp, err := homedir.Expand(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("expanding config path: %w", err)
		}
		v.SetConfigFile(exp)
	} else {
		v.SetConfigName("snapdash")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/snapdash")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(envReplacer)
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.host", profile.DefaultHost)
	v.SetDefault("api.timeout", time.Duration(0))
	v.SetDefault("session.file", session.DefaultPath)
	v.SetDefault("output.colors", true)
	v.SetDefault("verbose", false)
}

func validate(cfg *Config) error {
	u, err := url.Parse(cfg.API.Host)
	if err != nil {
		return fmt.Errorf("api.host: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("api.host must be an http(s) URL, got %q", cfg.API.Host)
	}
	if u.Host == "" {
		return fmt.Errorf("api.host has no host: %q", cfg.API.Host)
	}
	if cfg.API.Timeout < 0 {
		return fmt.Errorf("api.timeout must not be negative, got %s", cfg.API.Timeout)
	}
	return nil
}
