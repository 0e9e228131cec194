// Package config resolves runtime settings from defaults, an optional
// config.yaml, a .env file, ASSESSIZ_* environment variables and command
// line flags, in increasing priority.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable, e.g. ASSESSIZ_DB.
const EnvPrefix = "ASSESSIZ"

// DefaultTimeLimit is the per-session time budget in seconds.
const DefaultTimeLimit = 1800

// Config holds resolved runtime settings.
type Config struct {
	// DB is the SQLite database path. Empty means the XDG default.
	DB string `mapstructure:"db"`

	// BankDir holds extra question bank files (*.yaml, *.yml, *.json).
	BankDir string `mapstructure:"bank_dir"`

	// TimeLimit is the session budget in seconds.
	TimeLimit int `mapstructure:"time_limit"`

	LogLevel string `mapstructure:"log_level"`
	LogFile  string `mapstructure:"log_file"`

	// MetricsAddr enables the Prometheus listener when non-empty.
	MetricsAddr string `mapstructure:"metrics_addr"`
}

// Options controls where Load looks for settings.
type Options struct {
	// ConfigFile is an explicit config file. When empty, config.yaml in
	// DefaultDir is read if present.
	ConfigFile string

	// EnvFile is a dotenv file loaded into the environment. Defaults to
	// ".env" in the working directory. Missing files are ignored.
	EnvFile string

	// Flags are bound by key with the highest priority. Flag names use
	// dashes (bank-dir binds bank_dir).
	Flags *pflag.FlagSet
}

var flagKeys = map[string]string{
	"db":           "db",
	"bank_dir":     "bank-dir",
	"time_limit":   "time-limit",
	"log_level":    "log-level",
	"log_file":     "log-file",
	"metrics_addr": "metrics-addr",
}

// Load resolves the configuration.
func Load(opts Options) (*Config, error) {
	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load %s: %w", envFile, err)
	}

	v := viper.New()
	v.SetDefault("db", "")
	v.SetDefault("bank_dir", "")
	v.SetDefault("time_limit", DefaultTimeLimit)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")
	v.SetDefault("metrics_addr", "")

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if opts.Flags != nil {
		for key, name := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := readConfigFile(v, opts.ConfigFile); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
		return nil
	}

	dir, err := DefaultDir()
	if err != nil {
		// No home directory: run on defaults and environment only.
		return nil
	}
	v.AddConfigPath(dir)
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.TimeLimit <= 0 {
		return fmt.Errorf("time_limit must be positive, got %d", c.TimeLimit)
	}
	return nil
}

// DefaultDir returns $XDG_CONFIG_HOME/assessiz or ~/.config/assessiz.
func DefaultDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "assessiz"), nil
}
