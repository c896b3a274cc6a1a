// Package config loads client settings from defaults, an optional YAML file
// and CODALAB_* environment variables.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/irjudson/codalab-cli/internal"
	"github.com/spf13/viper"
)

// Config holds client configuration.
type Config struct {
	Home string    `mapstructure:"home"`
	Log  LogConfig `mapstructure:"log"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "text" or "json"
}

// Paths returns the home layout for the configured home.
func (c Config) Paths() internal.HomePaths {
	return internal.HomePaths{Home: c.Home}
}

// Load resolves the configuration. home and configFile come from command-line
// flags and take precedence when non-empty. Without configFile,
// <home>/config.yaml is read if it exists.
func Load(home, configFile string) (Config, error) {
	paths, err := internal.GetHomePaths(home)
	if err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetDefault("home", paths.Home)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetEnvPrefix("CODALAB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetConfigType("yaml")
	explicit := configFile != ""
	if !explicit {
		configFile = paths.ConfigPath()
	}
	v.SetConfigFile(configFile)
	if err := v.ReadInConfig(); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	// the flag wins over env and file
	if home != "" {
		v.Set("home", paths.Home)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Home = internal.NormalizePath(c.Home)
	return c, nil
}

// Apply configures the package-level logger.
func (c Config) Apply() {
	internal.SetLogLevel(internal.ParseLogLevel(c.Log.Level))
	internal.SetLogFormat(c.Log.Format)
}
