// Package config loads gsys settings from .gsys.yaml files via viper.
// A missing config file is not an error; every setting has a default.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/gsys/gsys/internal/errors"
	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the per-directory config file name.
	ConfigFileName = ".gsys.yaml"
	// GlobalConfigDir is the directory for global config, under $HOME.
	GlobalConfigDir = ".config/gsys"
	// GlobalConfigFile is the global config file name.
	GlobalConfigFile = "config.yaml"
)

// Defaults applied when a key is absent.
const (
	DefaultTickRate = 250 * time.Millisecond
	DefaultExitKey  = "q"
	DefaultFormat   = "plain"
	DefaultWindow   = 30.0

	// MinTickRate guards against polling loops that would saturate a core.
	MinTickRate = 50 * time.Millisecond
)

// Config holds the resolved gsys settings.
type Config struct {
	// TickRate is the graph poll/redraw interval.
	TickRate time.Duration
	// ExitKey quits the graph mode ("q", "esc", "ctrl+c", ...).
	ExitKey string
	// Format is the default output format for get/dump (plain, json, yaml).
	Format string
	// Window is the graph x-axis span in seconds.
	Window float64
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		TickRate: DefaultTickRate,
		ExitKey:  DefaultExitKey,
		Format:   DefaultFormat,
		Window:   DefaultWindow,
	}
}

// Load reads config from the given path, falling back to defaults for
// absent keys.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("tick_rate", DefaultTickRate)
	v.SetDefault("exit_key", DefaultExitKey)
	v.SetDefault("format", DefaultFormat)
	v.SetDefault("window", DefaultWindow)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to read config file "+path,
			"Check the file exists and is valid YAML")
	}

	cfg := &Config{
		TickRate: v.GetDuration("tick_rate"),
		ExitKey:  v.GetString("exit_key"),
		Format:   v.GetString("format"),
		Window:   v.GetFloat64("window"),
	}

	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadResolved finds and loads config using the search order:
// explicit path, ./.gsys.yaml, ~/.config/gsys/config.yaml. A missing
// file resolves to defaults; only an explicit path must exist.
func LoadResolved(explicit string) (*Config, error) {
	path, err := Find(explicit)
	if err != nil {
		return nil, err
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Find locates the config file. Returns empty when no file exists and no
// explicit path was given.
func Find(explicit string) (string, error) {
	if explicit != "" {
		if _, err := os.Stat(explicit); err != nil {
			return "", errors.WrapWithCode(err, errors.ErrConfig,
				"Specified config file not found: "+explicit,
				"Check the path is correct")
		}
		return explicit, nil
	}

	cwd, err := os.Getwd()
	if err == nil {
		local := filepath.Join(cwd, ConfigFileName)
		if _, err := os.Stat(local); err == nil {
			return local, nil
		}
	}

	home, err := os.UserHomeDir()
	if err == nil {
		global := filepath.Join(home, GlobalConfigDir, GlobalConfigFile)
		if _, err := os.Stat(global); err == nil {
			return global, nil
		}
	}

	return "", nil
}

// Validate checks the loaded settings.
func Validate(cfg *Config) error {
	if cfg.TickRate < MinTickRate {
		return errors.New(errors.ErrConfig,
			"tick_rate is below the minimum of "+MinTickRate.String(),
			"Use a tick rate of at least 50ms")
	}
	if cfg.Window <= 0 {
		return errors.New(errors.ErrConfig,
			"window must be a positive number of seconds",
			"The default is 30")
	}
	switch cfg.Format {
	case "plain", "json", "yaml":
	default:
		return errors.New(errors.ErrConfig,
			"format must be one of plain, json, yaml",
			"")
	}
	return nil
}

// WriteDefault writes a commented default config to path.
func WriteDefault(path string) error {
	content := `# gsys configuration
# Poll/redraw interval for ` + "`gsys graph`" + ` (minimum 50ms).
tick_rate: 250ms

# Key that exits the graph mode: a single character, or one of
# enter, esc, ctrl+c.
exit_key: q

# Default output format for get/dump: plain, json, or yaml.
format: plain

# Graph x-axis span in seconds.
window: 30
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write config file "+path,
			"Check directory permissions")
	}
	return nil
}
