// SPDX-License-Identifier: MIT

// Package config resolves the runtime configuration of the burrow command from
// defaults, an optional config file, BURROW_* environment variables and
// command-line flags (later sources win), using viper and pflag.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/burrow/search"
)

// ErrInvalid indicates a configuration value outside its domain.
var ErrInvalid = errors.New("config: invalid value")

const envPrefix = "BURROW"

// Config is the resolved configuration.
type Config struct {
	Log       LogConfig    `mapstructure:"log"`
	Search    SearchConfig `mapstructure:"search"`
	Scenarios []string     `mapstructure:"scenarios"`
	Presets   []string     `mapstructure:"presets"`
}

// LogConfig controls zerolog output.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Pretty bool   `mapstructure:"pretty"`
}

// SearchConfig mirrors the search options.
type SearchConfig struct {
	MaxExpansions        int           `mapstructure:"max_expansions"`
	Timeout              time.Duration `mapstructure:"timeout"`
	InterchangeableKinds bool          `mapstructure:"interchangeable_kinds"`
	ReturnPath           bool          `mapstructure:"return_path"`
	ProgressEvery        int           `mapstructure:"progress_every"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.pretty", true)
	v.SetDefault("search.max_expansions", 0)
	v.SetDefault("search.timeout", time.Duration(0))
	v.SetDefault("search.interchangeable_kinds", true)
	v.SetDefault("search.return_path", false)
	v.SetDefault("search.progress_every", 100_000)
	v.SetDefault("scenarios", []string{})
	v.SetDefault("presets", []string{"reference-shallow", "reference-deep"})
}

// flagKeys maps flag names to config keys.
var flagKeys = map[string]string{
	"log-level":       "log.level",
	"pretty":          "log.pretty",
	"max-expansions":  "search.max_expansions",
	"timeout":         "search.timeout",
	"interchangeable": "search.interchangeable_kinds",
	"path":            "search.return_path",
	"progress-every":  "search.progress_every",
	"preset":          "presets",
}

// Load parses args (without the program name) and resolves the configuration.
// Positional arguments are scenario files and are appended to Scenarios.
func Load(args []string) (*Config, error) {
	fs := pflag.NewFlagSet("burrow", pflag.ContinueOnError)
	cfgFile := fs.StringP("config", "c", "", "config file (yaml, json or toml)")
	fs.String("log-level", "info", "zerolog level: trace, debug, info, warn, error")
	fs.Bool("pretty", true, "human-readable console logs")
	fs.Int("max-expansions", 0, "expansion budget per search (0 = unbounded)")
	fs.Duration("timeout", 0, "wall-clock limit per search (0 = none)")
	fs.Bool("interchangeable", true, "treat tokens of the same kind as interchangeable")
	fs.Bool("path", false, "log the optimal move sequence")
	fs.Int("progress-every", 100_000, "expansions between debug progress lines")
	fs.StringSlice("preset", nil, "built-in scenario names")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("config: flags: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if err := v.BindPFlag(key, fs.Lookup(name)); err != nil {
			return nil, fmt.Errorf("config: bind %s: %w", name, err)
		}
	}

	if *cfgFile != "" {
		v.SetConfigFile(*cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", *cfgFile, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	c.Scenarios = append(c.Scenarios, fs.Args()...)

	// The default presets only fill in when nothing else was asked for.
	if len(c.Scenarios) > 0 && !presetsChosen(v, fs) {
		c.Presets = nil
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// presetsChosen reports whether presets came from a flag, the environment or
// the config file rather than from the defaults.
func presetsChosen(v *viper.Viper, fs *pflag.FlagSet) bool {
	if fs.Changed("preset") || v.InConfig("presets") {
		return true
	}
	_, ok := os.LookupEnv(envPrefix + "_PRESETS")
	return ok
}

// Validate checks value domains.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	if c.Search.MaxExpansions < 0 {
		return fmt.Errorf("%w: search.max_expansions %d", ErrInvalid, c.Search.MaxExpansions)
	}
	if c.Search.Timeout < 0 {
		return fmt.Errorf("%w: search.timeout %s", ErrInvalid, c.Search.Timeout)
	}
	if c.Search.ProgressEvery <= 0 {
		return fmt.Errorf("%w: search.progress_every %d", ErrInvalid, c.Search.ProgressEvery)
	}
	if len(c.Scenarios) == 0 && len(c.Presets) == 0 {
		return fmt.Errorf("%w: nothing to solve", ErrInvalid)
	}
	return nil
}

// Level returns the configured zerolog level. Validate guarantees it parses.
func (c *Config) Level() zerolog.Level {
	lvl, _ := zerolog.ParseLevel(c.Log.Level)
	return lvl
}

// SearchOptions translates the search section into search options. The
// timeout is applied by the caller through the context.
func (c *Config) SearchOptions() []search.Option {
	opts := []search.Option{search.WithProgressEvery(c.Search.ProgressEvery)}
	if c.Search.MaxExpansions > 0 {
		opts = append(opts, search.WithMaxExpansions(c.Search.MaxExpansions))
	}
	if c.Search.InterchangeableKinds {
		opts = append(opts, search.WithInterchangeableKinds())
	}
	if c.Search.ReturnPath {
		opts = append(opts, search.WithReturnPath())
	}
	return opts
}
