// SPDX-License-Identifier: MIT

// Command burrow solves token-sorting scenarios on branched boards and logs
// the minimum total move cost of each.
//
// Usage:
//
//	burrow [flags] [scenario.yaml ...]
//
// The reference presets are solved only when no scenario file is given and no
// preset is chosen by flag, environment or config file. Run with --help for the flag list; every flag also has a config
// file key and a BURROW_* environment variable.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/burrow/config"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger := newLogger(cfg)
	log.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if _, err := run(ctx, cfg, logger); err != nil {
		logger.Error().Err(err).Msg("solve failed")
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	zerolog.SetGlobalLevel(cfg.Level())
	if !cfg.Log.Pretty {
		return zerolog.New(os.Stderr).Level(cfg.Level()).With().Timestamp().Logger()
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	output.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	return zerolog.New(output).Level(cfg.Level()).With().Timestamp().Logger()
}
