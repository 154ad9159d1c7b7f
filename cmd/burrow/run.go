// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/burrow/config"
	"github.com/katalvlaran/burrow/scenario"
	"github.com/katalvlaran/burrow/search"
)

// report is the outcome of one scenario.
type report struct {
	Name   string
	Result search.Result
}

// collect resolves presets first, then scenario files, in configured order.
func collect(cfg *config.Config) ([]scenario.Scenario, error) {
	out := make([]scenario.Scenario, 0, len(cfg.Presets)+len(cfg.Scenarios))
	for _, name := range cfg.Presets {
		s, err := scenario.Preset(name)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	for _, path := range cfg.Scenarios {
		s, err := scenario.LoadFile(path)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

// run solves every configured scenario concurrently. Reports come back in the
// order the scenarios were collected. The first failure cancels the rest.
func run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) ([]report, error) {
	scenarios, err := collect(cfg)
	if err != nil {
		return nil, err
	}

	reports := make([]report, len(scenarios))
	g, gctx := errgroup.WithContext(ctx)
	for i, s := range scenarios {
		i, s := i, s
		g.Go(func() error {
			r, err := solveOne(gctx, cfg, logger.With().Str("scenario", s.Name).Logger(), s)
			if err != nil {
				return fmt.Errorf("%s: %w", s.Name, err)
			}
			reports[i] = report{Name: s.Name, Result: r}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return reports, nil
}

func solveOne(ctx context.Context, cfg *config.Config, logger zerolog.Logger, s scenario.Scenario) (search.Result, error) {
	_, start, err := s.Build()
	if err != nil {
		return search.Result{}, err
	}

	if cfg.Search.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Search.Timeout)
		defer cancel()
	}

	logger.Debug().Str("start", start.String()).Msg("solving")
	opts := append(cfg.SearchOptions(), search.WithContext(ctx), search.WithLogger(logger))
	res, err := search.Solve(start, opts...)
	if err != nil {
		return res, err
	}

	ev := logger.Info().
		Bool("found", res.Found).
		Int("expanded", res.Stats.Expanded).
		Int("memo", res.Stats.MemoSize).
		Dur("elapsed", res.Stats.Elapsed)
	if res.Found {
		ev = ev.Int64("cost", res.Cost)
	}
	ev.Msg("solved")

	for i, m := range res.Path {
		logger.Info().Int("step", i+1).Stringer("move", m).Msg("path")
	}
	return res, nil
}
