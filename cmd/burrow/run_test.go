// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/config"
	"github.com/katalvlaran/burrow/scenario"
	"github.com/katalvlaran/burrow/search"
)

func TestRun_PresetAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solved.yaml")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, scenario.Encode(f, scenario.Scenario{
		Name:     "solved",
		Variant:  "shallow",
		Branches: []string{"AA", "BB", "CC", "DD"},
	}))
	require.NoError(t, f.Close())

	cfg, err := config.Load([]string{"--preset", "example-shallow", "--path", path})
	require.NoError(t, err)

	reports, err := run(context.Background(), cfg, zerolog.Nop())
	require.NoError(t, err)
	require.Len(t, reports, 2)

	assert.Equal(t, "example-shallow", reports[0].Name)
	assert.True(t, reports[0].Result.Found)
	assert.EqualValues(t, 12521, reports[0].Result.Cost)
	assert.NotEmpty(t, reports[0].Result.Path)

	assert.Equal(t, "solved", reports[1].Name)
	assert.True(t, reports[1].Result.Found)
	assert.Zero(t, reports[1].Result.Cost)
	assert.Empty(t, reports[1].Result.Path)
}

func TestRun_Errors(t *testing.T) {
	cfg, err := config.Load([]string{"--preset", "no-such-preset"})
	require.NoError(t, err)
	_, err = run(context.Background(), cfg, zerolog.Nop())
	assert.ErrorIs(t, err, scenario.ErrUnknownPreset)

	cfg, err = config.Load([]string{"--preset", "example-shallow", "--max-expansions", "5"})
	require.NoError(t, err)
	_, err = run(context.Background(), cfg, zerolog.Nop())
	assert.ErrorIs(t, err, search.ErrBudgetExhausted)

	cfg, err = config.Load([]string{"--preset", "example-shallow"})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = run(ctx, cfg, zerolog.Nop())
	assert.ErrorIs(t, err, context.Canceled)
}
