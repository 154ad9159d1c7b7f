// Package search defines the options, results and sentinel errors of the
// uniform-cost placement search.
//
// Options:
//
//	– WithContext:             cancellation; checked once per frontier pop.
//	– WithMaxExpansions:       expansion budget; exceeding it yields ErrBudgetExhausted.
//	– WithInterchangeableKinds: memo keyed by KindSignature instead of Signature.
//	– WithReturnPath:          keep predecessors and return the move sequence.
//	– WithLogger:              zerolog logger for debug progress lines.
//	– WithProgressEvery:       expansions between progress lines.
//	– WithOnExpand, WithOnRelax: observation hooks.
//
// Errors (sentinel):
//
//	– ErrNilPlacement     if the start placement is nil.
//	– ErrBudgetExhausted  if MaxExpansions is reached before a goal is popped.
//	– ErrBadMaxExpansions if WithMaxExpansions receives n ≤ 0 (panic).
//	– ErrBadProgress      if WithProgressEvery receives n ≤ 0 (panic).
//
// Exhausting the frontier is not an error: Solve returns Result{Found: false}.
package search

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/katalvlaran/burrow/movegen"
	"github.com/katalvlaran/burrow/placement"
)

// Sentinel errors returned by Solve.
var (
	// ErrNilPlacement indicates a nil start placement.
	ErrNilPlacement = errors.New("search: start placement is nil")

	// ErrBudgetExhausted indicates the expansion budget ran out before a goal
	// was found. It says nothing about whether a solution exists.
	ErrBudgetExhausted = errors.New("search: expansion budget exhausted")

	// ErrBadMaxExpansions indicates a non-positive expansion budget.
	ErrBadMaxExpansions = errors.New("search: MaxExpansions must be positive")

	// ErrBadProgress indicates a non-positive progress interval.
	ErrBadProgress = errors.New("search: ProgressEvery must be positive")
)

const defaultProgressEvery = 100_000

// Options configures Solve.
type Options struct {
	Ctx             context.Context
	MaxExpansions   int  // 0 means unbounded
	Interchangeable bool // memo keyed by KindSignature
	ReturnPath      bool
	Logger          zerolog.Logger
	ProgressEvery   int
	OnExpand        func(p *placement.Placement)
	OnRelax         func(sig string, cost int64)
}

// Option is a functional option for Solve.
type Option func(*Options)

// DefaultOptions returns: background context, no budget, per-token memo keys,
// no path, the global zerolog logger, progress every 100000 expansions and no hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:           context.Background(),
		Logger:        log.Logger,
		ProgressEvery: defaultProgressEvery,
	}
}

// WithContext sets the cancellation context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxExpansions caps the number of expanded placements. Panics if n ≤ 0.
func WithMaxExpansions(n int) Option {
	if n <= 0 {
		panic(ErrBadMaxExpansions.Error())
	}
	return func(o *Options) { o.MaxExpansions = n }
}

// WithInterchangeableKinds keys the memo by KindSignature, so placements that
// differ only by swapping tokens of the same kind are searched once.
func WithInterchangeableKinds() Option {
	return func(o *Options) { o.Interchangeable = true }
}

// WithReturnPath records predecessors and fills Result.Path.
func WithReturnPath() Option {
	return func(o *Options) { o.ReturnPath = true }
}

// WithLogger sets the logger used for debug progress lines.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// WithProgressEvery sets how many expansions pass between progress lines.
// Panics if n ≤ 0.
func WithProgressEvery(n int) Option {
	if n <= 0 {
		panic(ErrBadProgress.Error())
	}
	return func(o *Options) { o.ProgressEvery = n }
}

// WithOnExpand installs a hook called for every expanded placement.
func WithOnExpand(fn func(p *placement.Placement)) Option {
	return func(o *Options) { o.OnExpand = fn }
}

// WithOnRelax installs a hook called whenever the memo records a cost for a
// signature (including the start placement).
func WithOnRelax(fn func(sig string, cost int64)) Option {
	return func(o *Options) { o.OnRelax = fn }
}

// Stats reports the work done by one Solve call.
type Stats struct {
	Expanded  int // placements whose successors were generated
	Generated int // successors produced by the move generator
	Pushed    int // frontier insertions, including the start
	Stale     int // pops skipped as already expanded or superseded
	MemoSize  int
	Elapsed   time.Duration
}

// Result is the outcome of Solve.
//
// Found is false when the frontier emptied without reaching a goal. Cost and
// Goal are meaningful only when Found is true. Path is the move sequence from
// the start placement to Goal when WithReturnPath was set.
type Result struct {
	Found bool
	Cost  int64
	Goal  *placement.Placement
	Path  []movegen.Move
	Stats Stats
}
