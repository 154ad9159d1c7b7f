// Package search finds the cheapest sequence of moves that brings every token
// home, using uniform-cost (Dijkstra-style) best-first search over placements.
//
// Notes on implementation choices:
//
//   - The frontier is a container/heap min-heap ordered by cumulative cost,
//     ties broken by an xxhash fingerprint of the memo key and then by push order.
//   - The memo maps a placement signature to the best cost seen. A successor is
//     pushed when its signature is new or the memo cost is ≥ its cost; the memo
//     never increases.
//   - "Lazy decrease-key": superseded heap entries stay in the heap and are
//     skipped when popped. A signature is expanded at most once; its first pop
//     carries its final cost because move costs are positive.
//   - The goal test happens on pop, before expansion, so the returned cost is
//     optimal and an already-solved start performs zero expansions.
//
// Complexity:
//
//   - Time:  O(S·(T·V + b log F)) for S expanded placements, T tokens, V cells,
//     branching factor b and frontier size F.
//   - Space: O(S) for the memo and frontier.
package search

import (
	"container/heap"
	"time"

	"github.com/cespare/xxhash"

	"github.com/katalvlaran/burrow/movegen"
	"github.com/katalvlaran/burrow/placement"
)

// Solve searches from start for the cheapest placement in which every token is
// at home.
//
// Returns:
//
//   - Result{Found: true, Cost, Goal, Path?} on success.
//   - Result{Found: false} with a nil error when the frontier is exhausted.
//   - ErrBudgetExhausted (with partial Stats) when MaxExpansions is reached.
//   - ctx.Err() when the context is cancelled.
//   - ErrNilPlacement for a nil start.
func Solve(start *placement.Placement, opts ...Option) (Result, error) {
	// 1) Build Options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate input.
	if start == nil {
		return Result{}, ErrNilPlacement
	}

	// 3) Run.
	r := newRunner(cfg)
	began := time.Now()
	res, err := r.run(start)
	res.Stats = r.stats
	res.Stats.MemoSize = len(r.memo)
	res.Stats.Elapsed = time.Since(began)

	return res, err
}

// edge remembers how the memo's best cost for a signature was reached.
type edge struct {
	parent string
	move   movegen.Move
}

// runner holds the mutable state of one Solve call.
type runner struct {
	options Options
	memo    map[string]int64    // signature → best known cost
	closed  map[string]struct{} // signatures already expanded
	prev    map[string]edge     // only with ReturnPath
	pq      frontier
	seq     uint64
	stats   Stats
}

func newRunner(cfg Options) *runner {
	r := &runner{
		options: cfg,
		memo:    make(map[string]int64),
		closed:  make(map[string]struct{}),
	}
	if cfg.ReturnPath {
		r.prev = make(map[string]edge)
	}
	return r
}

// key returns the memo key of p under the configured equivalence.
func (r *runner) key(p *placement.Placement) string {
	if r.options.Interchangeable {
		return p.KindSignature()
	}
	return p.Signature()
}

// push inserts p into the frontier.
func (r *runner) push(p *placement.Placement, sig string) {
	r.seq++
	r.stats.Pushed++
	heap.Push(&r.pq, &item{p: p, sig: sig, fp: xxhash.Sum64String(sig), seq: r.seq})
}

// record stores cost as the memo value for sig.
func (r *runner) record(sig string, cost int64) {
	r.memo[sig] = cost
	if r.options.OnRelax != nil {
		r.options.OnRelax(sig, cost)
	}
}

func (r *runner) run(start *placement.Placement) (Result, error) {
	cfg := r.options
	logger := cfg.Logger.With().Str("component", "search").Logger()

	// Seed the frontier with the start placement.
	startSig := r.key(start)
	r.record(startSig, start.Cost())
	r.push(start, startSig)

	for r.pq.Len() > 0 {
		// 1) Cancellation check.
		select {
		case <-cfg.Ctx.Done():
			return Result{}, cfg.Ctx.Err()
		default:
		}

		// 2) Pop the cheapest placement; skip superseded or finished entries.
		it := heap.Pop(&r.pq).(*item)
		p, sig := it.p, it.sig
		if _, done := r.closed[sig]; done || p.Cost() > r.memo[sig] {
			r.stats.Stale++
			continue
		}

		// 3) Goal test before expansion.
		if p.IsGoal() {
			logger.Debug().
				Int64("cost", p.Cost()).
				Int("expanded", r.stats.Expanded).
				Int("memo", len(r.memo)).
				Msg("goal reached")
			return Result{Found: true, Cost: p.Cost(), Goal: p, Path: r.path(sig, startSig)}, nil
		}

		// 4) Budget check.
		if cfg.MaxExpansions > 0 && r.stats.Expanded >= cfg.MaxExpansions {
			logger.Debug().Int("expanded", r.stats.Expanded).Msg("budget exhausted")
			return Result{}, ErrBudgetExhausted
		}

		// 5) Expand.
		r.closed[sig] = struct{}{}
		r.stats.Expanded++
		if cfg.OnExpand != nil {
			cfg.OnExpand(p)
		}
		if r.stats.Expanded%cfg.ProgressEvery == 0 {
			logger.Debug().
				Int("expanded", r.stats.Expanded).
				Int("frontier", r.pq.Len()).
				Int("memo", len(r.memo)).
				Int64("cost", p.Cost()).
				Msg("progress")
		}
		r.relax(sig, movegen.Successors(p))
	}

	logger.Debug().Int("expanded", r.stats.Expanded).Msg("frontier exhausted")
	return Result{}, nil
}

// relax pushes every successor that is new or at least as cheap as the memo.
func (r *runner) relax(parent string, succ []movegen.Successor) {
	r.stats.Generated += len(succ)
	for _, s := range succ {
		next := s.Placement
		sig := r.key(next)
		if _, done := r.closed[sig]; done {
			continue
		}
		if best, ok := r.memo[sig]; ok && best < next.Cost() {
			continue
		}
		r.record(sig, next.Cost())
		if r.prev != nil {
			r.prev[sig] = edge{parent: parent, move: s.Move}
		}
		r.push(next, sig)
	}
}

// path rebuilds the move sequence ending at sig, or nil without ReturnPath.
func (r *runner) path(sig, startSig string) []movegen.Move {
	if r.prev == nil {
		return nil
	}
	var rev []movegen.Move
	for sig != startSig {
		e := r.prev[sig]
		rev = append(rev, e.move)
		sig = e.parent
	}
	out := make([]movegen.Move, len(rev))
	for i, m := range rev {
		out[len(rev)-1-i] = m
	}
	return out
}
