package search_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/movegen"
	"github.com/katalvlaran/burrow/placement"
)

// burrowStart fills each branch (in board kind order) with the given kinds,
// listed from the entrance down.
func burrowStart(t *testing.T, b *board.Board, branches ...string) *placement.Placement {
	t.Helper()
	var specs []placement.Spec
	for i, k := range b.Kinds() {
		top := b.Branches(k)[0]
		cells := append([]board.CellID{top}, b.Chain(top)...)
		require.Len(t, branches[i], len(cells))
		for j, r := range branches[i] {
			kind, err := board.ParseKind(r)
			require.NoError(t, err)
			specs = append(specs, placement.Spec{Kind: kind, Cell: cells[j]})
		}
	}
	p, err := placement.New(b, specs, placement.WithExactFill())
	require.NoError(t, err)
	return p
}

// bruteForce computes exact shortest costs to every reachable signature by
// enumerating the reachable graph and running Bellman–Ford style relaxation
// to a fixpoint. It returns the distance table and the cheapest goal cost
// (math.MaxInt64 when no goal is reachable).
func bruteForce(start *placement.Placement) (map[string]int64, int64) {
	type arc struct {
		to   string
		cost int64
	}
	nodes := map[string]*placement.Placement{start.Signature(): start}
	arcs := map[string][]arc{}
	queue := []*placement.Placement{start}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		from := p.Signature()
		for _, s := range movegen.Successors(p) {
			to := s.Placement.Signature()
			arcs[from] = append(arcs[from], arc{to: to, cost: s.Move.Cost})
			if _, ok := nodes[to]; !ok {
				nodes[to] = s.Placement
				queue = append(queue, s.Placement)
			}
		}
	}

	dist := make(map[string]int64, len(nodes))
	for sig := range nodes {
		dist[sig] = math.MaxInt64
	}
	dist[start.Signature()] = start.Cost()
	for changed := true; changed; {
		changed = false
		for from, out := range arcs {
			if dist[from] == math.MaxInt64 {
				continue
			}
			for _, a := range out {
				if d := dist[from] + a.cost; d < dist[a.to] {
					dist[a.to] = d
					changed = true
				}
			}
		}
	}

	best := int64(math.MaxInt64)
	for sig, p := range nodes {
		if p.IsGoal() && dist[sig] < best {
			best = dist[sig]
		}
	}
	return dist, best
}
