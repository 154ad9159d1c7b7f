package movegen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/movegen"
	"github.com/katalvlaran/burrow/placement"
)

// Shallow burrow ids:
//
//	 0  1  2  5  6  9 10 13 14 17 18   hallway (2, 6, 10, 14 are junctions)
//	       3     7    11    15         top slots A B C D
//	       4     8    12    16         terminal slots
const (
	aTop, aEnd = 3, 4
	bTop, bEnd = 7, 8
	cTop, cEnd = 11, 12
	dTop, dEnd = 15, 16
)

func place(t *testing.T, b *board.Board, specs ...placement.Spec) *placement.Placement {
	t.Helper()
	p, err := placement.New(b, specs)
	require.NoError(t, err)
	return p
}

func spec(k board.Kind, c board.CellID) placement.Spec { return placement.Spec{Kind: k, Cell: c} }

// destinations maps target cell → move cost.
func destinations(succ []movegen.Successor) map[board.CellID]int64 {
	out := make(map[board.CellID]int64, len(succ))
	for _, s := range succ {
		out[s.Move.To] = s.Move.Cost
	}
	return out
}

// ------------------------------------------------------------------------
// 1. Corridor origin: entering the home branch.
// ------------------------------------------------------------------------

func TestForToken_EntersOverMatchingTerminal(t *testing.T) {
	// h0 J h1 with branch A [a1, a2]; an A already rests in a2.
	b, err := board.NewBurrow(board.WithKinds(board.KindA), board.WithMargin(1))
	require.NoError(t, err)
	p := place(t, b, spec(board.KindA, 0), spec(board.KindA, 3))

	succ := movegen.ForToken(p, 0)
	require.Len(t, succ, 1)
	m := succ[0].Move
	assert.Equal(t, board.CellID(2), m.To)
	assert.Equal(t, 2, m.Steps)
	assert.Equal(t, 2*board.KindA.Weight(), m.Cost)
	assert.Equal(t, m.Cost, succ[0].Placement.Cost())
	assert.True(t, succ[0].Placement.IsGoal())

	// The resting token is settled and contributes nothing.
	assert.Empty(t, movegen.ForToken(p, 1))
	assert.Len(t, movegen.Successors(p), 1)
}

func TestForToken_DescendsToDeepestFreeSlot(t *testing.T) {
	b := board.NewShallow()
	p := place(t, b, spec(board.KindA, 18))

	succ := movegen.ForToken(p, 0)
	require.Len(t, succ, 1, "only the terminal slot is a stopping point")
	assert.Equal(t, board.CellID(aEnd), succ[0].Move.To)
	assert.Equal(t, 10, succ[0].Move.Steps)
	assert.Equal(t, int64(10), succ[0].Move.Cost)
}

func TestForToken_SkipsForeignBranches(t *testing.T) {
	b := board.NewShallow()
	p := place(t, b, spec(board.KindC, 0))

	for _, s := range movegen.ForToken(p, 0) {
		assert.Equal(t, board.KindC, b.Cell(s.Move.To).Owner)
	}
	assert.Equal(t, map[board.CellID]int64{cEnd: 8 * 100}, destinations(movegen.ForToken(p, 0)))
}

func TestForToken_BranchWithForeignTokenBelowIsClosed(t *testing.T) {
	b := board.NewShallow()
	p := place(t, b, spec(board.KindA, 1), spec(board.KindB, aEnd))

	assert.Empty(t, movegen.ForToken(p, 0))
}

func TestForToken_BlockedHallway(t *testing.T) {
	b := board.NewShallow()
	p := place(t, b, spec(board.KindA, 18), spec(board.KindD, 9))

	assert.Empty(t, movegen.ForToken(p, 0), "D on cell 9 walls the A off from its branch")

	// D itself may only head home.
	assert.Equal(t, map[board.CellID]int64{dEnd: 5 * 1000}, destinations(movegen.ForToken(p, 1)))
}

func TestForToken_HallwayTokenNeverStopsInHallway(t *testing.T) {
	b := board.NewShallow()
	p := place(t, b, spec(board.KindB, 5), spec(board.KindB, bEnd), spec(board.KindA, bTop))

	// The A on top of the B branch blocks the entrance; the hallway B has nowhere to go.
	assert.Empty(t, movegen.ForToken(p, 0))
}

func TestForToken_JunctionOriginUsesCorridorRules(t *testing.T) {
	b := board.NewShallow()
	p := place(t, b, spec(board.KindB, 2))

	assert.Equal(t, map[board.CellID]int64{bEnd: 4 * 10}, destinations(movegen.ForToken(p, 0)))
}

// ------------------------------------------------------------------------
// 2. Storage origin: leaving a branch.
// ------------------------------------------------------------------------

func TestForToken_EveryReachableCorridorIsAStop(t *testing.T) {
	b := board.NewShallow()
	p := place(t, b, spec(board.KindB, aTop))

	want := map[board.CellID]int64{
		0: 3 * 10, 1: 2 * 10, 5: 2 * 10, 9: 4 * 10,
		13: 6 * 10, 17: 8 * 10, 18: 9 * 10,
	}
	succ := movegen.ForToken(p, 0)
	assert.Len(t, succ, len(want), "one successor per corridor cell")
	assert.Equal(t, want, destinations(succ))
	for _, s := range succ {
		assert.Equal(t, board.Corridor, b.Cell(s.Move.To).Type)
		assert.Equal(t, board.CellID(aTop), s.Move.From)
	}
}

func TestForToken_DeepTokenClimbsOut(t *testing.T) {
	b := board.NewShallow()
	p := place(t, b, spec(board.KindC, aEnd))

	got := destinations(movegen.ForToken(p, 0))
	assert.Equal(t, int64(3*100), got[1])
	assert.Equal(t, int64(4*100), got[0])
	assert.Len(t, got, 7)
}

func TestForToken_BuriedTokenCannotMove(t *testing.T) {
	b := board.NewShallow()
	p := place(t, b, spec(board.KindB, aTop), spec(board.KindC, aEnd))

	assert.Empty(t, movegen.ForToken(p, 1))
	assert.Len(t, movegen.ForToken(p, 0), 7)
}

func TestForToken_HomeButUnsettledMovesOut(t *testing.T) {
	b := board.NewShallow()
	// A on its top slot with a D beneath it must make room.
	p := place(t, b, spec(board.KindA, aTop), spec(board.KindD, aEnd))

	assert.Len(t, movegen.ForToken(p, 0), 7)
}

// A home token only counts as settled when the whole chain below it is
// filled with its kind; an empty cell below leaves it free to climb out.
func TestForToken_GapBelowHomeTokenIsNotSettled(t *testing.T) {
	b := board.NewShallow()
	p := place(t, b, spec(board.KindA, aTop))

	assert.True(t, p.AtHome(0))
	assert.False(t, p.Settled(0, p.Occupancy()))
	assert.Len(t, movegen.ForToken(p, 0), 7)

	deep := board.NewDeep()
	top := deep.Branches(board.KindA)[0]
	chain := deep.Chain(top)
	// [empty][A][empty][empty]
	q := place(t, deep, spec(board.KindA, chain[0]))

	succ := movegen.ForToken(q, 0)
	assert.Len(t, succ, 7)
	for _, s := range succ {
		assert.Equal(t, board.Corridor, deep.Cell(s.Move.To).Type)
	}
}

func TestSuccessors_SettledTokensNeverMove(t *testing.T) {
	b := board.NewShallow()
	p := place(t, b,
		spec(board.KindA, aTop), spec(board.KindA, aEnd),
		spec(board.KindD, dEnd),
		spec(board.KindB, 0),
	)

	for _, s := range movegen.Successors(p) {
		assert.Equal(t, placement.TokenID(3), s.Move.Token)
	}
}

// ------------------------------------------------------------------------
// 3. Invariants over a reachable state sample.
// ------------------------------------------------------------------------

func TestSuccessors_Invariants(t *testing.T) {
	b := board.NewShallow()
	start := place(t, b,
		spec(board.KindB, aTop), spec(board.KindA, aEnd),
		spec(board.KindC, bTop), spec(board.KindD, bEnd),
		spec(board.KindB, cTop), spec(board.KindC, cEnd),
		spec(board.KindD, dTop), spec(board.KindA, dEnd),
	)

	seen := map[string]bool{start.Signature(): true}
	queue := []*placement.Placement{start}
	for len(queue) > 0 && len(seen) < 3000 {
		p := queue[0]
		queue = queue[1:]
		occ := p.Occupancy()

		for _, s := range movegen.Successors(p) {
			m := s.Move
			require.False(t, p.Settled(m.Token, occ), "settled token %d moved", m.Token)
			require.Equal(t, m.From, p.Cell(m.Token))
			require.Equal(t, int64(m.Steps)*m.Kind.Weight(), m.Cost)
			require.Equal(t, p.Cost()+m.Cost, s.Placement.Cost())
			require.Positive(t, m.Cost)

			cells := make(map[board.CellID]bool, s.Placement.Len())
			for _, tok := range s.Placement.Tokens() {
				require.False(t, cells[tok.Cell], "two tokens on cell %d", tok.Cell)
				cells[tok.Cell] = true
			}
			require.NotEqual(t, board.Junction, b.Cell(m.To).Type)

			if sig := s.Placement.Signature(); !seen[sig] {
				seen[sig] = true
				queue = append(queue, s.Placement)
			}
		}
	}
	assert.Greater(t, len(seen), 100)
}
