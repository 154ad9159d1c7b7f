// SPDX-License-Identifier: MIT
// Package: burrow/movegen
//
// movegen.go — per-token walker and successor enumeration.

package movegen

import (
	"fmt"

	"github.com/katalvlaran/burrow/board"
	"github.com/katalvlaran/burrow/placement"
)

// Move records one token relocation.
type Move struct {
	Token placement.TokenID
	Kind  board.Kind
	From  board.CellID
	To    board.CellID
	Steps int   // cells crossed
	Cost  int64 // Steps × Kind.Weight()
}

// String renders the move for logs.
func (m Move) String() string {
	return fmt.Sprintf("%s#%d %d→%d (%d×%d=%d)", m.Kind, m.Token, m.From, m.To, m.Steps, m.Kind.Weight(), m.Cost)
}

// Successor pairs a move with the placement it produces.
type Successor struct {
	Move      Move
	Placement *placement.Placement
}

// Successors returns the successors of every token in ascending token order.
func Successors(p *placement.Placement) []Successor {
	occ := p.Occupancy()
	var out []Successor
	for id := 0; id < p.Len(); id++ {
		out = appendToken(out, p, occ, placement.TokenID(id))
	}
	return out
}

// ForToken returns the successors produced by moving token id only.
func ForToken(p *placement.Placement, id placement.TokenID) []Successor {
	return appendToken(nil, p, p.Occupancy(), id)
}

// appendToken runs one walk for token id and appends what it emits.
func appendToken(out []Successor, p *placement.Placement, occ []placement.TokenID, id placement.TokenID) []Successor {
	// Settled tokens are excluded before any traversal.
	if p.Settled(id, occ) {
		return out
	}

	b := p.Board()
	from := p.Cell(id)
	w := &walker{
		board:       b,
		p:           p,
		occ:         occ,
		token:       id,
		kind:        p.Kind(id),
		from:        from,
		fromStorage: b.Cell(from).Storage(),
		visited:     make([]bool, b.Len()),
		out:         out,
	}
	w.walk(from, 0)

	return w.out
}

// walker holds the state of one token's traversal. visited is scoped to the walk.
type walker struct {
	board       *board.Board
	p           *placement.Placement
	occ         []placement.TokenID
	token       placement.TokenID
	kind        board.Kind
	from        board.CellID
	fromStorage bool
	visited     []bool
	out         []Successor
}

// walk expands cell at the given step count.
func (w *walker) walk(cell board.CellID, steps int) {
	w.visited[cell] = true

	for _, n := range w.board.Neighbors(cell) {
		if w.visited[n] || w.occ[n] != placement.None {
			continue
		}
		next := steps + 1
		c := w.board.Cell(n)

		if w.fromStorage {
			switch c.Type {
			case board.Corridor:
				w.emit(n, next)
				w.walk(n, next)
			case board.Junction, board.Slot, board.TerminalSlot:
				w.walk(n, next)
			}
			continue
		}

		switch c.Type {
		case board.Corridor, board.Junction:
			w.walk(n, next)
		case board.Slot, board.TerminalSlot:
			if c.Owner != w.kind {
				continue
			}
			switch {
			case w.chainFilled(c):
				w.emit(n, next)
			case w.occ[c.Next] == placement.None:
				w.walk(n, next)
			}
		}
	}
}

// chainFilled reports whether every cell below c holds a token of the walker's kind.
func (w *walker) chainFilled(c board.Cell) bool {
	for n := c.Next; n != board.NoCell; n = w.board.Cell(n).Next {
		t := w.occ[n]
		if t == placement.None || w.p.Kind(t) != w.kind {
			return false
		}
	}
	return true
}

// emit records the successor reached after crossing steps cells.
func (w *walker) emit(to board.CellID, steps int) {
	m := Move{
		Token: w.token,
		Kind:  w.kind,
		From:  w.from,
		To:    to,
		Steps: steps,
		Cost:  int64(steps) * w.kind.Weight(),
	}
	w.out = append(w.out, Successor{Move: m, Placement: w.p.Move(w.token, to, m.Cost)})
}
