// SPDX-License-Identifier: MIT
// Package: burrow/placement
//
// placement.go — Token, Placement, construction and copy-on-move.

package placement

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/katalvlaran/burrow/board"
)

// TokenID identifies a token for its whole lifetime. Ids are dense, 0..Len()-1,
// in the order tokens were passed to New.
type TokenID int

// None marks an empty cell in an Occupancy table.
const None TokenID = -1

// Token is a read-only view of one token.
type Token struct {
	ID   TokenID
	Kind board.Kind
	Cell board.CellID
}

// Spec is the input description of one token.
type Spec struct {
	Kind board.Kind
	Cell board.CellID
}

// Placement assigns every token to a cell and carries the cumulative cost.
type Placement struct {
	board *board.Board
	kinds []board.Kind   // shared, never written after New
	cells []board.CellID // owned, indexed by TokenID
	cost  int64
}

type config struct {
	cost  int64
	exact bool
}

// Option customizes New.
type Option func(*config)

// WithCost sets the starting cumulative cost. Panics if c < 0.
func WithCost(c int64) Option {
	if c < 0 {
		panic(fmt.Sprintf("%s: %d", ErrBadCost, c))
	}
	return func(cfg *config) { cfg.cost = c }
}

// WithExactFill requires exactly one token per storage cell of every kind.
func WithExactFill() Option {
	return func(cfg *config) { cfg.exact = true }
}

// New validates specs against b and returns the initial placement.
//
// Validation order: ErrNilBoard, ErrNoTokens, board.ErrUnknownKind,
// board.ErrCellNotFound, ErrCellConflict, ErrTokenCount.
func New(b *board.Board, specs []Spec, opts ...Option) (*Placement, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if b == nil {
		return nil, ErrNilBoard
	}
	if len(specs) == 0 {
		return nil, ErrNoTokens
	}

	p := &Placement{
		board: b,
		kinds: make([]board.Kind, len(specs)),
		cells: make([]board.CellID, len(specs)),
		cost:  cfg.cost,
	}
	taken := make(map[board.CellID]int, len(specs))
	for i, s := range specs {
		if !s.Kind.Valid() {
			return nil, fmt.Errorf("token %d: %w: %q", i, board.ErrUnknownKind, byte(s.Kind))
		}
		if !b.Has(s.Cell) {
			return nil, fmt.Errorf("token %d: cell %d: %w", i, s.Cell, board.ErrCellNotFound)
		}
		if j, dup := taken[s.Cell]; dup {
			return nil, fmt.Errorf("tokens %d and %d on cell %d: %w", j, i, s.Cell, ErrCellConflict)
		}
		taken[s.Cell] = i
		p.kinds[i] = s.Kind
		p.cells[i] = s.Cell
	}

	counts := lo.CountValues(p.kinds)
	for _, k := range board.Kinds {
		have, room := counts[k], b.Slots(k)
		if have > room || (cfg.exact && have != room) {
			return nil, fmt.Errorf("kind %s: %d tokens for %d slots: %w", k, have, room, ErrTokenCount)
		}
	}

	return p, nil
}

// Board returns the board the placement lives on.
func (p *Placement) Board() *board.Board { return p.board }

// Len returns the number of tokens.
func (p *Placement) Len() int { return len(p.cells) }

// Cost returns the cumulative cost paid to reach this placement.
func (p *Placement) Cost() int64 { return p.cost }

// Kind returns the kind of token id.
func (p *Placement) Kind(id TokenID) board.Kind { return p.kinds[id] }

// Cell returns the cell token id occupies.
func (p *Placement) Cell(id TokenID) board.CellID { return p.cells[id] }

// Token returns a view of token id.
func (p *Placement) Token(id TokenID) Token {
	return Token{ID: id, Kind: p.kinds[id], Cell: p.cells[id]}
}

// Tokens returns views of all tokens in id order.
func (p *Placement) Tokens() []Token {
	return lo.Times(len(p.cells), func(i int) Token { return p.Token(TokenID(i)) })
}

// Occupancy returns a table indexed by CellID holding the token on each cell,
// or None.
func (p *Placement) Occupancy() []TokenID {
	occ := make([]TokenID, p.board.Len())
	for i := range occ {
		occ[i] = None
	}
	for id, c := range p.cells {
		occ[c] = TokenID(id)
	}
	return occ
}

// AtHome reports whether token id rests on a storage cell reserved for its kind.
func (p *Placement) AtHome(id TokenID) bool {
	return p.board.Cell(p.cells[id]).Reserves(p.kinds[id])
}

// Settled reports whether token id is AtHome and every cell below it holds a
// token of the same kind. occ must come from p.Occupancy.
func (p *Placement) Settled(id TokenID, occ []TokenID) bool {
	if !p.AtHome(id) {
		return false
	}
	k := p.kinds[id]
	for n := p.board.Cell(p.cells[id]).Next; n != board.NoCell; n = p.board.Cell(n).Next {
		if occ[n] == None || p.kinds[occ[n]] != k {
			return false
		}
	}
	return true
}

// IsGoal reports whether every token is AtHome.
func (p *Placement) IsGoal() bool {
	for id := range p.cells {
		if !p.AtHome(TokenID(id)) {
			return false
		}
	}
	return true
}

// Signature encodes the per-token cell assignment, four bytes per token. Cost
// is excluded.
func (p *Placement) Signature() string {
	buf := make([]byte, 4*len(p.cells))
	for i, c := range p.cells {
		binary.LittleEndian.PutUint32(buf[4*i:], uint32(c))
	}
	return string(buf)
}

// KindSignature encodes the kind standing on every cell ('.' when empty).
// Placements that differ only by swapping same-kind tokens share it.
func (p *Placement) KindSignature() string {
	var sb strings.Builder
	sb.Grow(p.board.Len())
	for _, t := range p.Occupancy() {
		if t == None {
			sb.WriteByte('.')
			continue
		}
		sb.WriteByte(byte(p.kinds[t]))
	}
	return sb.String()
}

// Equal reports whether both placements put every token on the same cell.
func (p *Placement) Equal(o *Placement) bool {
	if o == nil || len(o.cells) != len(p.cells) {
		return false
	}
	for i := range p.cells {
		if p.cells[i] != o.cells[i] || p.kinds[i] != o.kinds[i] {
			return false
		}
	}
	return true
}

// Move returns a copy of p with token id moved to cell to and stepCost added.
// p is not modified. Moving onto an occupied cell is a caller defect and panics.
func (p *Placement) Move(id TokenID, to board.CellID, stepCost int64) *Placement {
	for other, c := range p.cells {
		if c == to && TokenID(other) != id {
			panic(fmt.Errorf("move token %d to cell %d held by token %d: %w", id, to, other, ErrCellConflict))
		}
	}
	cells := make([]board.CellID, len(p.cells))
	copy(cells, p.cells)
	cells[id] = to

	return &Placement{board: p.board, kinds: p.kinds, cells: cells, cost: p.cost + stepCost}
}

// String renders the placement compactly for logs.
func (p *Placement) String() string {
	return fmt.Sprintf("%s@%d", p.KindSignature(), p.cost)
}
