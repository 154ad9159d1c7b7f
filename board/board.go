// SPDX-License-Identifier: MIT
// Package: burrow/board
//
// board.go — the cell arena: Builder for construction, Board for reads.
//
// Design:
//   • Cells live in a flat slice indexed by CellID; adjacency is an
//     id → []id map with both directions recorded on every AddCell.
//   • Slot chains are linked top-down: registering a storage cell whose
//     predecessor is a Slot of the same owner sets that slot's Next.
//   • Build validates the chains and hands out a *Board that is never mutated.

package board

import (
	"fmt"

	"github.com/samber/lo"
)

// Builder assembles a Board cell by cell. The zero value is not usable; call
// NewBuilder.
type Builder struct {
	cells  []Cell
	adj    map[CellID][]CellID
	frozen bool
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{adj: make(map[CellID][]CellID)}
}

// AddCell registers a new cell of type t and wires an undirected edge to each
// predecessor, returning the id of the new cell.
//
// owner must be a valid Kind for Slot and TerminalSlot and NoKind otherwise.
// When a predecessor is a Slot reserved for the same owner, that slot's Next is
// linked to the new cell, so chains are built by adding cells from the branch
// entrance downward.
//
// Errors: ErrFrozen, ErrUnknownKind, ErrOwnerNotAllowed, ErrCellNotFound,
// ErrDuplicateEdge. On error the builder is left unchanged.
func (b *Builder) AddCell(t CellType, owner Kind, preds ...CellID) (CellID, error) {
	if b.frozen {
		return NoCell, ErrFrozen
	}

	// 1) Validate the owner against the variant.
	if t.Storage() {
		if !owner.Valid() {
			return NoCell, fmt.Errorf("AddCell(%s): %w: %q", t, ErrUnknownKind, byte(owner))
		}
	} else if owner != NoKind {
		return NoCell, fmt.Errorf("AddCell(%s): %w", t, ErrOwnerNotAllowed)
	}

	// 2) Validate predecessors before touching any state.
	id := CellID(len(b.cells))
	seen := make(map[CellID]struct{}, len(preds))
	for _, p := range preds {
		if p < 0 || int(p) >= len(b.cells) {
			return NoCell, fmt.Errorf("AddCell(%s): predecessor %d: %w", t, p, ErrCellNotFound)
		}
		if _, dup := seen[p]; dup {
			return NoCell, fmt.Errorf("AddCell(%s): predecessor %d: %w", t, p, ErrDuplicateEdge)
		}
		seen[p] = struct{}{}
		if pc := b.cells[p]; t.Storage() && pc.Type == Slot && pc.Owner == owner && pc.Next != NoCell {
			return NoCell, fmt.Errorf("AddCell(%s): %s already continues to %d: %w", t, pc, pc.Next, ErrBrokenChain)
		}
	}

	// 3) Register the cell and its edges.
	cell := Cell{ID: id, Type: t, Owner: owner, Next: NoCell}
	for _, p := range preds {
		pc := &b.cells[p]
		if t.Storage() && pc.Type == Slot && pc.Owner == owner {
			pc.Next = id
			cell.Depth = pc.Depth + 1
		}
		b.adj[id] = append(b.adj[id], p)
		b.adj[p] = append(b.adj[p], id)
	}
	if t.Storage() && cell.Depth == 0 {
		cell.Depth = 1
	}
	b.cells = append(b.cells, cell)

	return id, nil
}

// MustAddCell is AddCell for fixed layouts; it panics on error.
func (b *Builder) MustAddCell(t CellType, owner Kind, preds ...CellID) CellID {
	id, err := b.AddCell(t, owner, preds...)
	if err != nil {
		panic(err)
	}
	return id
}

// Build validates slot chains and returns the frozen Board. Every Slot must
// reach a TerminalSlot of the same owner by following Next.
func (b *Builder) Build() (*Board, error) {
	if b.frozen {
		return nil, ErrFrozen
	}

	for _, c := range b.cells {
		if c.Type != Slot {
			continue
		}
		cur := c
		for cur.Type == Slot {
			if cur.Next == NoCell {
				return nil, fmt.Errorf("Build: %s has no deeper cell: %w", cur, ErrBrokenChain)
			}
			cur = b.cells[cur.Next]
			if cur.Owner != c.Owner {
				return nil, fmt.Errorf("Build: %s leads into %s: %w", c, cur, ErrBrokenChain)
			}
		}
	}

	b.frozen = true
	brd := &Board{cells: b.cells, adj: b.adj}
	brd.index()

	return brd, nil
}

// Board is an immutable cell graph. All methods are safe for concurrent use.
type Board struct {
	cells []Cell
	adj   map[CellID][]CellID

	// Derived at Build time.
	branches  map[Kind][]CellID // top slot of each branch per owner
	slots     map[Kind]int      // storage cells per owner
	corridors []CellID
	depth     int
}

// index computes the derived lookups.
func (b *Board) index() {
	b.branches = make(map[Kind][]CellID)
	b.slots = make(map[Kind]int)
	for _, c := range b.cells {
		switch c.Type {
		case Corridor:
			b.corridors = append(b.corridors, c.ID)
		case Slot, TerminalSlot:
			b.slots[c.Owner]++
			if c.Depth == 1 {
				b.branches[c.Owner] = append(b.branches[c.Owner], c.ID)
			}
			if c.Depth > b.depth {
				b.depth = c.Depth
			}
		}
	}
}

// Len returns the number of cells.
func (b *Board) Len() int { return len(b.cells) }

// Has reports whether id is a registered cell.
func (b *Board) Has(id CellID) bool {
	return id >= 0 && int(id) < len(b.cells)
}

// Cell returns the cell with the given id. The id must be valid.
func (b *Board) Cell(id CellID) Cell { return b.cells[id] }

// Neighbors returns the ids adjacent to id in registration order. The returned
// slice is shared and must not be modified.
func (b *Board) Neighbors(id CellID) []CellID { return b.adj[id] }

// Chain returns the cells strictly below id in its branch, ordered toward the
// TerminalSlot. It is empty for TerminalSlot and hallway cells.
func (b *Board) Chain(id CellID) []CellID {
	var out []CellID
	for n := b.cells[id].Next; n != NoCell; n = b.cells[n].Next {
		out = append(out, n)
	}
	return out
}

// Branches returns the entrance slot of every branch reserved for k.
func (b *Board) Branches(k Kind) []CellID { return b.branches[k] }

// Slots returns the number of storage cells reserved for k.
func (b *Board) Slots(k Kind) int { return b.slots[k] }

// StorageCount returns the total number of storage cells.
func (b *Board) StorageCount() int {
	return lo.Sum(lo.Values(b.slots))
}

// Kinds returns the owners that have at least one branch, in alphabet order.
func (b *Board) Kinds() []Kind {
	return lo.Filter(Kinds, func(k Kind, _ int) bool { return b.slots[k] > 0 })
}

// Corridors returns every Corridor cell in id order.
func (b *Board) Corridors() []CellID { return b.corridors }

// Depth returns the length of the deepest branch.
func (b *Board) Depth() int { return b.depth }
