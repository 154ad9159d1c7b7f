// SPDX-License-Identifier: MIT
// Package: burrow/board
//
// cell.go — cell identity and the closed set of cell variants.

package board

import "fmt"

// CellID is the stable index of a cell inside its Board.
type CellID int

// NoCell terminates slot chains and marks absent references.
const NoCell CellID = -1

// CellType is the variant tag of a cell. The set is closed; movement rules
// switch over it exhaustively.
type CellType uint8

const (
	// Corridor is a hallway cell a token may stop on.
	Corridor CellType = iota
	// Junction is a hallway cell where a branch hangs off. Tokens pass through
	// it but never stop on it.
	Junction
	// Slot is a storage cell reserved for one Kind with a deeper cell below it.
	Slot
	// TerminalSlot is the deepest storage cell of a branch.
	TerminalSlot
)

// String returns the variant name.
func (t CellType) String() string {
	switch t {
	case Corridor:
		return "Corridor"
	case Junction:
		return "Junction"
	case Slot:
		return "Slot"
	case TerminalSlot:
		return "TerminalSlot"
	default:
		return fmt.Sprintf("CellType(%d)", uint8(t))
	}
}

// Storage reports whether the variant is reserved for a kind.
func (t CellType) Storage() bool {
	return t == Slot || t == TerminalSlot
}

// Cell is one node of the board graph.
//
// Owner is set only on storage cells. Next points one step deeper toward the
// TerminalSlot of the same branch and is NoCell everywhere else. Depth counts
// storage cells from the branch entrance (1 for the top slot) and is 0 for
// hallway cells.
type Cell struct {
	ID    CellID
	Type  CellType
	Owner Kind
	Next  CellID
	Depth int
}

// Storage reports whether c is a Slot or TerminalSlot.
func (c Cell) Storage() bool { return c.Type.Storage() }

// Reserves reports whether c is a storage cell reserved for kind k.
func (c Cell) Reserves(k Kind) bool {
	return c.Type.Storage() && c.Owner == k
}

// String renders the cell for logs and test failures.
func (c Cell) String() string {
	if c.Storage() {
		return fmt.Sprintf("%s(%s)#%d", c.Type, c.Owner, c.ID)
	}
	return fmt.Sprintf("%s#%d", c.Type, c.ID)
}
