// Package board provides the immutable cell graph that tokens move across.
//
// Overview:
//
//   - A Board is an arena of cells addressed by a stable integer CellID.
//     Adjacency is stored as an id → neighbor-ids map with every undirected
//     edge recorded on both endpoints.
//   - Cells are one of four variants: Corridor (free stopping cell in the
//     hallway), Junction (hallway cell where a branch hangs off; never a
//     stopping point), Slot (storage cell reserved for one Kind, linked to the
//     next slot toward the terminal) and TerminalSlot (deepest storage cell).
//   - Boards are assembled with a Builder and frozen by Build. After that they
//     are read-only and safe to share between goroutines without locking.
//
// Burrow topology:
//
//	#############
//	#...........#   corridor (margin, junction, gap, junction, ..., margin)
//	###B#C#B#D###   one branch per kind under each junction
//	  #A#D#C#A#     chain of Slot cells ending in a TerminalSlot
//	  #########
//
// NewBurrow builds that shape from functional options (depth, kinds, margin,
// gap). Shallow and Deep are the two canonical variants (depth 2 and 4).
//
// Errors (sentinel):
//
//   - ErrUnknownKind      storage owner or token kind outside A–D.
//   - ErrCellNotFound     a referenced cell id is not registered.
//   - ErrDuplicateEdge    self edge or repeated predecessor.
//   - ErrOwnerNotAllowed  a corridor or junction cell was given an owner.
//   - ErrBrokenChain      a slot chain does not end in a matching TerminalSlot.
//   - ErrFrozen           AddCell called after Build.
//   - ErrUnknownVariant   ParseVariant/ForVariant received an unsupported name.
//
// Complexity:
//
//   - AddCell: O(len(preds)).
//   - Build:   O(V + E).
//   - Cell, Neighbors: O(1).
//   - Chain:   O(depth).
package board
