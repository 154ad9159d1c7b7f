// Package movegen enumerates the legal one-token moves out of a placement.
//
// A move relocates one token along a contiguous path of empty cells; its cost
// is the number of cells crossed times the token kind's weight. Moves are
// found by a depth-first walk from the token's cell that never revisits a cell
// within the same walk and never passes through an occupied cell.
//
// Rules:
//
//   - A Settled token (home, with only its own kind below it) never moves.
//   - From a storage cell the walk passes freely through junctions and other
//     storage cells and stops on every reachable Corridor cell. Each corridor
//     cell reached is a separate successor; the walk continues past it.
//   - From a Corridor (or Junction) the only stopping point is inside the
//     token's own branch: the walk enters a branch only if it is reserved for
//     the token's kind, descends while the next cell is empty, and stops on the
//     first cell whose whole chain below holds tokens of the same kind. A branch
//     holding any foreign token below the free cells is not entered.
//
// The generator never fails; a token without legal moves contributes nothing.
//
// Complexity: O(V) per token walk with a per-walk visited table.
package movegen
