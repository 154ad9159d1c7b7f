// Package placement describes where every token sits on a board and what it
// cost to get there.
//
// A Placement is a value: it is created once (New) or derived from another by
// moving exactly one token (Move), and never mutated afterwards. Token kinds
// are shared between all placements derived from the same origin; the cell
// assignment is copied on every move.
//
// Equality ignores cost. Signature encodes the per-token cell assignment and is
// the dedup key of the search memo. KindSignature encodes which kind occupies
// each cell and merges placements that differ only by swapping tokens of the
// same kind.
//
// Predicates:
//
//   - AtHome(id):  the token rests on a storage cell reserved for its kind.
//   - Settled(id): AtHome and every cell below it in the branch holds a token of
//     the same kind. Settled tokens never need to move again.
//   - IsGoal():    every token is AtHome.
package placement
