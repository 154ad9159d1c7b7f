// Package burrow is the module root of a minimum-cost solver for token-sorting
// puzzles on branched boards.
//
// A board is a hallway of Corridor cells with Junction cells leading into
// dead-end branches, each branch reserved for one kind of token. Tokens of
// kind A, B, C and D pay 1, 10, 100 and 1000 per step. The solver finds the
// cheapest sequence of moves that brings every token into a branch of its
// own kind.
//
// Packages:
//
//   - board:     immutable cell graph and the canonical shallow and deep layouts.
//   - placement: token positions, goal test and memo signatures.
//   - movegen:   legal one-token moves under the hallway and branch rules.
//   - search:    uniform-cost search with memo, budget, cancellation and path recovery.
//   - scenario:  YAML puzzle documents and the built-in presets.
//   - config:    viper/pflag configuration for the command.
//   - cmd/burrow: solves presets and scenario files concurrently and logs results.
//
// Quick start:
//
//	s, _ := scenario.Preset("example-shallow")
//	_, start, _ := s.Build()
//	res, _ := search.Solve(start, search.WithInterchangeableKinds())
//	fmt.Println(res.Cost) // 12521
package burrow
