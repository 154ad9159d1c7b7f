// SPDX-License-Identifier: MIT
// Package: burrow/board
//
// burrow.go — NewBurrow constructor and the two canonical variants.
//
// Contract:
//   • One hallway: margin Corridors, then per branch a Junction followed by gap
//     Corridors (the last junction is followed by margin Corridors instead).
//   • Under each Junction a chain of depth-1 Slots ending in a TerminalSlot,
//     all reserved for that branch's kind.
//   • Ids are assigned in hallway order with each branch registered right
//     after its Junction, so layouts are deterministic.
//
// Deterministic defaults:
//   • depth  = 2
//   • kinds  = A, B, C, D
//   • margin = 2
//   • gap    = 1

package board

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

const (
	defaultDepth  = 2
	defaultMargin = 2
	defaultGap    = 1

	shallowDepth = 2
	deepDepth    = 4
)

// burrowConfig aggregates the NewBurrow knobs.
type burrowConfig struct {
	depth  int
	kinds  []Kind
	margin int
	gap    int
}

// Option customizes NewBurrow.
type Option func(*burrowConfig)

// WithDepth sets the number of storage cells per branch. Panics if n < 1.
func WithDepth(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("%s: depth=%d < 1", ErrBadOption, n))
	}
	return func(c *burrowConfig) { c.depth = n }
}

// WithKinds sets the branch owners, left to right. Panics on an empty list,
// an unknown kind or a repeated kind.
func WithKinds(kinds ...Kind) Option {
	if len(kinds) == 0 {
		panic(fmt.Sprintf("%s: no kinds", ErrBadOption))
	}
	for _, k := range kinds {
		if !k.Valid() {
			panic(fmt.Sprintf("%s: kind %q", ErrBadOption, byte(k)))
		}
	}
	if len(lo.Uniq(kinds)) != len(kinds) {
		panic(fmt.Sprintf("%s: repeated kind in %v", ErrBadOption, kinds))
	}
	own := append([]Kind(nil), kinds...)
	return func(c *burrowConfig) { c.kinds = own }
}

// WithMargin sets the number of Corridor cells at each hallway end. Panics if n < 0.
func WithMargin(n int) Option {
	if n < 0 {
		panic(fmt.Sprintf("%s: margin=%d < 0", ErrBadOption, n))
	}
	return func(c *burrowConfig) { c.margin = n }
}

// WithGap sets the number of Corridor cells between neighboring junctions.
// Panics if n < 1.
func WithGap(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("%s: gap=%d < 1", ErrBadOption, n))
	}
	return func(c *burrowConfig) { c.gap = n }
}

// NewBurrow builds a hallway with one branch per kind.
func NewBurrow(opts ...Option) (*Board, error) {
	cfg := burrowConfig{
		depth:  defaultDepth,
		kinds:  Kinds,
		margin: defaultMargin,
		gap:    defaultGap,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	b := NewBuilder()
	last := NoCell

	// hall appends n corridor cells to the hallway.
	hall := func(n int) error {
		for i := 0; i < n; i++ {
			id, err := b.AddCell(Corridor, NoKind, pred(last)...)
			if err != nil {
				return err
			}
			last = id
		}
		return nil
	}

	if err := hall(cfg.margin); err != nil {
		return nil, fmt.Errorf("NewBurrow: %w", err)
	}
	for i, k := range cfg.kinds {
		j, err := b.AddCell(Junction, NoKind, pred(last)...)
		if err != nil {
			return nil, fmt.Errorf("NewBurrow: junction %s: %w", k, err)
		}
		last = j

		// Branch: depth-1 slots then the terminal, each under the previous one.
		up := j
		for d := 1; d <= cfg.depth; d++ {
			t := Slot
			if d == cfg.depth {
				t = TerminalSlot
			}
			if up, err = b.AddCell(t, k, up); err != nil {
				return nil, fmt.Errorf("NewBurrow: branch %s depth %d: %w", k, d, err)
			}
		}

		n := cfg.gap
		if i == len(cfg.kinds)-1 {
			n = cfg.margin
		}
		if err := hall(n); err != nil {
			return nil, fmt.Errorf("NewBurrow: %w", err)
		}
	}

	return b.Build()
}

// pred wraps a single optional predecessor.
func pred(id CellID) []CellID {
	if id == NoCell {
		return nil
	}
	return []CellID{id}
}

// Variant selects one of the canonical burrow shapes.
type Variant int

const (
	// Shallow has branches of depth 2.
	Shallow Variant = iota
	// Deep has branches of depth 4.
	Deep
)

// String returns the lowercase variant name.
func (v Variant) String() string {
	switch v {
	case Shallow:
		return "shallow"
	case Deep:
		return "deep"
	default:
		return fmt.Sprintf("Variant(%d)", int(v))
	}
}

// Depth returns the branch depth of the variant, or 0 if unknown.
func (v Variant) Depth() int {
	switch v {
	case Shallow:
		return shallowDepth
	case Deep:
		return deepDepth
	default:
		return 0
	}
}

// ParseVariant accepts "shallow" or "deep" in any case.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "shallow":
		return Shallow, nil
	case "deep":
		return Deep, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

// ForVariant builds the canonical board for v.
func ForVariant(v Variant) (*Board, error) {
	d := v.Depth()
	if d == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownVariant, v)
	}
	return NewBurrow(WithDepth(d))
}

// NewShallow builds the canonical depth-2 burrow (19 cells).
func NewShallow() *Board { return mustVariant(Shallow) }

// NewDeep builds the canonical depth-4 burrow (27 cells).
func NewDeep() *Board { return mustVariant(Deep) }

func mustVariant(v Variant) *Board {
	b, err := ForVariant(v)
	if err != nil {
		panic(err)
	}
	return b
}
