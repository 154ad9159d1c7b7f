// SPDX-License-Identifier: MIT
// Package: burrow/board
//
// kind.go — the token kind alphabet and its per-step weights.

package board

import "fmt"

// Kind identifies a token kind and the storage branch reserved for it.
type Kind byte

// The supported kinds, in branch order.
const (
	KindA Kind = 'A'
	KindB Kind = 'B'
	KindC Kind = 'C'
	KindD Kind = 'D'
)

// NoKind marks cells without an owner.
const NoKind Kind = 0

// Kinds lists the alphabet in canonical branch order.
var Kinds = []Kind{KindA, KindB, KindC, KindD}

// weights is strictly increasing in alphabet order.
var weights = map[Kind]int64{
	KindA: 1,
	KindB: 10,
	KindC: 100,
	KindD: 1000,
}

// Valid reports whether k belongs to the alphabet.
func (k Kind) Valid() bool {
	_, ok := weights[k]
	return ok
}

// Weight returns the cost of moving a token of kind k across one cell.
// Unknown kinds weigh 0.
func (k Kind) Weight() int64 {
	return weights[k]
}

// String renders the kind as its letter, or "." for NoKind.
func (k Kind) String() string {
	if k == NoKind {
		return "."
	}
	return string(rune(k))
}

// ParseKind converts a letter into a Kind. Lowercase letters are accepted.
func ParseKind(r rune) (Kind, error) {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	k := Kind(r)
	if r > 0xff || !k.Valid() {
		return NoKind, fmt.Errorf("%w: %q", ErrUnknownKind, r)
	}
	return k, nil
}
