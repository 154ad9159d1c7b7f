// SPDX-License-Identifier: MIT
// Package: burrow/board
//
// errors.go — sentinel errors for the board package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached at the failure site with fmt.Errorf("...: %w", ErrX).
//   • Option constructors (WithX) panic on meaningless values; Builder methods
//     never panic and report errors instead.

package board

import "errors"

var (
	// ErrUnknownKind indicates a kind outside the supported alphabet.
	ErrUnknownKind = errors.New("board: unknown kind")

	// ErrCellNotFound indicates a cell id that is not registered on the board.
	ErrCellNotFound = errors.New("board: cell not found")

	// ErrDuplicateEdge indicates a self edge or a predecessor listed twice.
	ErrDuplicateEdge = errors.New("board: duplicate edge")

	// ErrOwnerNotAllowed indicates that a Corridor or Junction cell was given an owner.
	ErrOwnerNotAllowed = errors.New("board: owner not allowed on non-storage cell")

	// ErrBrokenChain indicates a Slot whose chain does not end in a TerminalSlot
	// reserved for the same kind.
	ErrBrokenChain = errors.New("board: broken slot chain")

	// ErrFrozen indicates a mutation attempt after Build.
	ErrFrozen = errors.New("board: builder already built")

	// ErrUnknownVariant indicates an unsupported board variant.
	ErrUnknownVariant = errors.New("board: unknown variant")

	// ErrBadOption indicates a meaningless option value. Option constructors
	// panic with this sentinel's message.
	ErrBadOption = errors.New("board: invalid option value")
)
