package placement

import "errors"

var (
	// ErrNilBoard indicates that New was given a nil board.
	ErrNilBoard = errors.New("placement: board is nil")

	// ErrNoTokens indicates an empty token list.
	ErrNoTokens = errors.New("placement: no tokens")

	// ErrCellConflict indicates two tokens on one cell. Returned by New for bad
	// input; Move panics with it because it can only come from a generator defect.
	ErrCellConflict = errors.New("placement: cell already occupied")

	// ErrTokenCount indicates more tokens of a kind than the board has slots
	// for it (or, with WithExactFill, any mismatch).
	ErrTokenCount = errors.New("placement: token count does not match board slots")

	// ErrBadCost indicates a negative starting cost.
	ErrBadCost = errors.New("placement: cost must be non-negative")
)
