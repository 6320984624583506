package guide

import "errors"

var (
	// ErrNoNextState is returned by Advance when the current state has
	// no transition for the given token id.
	ErrNoNextState = errors.New("guide: no transition for token from current state")

	// ErrRollbackOverreach is returned by RollbackState when asked to
	// pop more entries than the rollback history holds.
	ErrRollbackOverreach = errors.New("guide: rollback count exceeds recorded history")

	// ErrInvalidMaskBuffer is returned by WriteMaskInto when the
	// destination slice is too small to hold one bit per vocabulary
	// token.
	ErrInvalidMaskBuffer = errors.New("guide: mask buffer too small for vocabulary size")
)
