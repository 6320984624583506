// Package guide implements the stateful cursor an LLM decoding loop
// calls into at each step: which tokens are currently allowed, how to
// advance or roll back, and how to export the allowed set as a packed
// bitmask ready for sampling.
package guide

import (
	"github.com/kaptinlin/outlines-go/index"
	"github.com/kaptinlin/outlines-go/primitives"
)

// DefaultMaxRollback is the rollback history depth used when callers
// don't need a different bound.
const DefaultMaxRollback = 32

// Guide is a mutable cursor over an immutable Index. It is not safe
// for concurrent use by multiple goroutines; share the underlying
// Index instead and give each goroutine its own Guide.
type Guide struct {
	idx *index.Index

	current     primitives.StateId
	maxRollback int
	history     []primitives.StateId // oldest first; advance appends, rollback pops from the back
}

// New returns a Guide positioned at idx's initial state, keeping up to
// maxRollback previously-visited states for RollbackState.
func New(idx *index.Index, maxRollback int) *Guide {
	if maxRollback <= 0 {
		maxRollback = DefaultMaxRollback
	}
	return &Guide{
		idx:         idx,
		current:     idx.Initial(),
		maxRollback: maxRollback,
		history:     make([]primitives.StateId, 0, maxRollback),
	}
}

// Current returns the guide's current state.
func (g *Guide) Current() primitives.StateId {
	return g.current
}

// IsFinished reports whether the current state is a final state of
// the underlying Index, i.e. emitting EOS now would produce valid
// output.
func (g *Guide) IsFinished() bool {
	return g.idx.IsFinal(g.current)
}

// AllowedTokens returns the token ids that may be emitted from the
// current state, or false if the current state has no entry at all
// (which should not happen for a state reached via Advance from a
// validly-built Index).
func (g *Guide) AllowedTokens() ([]primitives.TokenId, bool) {
	return g.idx.AllowedTokens(g.current)
}

// Advance consumes tokenID from the current state. On success the
// pre-advance state is pushed onto the rollback history (dropping the
// oldest entry if at capacity) before current is updated. On failure
// the guide is left completely unchanged.
func (g *Guide) Advance(tokenID primitives.TokenId) error {
	next, ok := g.idx.NextState(g.current, tokenID)
	if !ok {
		return ErrNoNextState
	}

	if len(g.history) == g.maxRollback {
		copy(g.history, g.history[1:])
		g.history = g.history[:len(g.history)-1]
	}
	g.history = append(g.history, g.current)
	g.current = next
	return nil
}

// RollbackState pops n entries off the back of the rollback history
// and sets current to the last one popped. It fails, leaving the
// guide unchanged, if n exceeds the recorded history length.
func (g *Guide) RollbackState(n int) error {
	if n <= 0 || n > len(g.history) {
		return ErrRollbackOverreach
	}
	target := g.history[len(g.history)-n]
	g.history = g.history[:len(g.history)-n]
	g.current = target
	return nil
}

// AcceptsTokens reports whether every token in seq has a valid
// transition starting from the current state, without mutating the
// guide.
func (g *Guide) AcceptsTokens(seq []primitives.TokenId) bool {
	state := g.current
	for _, tokenID := range seq {
		next, ok := g.idx.NextState(state, tokenID)
		if !ok {
			return false
		}
		state = next
	}
	return true
}

// Reset returns current to the Index's initial state. The rollback
// history is left intact: it records advances in order regardless of
// resets, and subsequent advances simply push from the new current.
func (g *Guide) Reset() {
	g.current = g.idx.Initial()
}

// WriteMaskInto zero-fills mask and sets bit id%32 of word id/32 for
// every token id allowed from the current state. mask must have at
// least ceil(vocab_size/32) words, where vocab_size is the underlying
// Index's own VocabSize; ErrInvalidMaskBuffer is returned otherwise.
//
// This mirrors spec'd write_mask_into's packed-bitmap semantics over a
// Go slice rather than a raw pointer/length/element-size triple: Go
// code has no business taking an unsafe.Pointer for a plain bitmask
// buffer when the caller can just pass a []uint32. The size bound
// comes from the Index itself rather than an argument, so a caller
// can't desize the mask against a vocabulary the guide doesn't have.
func (g *Guide) WriteMaskInto(mask []uint32) error {
	needed := (g.idx.VocabSize() + 31) / 32
	if len(mask) < needed {
		return ErrInvalidMaskBuffer
	}
	for i := range mask {
		mask[i] = 0
	}

	allowed, ok := g.idx.AllowedTokens(g.current)
	if !ok {
		return nil
	}
	for _, id := range allowed {
		mask[id/32] |= 1 << (id % 32)
	}
	return nil
}
