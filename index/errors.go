package index

import "errors"

// === Construction errors ===

var (
	// ErrNoStartState reports a compiled automaton with no start state
	// for the given pattern. New does not return it: the internal/dfa
	// adapter always yields a start state for a pattern that compiles.
	ErrNoStartState = errors.New("index: automaton has no start state")

	// ErrInsufficientVocabulary is returned when no sequence of tokens
	// in the vocabulary can ever reach a final state, making the
	// index useless for guided generation.
	ErrInsufficientVocabulary = errors.New("index: vocabulary cannot reach any final state for this pattern")
)
