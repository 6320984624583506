// Package index builds the token-level transition table a Guide walks
// at generation time: for every automaton state reachable under the
// compiled pattern, which vocabulary tokens may be emitted next and
// which state each leads to.
package index

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kaptinlin/outlines-go/internal/dfa"
	"github.com/kaptinlin/outlines-go/primitives"
	"github.com/kaptinlin/outlines-go/vocabulary"
)

// Index is the token-transition table for a single compiled pattern
// and vocabulary pair. It is immutable once built.
type Index struct {
	initial     primitives.StateId
	finals      map[primitives.StateId]struct{}
	transitions map[primitives.StateId]map[primitives.TokenId]primitives.StateId
	eosTokenID  primitives.TokenId
	vocabSize   int
}

// New explores every state reachable from the pattern's start state by
// trying each vocabulary token against it, recording for each
// (state, token) pair either the resulting state (when the token
// keeps the match alive or completes it) or nothing at all (when the
// token would run the match off the automaton and it is dropped from
// that state's allowed set).
//
// A token is kept from a state when walking its bytes ends in an
// intermediate state (not yet a match, but not dead) or in a state
// that is a full match at end-of-input; a token that runs the
// automaton dead partway through is simply unreachable from that
// state and is skipped, not an error.
func New(regex string, vocab *vocabulary.Vocabulary) (*Index, error) {
	automaton, err := dfa.Compile(regex)
	if err != nil {
		return nil, err
	}

	start := automaton.StartState()
	eosTokenID := vocab.EOSTokenID()

	transitions := make(map[primitives.StateId]map[primitives.TokenId]primitives.StateId)
	finals := make(map[primitives.StateId]struct{})

	seen := map[primitives.StateId]struct{}{start: {}}
	stack := []primitives.StateId{start}

	entries := vocab.All()

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if automaton.EOIAccepts(current) {
			finals[current] = struct{}{}
		}

	tokenLoop:
		for _, entry := range entries {
			if containsTokenID(entry.IDs, eosTokenID) {
				continue
			}

			next := current
			for _, b := range entry.Token {
				next = automaton.Step(next, b)
				if automaton.IsDead(next) {
					continue tokenLoop
				}
			}

			isIntermediate := !automaton.IsMatch(next)
			isFullMatch := automaton.EOIAccepts(next)
			if isIntermediate || isFullMatch {
				for _, tokenID := range entry.IDs {
					putTransition(transitions, current, tokenID, next)
				}
			}

			if _, ok := seen[next]; !ok {
				seen[next] = struct{}{}
				stack = append(stack, next)
			}
		}
	}

	for finalState := range finals {
		putTransition(transitions, finalState, eosTokenID, finalState)
	}

	if !anyTransitionReachesFinal(transitions, finals) {
		return nil, ErrInsufficientVocabulary
	}

	return &Index{
		initial:     start,
		finals:      finals,
		transitions: transitions,
		eosTokenID:  eosTokenID,
		vocabSize:   vocab.Len(),
	}, nil
}

func putTransition(m map[primitives.StateId]map[primitives.TokenId]primitives.StateId, state primitives.StateId, token primitives.TokenId, next primitives.StateId) {
	sub, ok := m[state]
	if !ok {
		sub = make(map[primitives.TokenId]primitives.StateId)
		m[state] = sub
	}
	sub[token] = next
}

func containsTokenID(ids []primitives.TokenId, target primitives.TokenId) bool {
	for _, id := range ids {
		if id == target {
			return true
		}
	}
	return false
}

func anyTransitionReachesFinal(transitions map[primitives.StateId]map[primitives.TokenId]primitives.StateId, finals map[primitives.StateId]struct{}) bool {
	for _, sub := range transitions {
		for _, end := range sub {
			if _, ok := finals[end]; ok {
				return true
			}
		}
	}
	return false
}

// AllowedTokens returns the set of token ids that may be emitted from
// state, and false if state has no recorded transitions at all.
func (idx *Index) AllowedTokens(state primitives.StateId) ([]primitives.TokenId, bool) {
	sub, ok := idx.transitions[state]
	if !ok {
		return nil, false
	}
	ids := make([]primitives.TokenId, 0, len(sub))
	for id := range sub {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, true
}

// NextState returns the state reached by emitting tokenID from state.
// Emitting the vocabulary's EOS token never has a next state: it ends
// generation instead.
func (idx *Index) NextState(state primitives.StateId, tokenID primitives.TokenId) (primitives.StateId, bool) {
	if tokenID == idx.eosTokenID {
		return 0, false
	}
	sub, ok := idx.transitions[state]
	if !ok {
		return 0, false
	}
	next, ok := sub[tokenID]
	return next, ok
}

// Initial returns the automaton's start state.
func (idx *Index) Initial() primitives.StateId {
	return idx.initial
}

// IsFinal reports whether state is a final (fully-matching) state.
func (idx *Index) IsFinal(state primitives.StateId) bool {
	_, ok := idx.finals[state]
	return ok
}

// FinalStates returns every final state, sorted for deterministic
// iteration.
func (idx *Index) FinalStates() []primitives.StateId {
	out := make([]primitives.StateId, 0, len(idx.finals))
	for s := range idx.finals {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Transitions exposes the full state-to-token-to-state table, keyed by
// state then token id, primarily for persistence (see codec.go).
func (idx *Index) Transitions() map[primitives.StateId]map[primitives.TokenId]primitives.StateId {
	return idx.transitions
}

// EOSTokenID returns the vocabulary's end-of-sequence token id baked
// into this index.
func (idx *Index) EOSTokenID() primitives.TokenId {
	return idx.eosTokenID
}

// VocabSize returns the vocabulary length at build time, used to size
// token bitmasks.
func (idx *Index) VocabSize() int {
	return idx.vocabSize
}

func (idx *Index) String() string {
	var sb strings.Builder
	sb.WriteString("Index with transitions:\n")
	states := make([]primitives.StateId, 0, len(idx.transitions))
	for s := range idx.transitions {
		states = append(states, s)
	}
	sort.Slice(states, func(i, j int) bool { return states[i] < states[j] })
	for _, s := range states {
		fmt.Fprintf(&sb, "%d -> %v\n", s, idx.transitions[s])
	}
	return sb.String()
}
