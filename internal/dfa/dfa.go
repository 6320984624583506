// Package dfa adapts github.com/coregx/coregex's Thompson NFA into the
// byte-at-a-time stepping interface the index builder needs: a fixed
// start state, a deterministic Step per input byte, and a match
// predicate, all addressed by primitives.StateId rather than the
// engine's own state representation.
//
// coregex's public surface is built around whole-haystack search
// (Engine.Find, lazy.DFA.Find); it does not expose a "give me the next
// state for this one byte" call. The adapter below performs its own
// subset construction over the compiled NFA, the same technique
// coregex's lazy DFA builder uses internally (epsilon-closure + move),
// caching the resulting NFA-state-sets behind small integer ids.
package dfa

import (
	"fmt"
	"sort"
	"strings"

	"github.com/coregx/coregex/nfa"

	"github.com/kaptinlin/outlines-go/primitives"
)

// DeadState is returned by Step when no byte transition survives; it
// is never present in an Automaton's match or reachable-state sets.
const DeadState primitives.StateId = 0

// Automaton is a deterministic view over a compiled regex: each
// primitives.StateId names a set of underlying NFA states reached by
// the same input prefix.
type Automaton struct {
	nfa *nfa.NFA

	sets    []set
	byKey   map[string]primitives.StateId
	start   primitives.StateId
}

type set struct {
	states  []nfa.StateID
	isMatch bool
}

// Compile builds an Automaton for pattern. The pattern must not use
// anchors (^, $, \A, \z) or word boundaries (\b, \B): none of the
// regex fragments produced by this module's schema compiler need
// them, so the adapter does not attempt to resolve those assertions
// and treats look-around states as never satisfied.
func Compile(pattern string) (*Automaton, error) {
	compiler := nfa.NewDefaultCompiler()
	n, err := compiler.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("dfa: compile %q: %w", pattern, err)
	}

	a := &Automaton{
		nfa:   n,
		sets:  []set{{states: nil, isMatch: false}}, // index 0: dead state
		byKey: make(map[string]primitives.StateId),
	}

	startClosure := a.epsilonClosure([]nfa.StateID{n.StartAnchored()})
	a.start = a.intern(startClosure)
	return a, nil
}

// StartState returns the automaton's initial state.
func (a *Automaton) StartState() primitives.StateId {
	return a.start
}

// IsMatch reports whether s corresponds to a set of NFA states that
// includes a match state, i.e. the input consumed so far is a
// complete match.
func (a *Automaton) IsMatch(s primitives.StateId) bool {
	if int(s) >= len(a.sets) {
		return false
	}
	return a.sets[s].isMatch
}

// EOIAccepts reports whether s accepts at end-of-input. Since the
// compiled patterns carry no end-of-text assertions, this coincides
// with IsMatch; it is kept as a distinct method so callers mirror the
// three-way predicate (intermediate / full-match / reject) without
// caring that the two checks happen to agree here.
func (a *Automaton) EOIAccepts(s primitives.StateId) bool {
	return a.IsMatch(s)
}

// IsDead reports whether s is the unrecoverable dead state: no input
// byte from here will ever reach a match.
func (a *Automaton) IsDead(s primitives.StateId) bool {
	return s == DeadState
}

// Step consumes one byte from state s and returns the resulting
// state, or DeadState if no NFA transition survives.
func (a *Automaton) Step(s primitives.StateId, b byte) primitives.StateId {
	if int(s) >= len(a.sets) || s == DeadState {
		return DeadState
	}
	next := a.move(a.sets[s].states, b)
	if len(next) == 0 {
		return DeadState
	}
	closure := a.epsilonClosure(next)
	if len(closure) == 0 {
		return DeadState
	}
	return a.intern(closure)
}

func (a *Automaton) intern(states []nfa.StateID) primitives.StateId {
	key := stateKey(states)
	if id, ok := a.byKey[key]; ok {
		return id
	}
	id := primitives.StateId(len(a.sets))
	a.sets = append(a.sets, set{states: states, isMatch: a.containsMatch(states)})
	a.byKey[key] = id
	return id
}

func (a *Automaton) containsMatch(states []nfa.StateID) bool {
	for _, sid := range states {
		if a.nfa.IsMatch(sid) {
			return true
		}
	}
	return false
}

// epsilonClosure follows Epsilon, Split and Capture transitions
// unconditionally; StateLook transitions are never followed, which is
// correct for the anchor-free patterns this adapter targets (see the
// Compile doc comment) and simply means an anchored pattern would
// fail to reach its post-anchor states, a limitation rather than a
// silent miscompile.
func (a *Automaton) epsilonClosure(states []nfa.StateID) []nfa.StateID {
	seen := make(map[nfa.StateID]bool, len(states)*2)
	stack := make([]nfa.StateID, 0, len(states)*2)
	for _, sid := range states {
		if !seen[sid] {
			seen[sid] = true
			stack = append(stack, sid)
		}
	}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		st := a.nfa.State(cur)
		if st == nil {
			continue
		}
		switch st.Kind() {
		case nfa.StateEpsilon:
			if next := st.Epsilon(); next != nfa.InvalidState && !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		case nfa.StateSplit:
			l, r := st.Split()
			if l != nfa.InvalidState && !seen[l] {
				seen[l] = true
				stack = append(stack, l)
			}
			if r != nfa.InvalidState && !seen[r] {
				seen[r] = true
				stack = append(stack, r)
			}
		case nfa.StateCapture:
			_, _, next := st.Capture()
			if next != nfa.InvalidState && !seen[next] {
				seen[next] = true
				stack = append(stack, next)
			}
		}
	}

	out := make([]nfa.StateID, 0, len(seen))
	for sid := range seen {
		out = append(out, sid)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// move returns the NFA states reachable from states on input byte b,
// via ByteRange or Sparse transitions.
func (a *Automaton) move(states []nfa.StateID, b byte) []nfa.StateID {
	var targets []nfa.StateID
	seen := make(map[nfa.StateID]bool)
	for _, sid := range states {
		st := a.nfa.State(sid)
		if st == nil {
			continue
		}
		switch st.Kind() {
		case nfa.StateByteRange:
			lo, hi, next := st.ByteRange()
			if b >= lo && b <= hi && !seen[next] {
				seen[next] = true
				targets = append(targets, next)
			}
		case nfa.StateSparse:
			for _, tr := range st.Transitions() {
				if b >= tr.Lo && b <= tr.Hi && !seen[tr.Next] {
					seen[tr.Next] = true
					targets = append(targets, tr.Next)
				}
			}
		}
	}
	return targets
}

func stateKey(states []nfa.StateID) string {
	var sb strings.Builder
	for i, sid := range states {
		if i > 0 {
			sb.WriteByte(',')
		}
		fmt.Fprintf(&sb, "%d", sid)
	}
	return sb.String()
}
