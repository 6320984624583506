package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaptinlin/outlines-go/index"
	"github.com/kaptinlin/outlines-go/vocabulary"
)

func buildIntegerIndex(t *testing.T) *index.Index {
	t.Helper()
	vocab := vocabulary.New(4)
	for tok, id := range map[string]uint32{"blah": 0, "1a": 1, "2": 2, "0": 3} {
		require.NoError(t, vocab.Insert([]byte(tok), id))
	}
	idx, err := index.New("0|[1-9][0-9]*", vocab)
	require.NoError(t, err)
	return idx
}

func TestAdvanceToFinalThenEOS(t *testing.T) {
	idx := buildIntegerIndex(t)
	g := New(idx, 32)

	require.NoError(t, g.Advance(3)) // "0" -> final state
	assert.True(t, g.IsFinished())

	// advancing past a final state with EOS has no next-state (no
	// continuation), and NextState treats EOS as such.
	err := g.Advance(idx.EOSTokenID())
	assert.ErrorIs(t, err, ErrNoNextState)
}

func TestRollbackFiveAdvancesThenThree(t *testing.T) {
	// regex accepting any run of 'a' followed by "end", vocabulary with
	// single-byte tokens so each Advance is one step.
	vocab := vocabulary.New(99)
	ids := map[string]uint32{"a": 1, "e": 2, "n": 3, "d": 4}
	for tok, id := range ids {
		require.NoError(t, vocab.Insert([]byte(tok), id))
	}
	idx, err := index.New("a*end", vocab)
	require.NoError(t, err)

	g := New(idx, 32)

	seq := []uint32{ids["a"], ids["a"], ids["e"], ids["n"], ids["d"]}
	visited := make([]uint32, 0, len(seq)+1)
	visited = append(visited, g.Current())
	for _, id := range seq {
		require.NoError(t, g.Advance(id))
		visited = append(visited, g.Current())
	}
	assert.True(t, g.IsFinished())

	require.NoError(t, g.RollbackState(3))
	assert.Equal(t, visited[2], g.Current())

	assert.ErrorIs(t, g.RollbackState(33), ErrRollbackOverreach)
}

func TestAcceptsTokensDoesNotMutate(t *testing.T) {
	idx := buildIntegerIndex(t)
	g := New(idx, 32)

	before := g.Current()
	assert.True(t, g.AcceptsTokens([]uint32{3})) // "0" walks to a final state
	assert.False(t, g.AcceptsTokens([]uint32{1})) // "1a" has no edge from start
	assert.Equal(t, before, g.Current())
}

func TestResetKeepsHistory(t *testing.T) {
	idx := buildIntegerIndex(t)
	g := New(idx, 32)

	require.NoError(t, g.Advance(3))
	g.Reset()
	assert.Equal(t, idx.Initial(), g.Current())

	require.NoError(t, g.RollbackState(1))
	assert.Equal(t, idx.Initial(), g.Current())
}

func TestWriteMaskInto(t *testing.T) {
	idx := buildIntegerIndex(t)
	g := New(idx, 32)

	mask := make([]uint32, 1)
	require.NoError(t, g.WriteMaskInto(mask))

	allowed, ok := g.AllowedTokens()
	require.True(t, ok)
	for _, id := range allowed {
		assert.NotZero(t, mask[id/32]&(1<<(id%32)))
	}
}

func TestWriteMaskIntoBufferTooSmall(t *testing.T) {
	idx := buildIntegerIndex(t)
	g := New(idx, 32)

	mask := make([]uint32, 0)
	err := g.WriteMaskInto(mask)
	assert.ErrorIs(t, err, ErrInvalidMaskBuffer)
}
