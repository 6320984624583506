package vocabulary

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmpty(t *testing.T) {
	v := New(4)
	assert.Equal(t, uint32(4), v.EOSTokenID())
	assert.Equal(t, 1, v.Len())
	assert.Empty(t, v.All())
}

func TestInsertAndLookup(t *testing.T) {
	v := New(4)
	require.NoError(t, v.Insert([]byte("blah"), 0))
	require.NoError(t, v.Insert([]byte("0"), 3))
	require.NoError(t, v.Insert([]byte("0"), 7)) // aliasing: same content, second id

	ids, ok := v.TokenIDs([]byte("0"))
	require.True(t, ok)
	assert.Equal(t, []uint32{3, 7}, ids)

	assert.Equal(t, 1+3, v.Len())
}

func TestInsertRejectsEOS(t *testing.T) {
	v := New(4)
	err := v.Insert([]byte("eos-like"), 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEOSTokenDisallowed))

	_, ok := v.TokenIDs([]byte("eos-like"))
	assert.False(t, ok)
}

func TestRemove(t *testing.T) {
	v := New(4)
	require.NoError(t, v.Insert([]byte("x"), 1))
	v.Remove([]byte("x"))
	_, ok := v.TokenIDs([]byte("x"))
	assert.False(t, ok)
}

func TestAllIsDeterministic(t *testing.T) {
	v := New(4)
	require.NoError(t, v.Insert([]byte("b"), 1))
	require.NoError(t, v.Insert([]byte("a"), 2))

	entries := v.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "a", string(entries[0].Token))
	assert.Equal(t, "b", string(entries[1].Token))
}
