// Package vocabulary implements the immutable byte-sequence-to-token-id
// mapping consumed by the index builder.
package vocabulary

import (
	"fmt"
	"sort"

	"github.com/kaptinlin/outlines-go/primitives"
)

// Vocabulary maps token byte content to one or more token ids, plus a
// distinguished end-of-sequence id that never appears in the content
// map. It is built once, then consumed read-only by the index builder.
type Vocabulary struct {
	eosTokenID primitives.TokenId
	tokens     map[string][]primitives.TokenId
}

// New returns an empty Vocabulary with the given EOS token id.
func New(eosTokenID primitives.TokenId) *Vocabulary {
	return &Vocabulary{
		eosTokenID: eosTokenID,
		tokens:     make(map[string][]primitives.TokenId),
	}
}

// Insert appends id to the list of ids for tokenBytes, creating the
// entry if absent. It fails if id equals the vocabulary's EOS id.
func (v *Vocabulary) Insert(tokenBytes []byte, id primitives.TokenId) error {
	if id == v.eosTokenID {
		return fmt.Errorf("%w: token id %d", ErrEOSTokenDisallowed, id)
	}
	key := string(tokenBytes)
	v.tokens[key] = append(v.tokens[key], id)
	return nil
}

// Remove drops tokenBytes and its entire id list from the vocabulary.
func (v *Vocabulary) Remove(tokenBytes []byte) {
	delete(v.tokens, string(tokenBytes))
}

// TokenIDs returns the id list for tokenBytes, or false if the content
// is not present.
func (v *Vocabulary) TokenIDs(tokenBytes []byte) ([]primitives.TokenId, bool) {
	ids, ok := v.tokens[string(tokenBytes)]
	return ids, ok
}

// EOSTokenID returns the vocabulary's distinguished EOS id.
func (v *Vocabulary) EOSTokenID() primitives.TokenId {
	return v.eosTokenID
}

// Len returns the total count of token ids across all content entries,
// plus one for EOS.
func (v *Vocabulary) Len() int {
	n := 1
	for _, ids := range v.tokens {
		n += len(ids)
	}
	return n
}

// Entry is one (token content, id list) pair as yielded by All.
type Entry struct {
	Token primitives.Token
	IDs   []primitives.TokenId
}

// All returns every (token_bytes, id_list) pair in the vocabulary,
// ordered by token content for deterministic iteration (the
// underlying map has no stable order).
func (v *Vocabulary) All() []Entry {
	keys := make([]string, 0, len(v.tokens))
	for k := range v.tokens {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	entries := make([]Entry, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, Entry{Token: []byte(k), IDs: v.tokens[k]})
	}
	return entries
}
