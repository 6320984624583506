// Package primitives defines the core numeric and byte types shared by
// the vocabulary, schema, index and guide packages.
package primitives

// Token is the raw byte content of a vocabulary entry. It is not a
// string: multi-byte UTF-8 sequences and bytes with no valid decoding
// (e.g. 0xFF) are both legal token content.
type Token = []byte

// TokenId identifies one or more token ids that share the same byte
// content (a tokenizer may alias several ids to one content).
type TokenId = uint32

// StateId identifies a state of the underlying byte-level automaton.
// Numbering is assigned by the DFA and is opaque outside of it.
type StateId = uint32
