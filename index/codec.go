package index

import (
	"bytes"
	"encoding/gob"
	"io"

	"github.com/kaptinlin/outlines-go/primitives"
)

// wireIndex is the gob-serializable shape of an Index. Field order
// matches the struct's logical order (initial state, final states,
// transitions, eos token id, vocab size) so the encoding is stable
// across versions that only add fields.
type wireIndex struct {
	Initial     primitives.StateId
	Finals      []primitives.StateId
	Transitions map[primitives.StateId]map[primitives.TokenId]primitives.StateId
	EOSTokenID  primitives.TokenId
	VocabSize   int
}

// Encode writes a gob-encoded form of idx to w.
//
// gob is used rather than a schema-based format because no
// third-party binary-serialization library (protobuf, flatbuffers,
// msgpack, cbor) appears anywhere in the retrieved example corpus;
// gob is the standard library's own answer to exactly this problem
// (persisting a Go struct graph) and needs no externally-maintained
// schema file.
func Encode(idx *Index, w io.Writer) error {
	wire := wireIndex{
		Initial:     idx.initial,
		Finals:      idx.FinalStates(),
		Transitions: idx.transitions,
		EOSTokenID:  idx.eosTokenID,
		VocabSize:   idx.vocabSize,
	}
	return gob.NewEncoder(w).Encode(&wire)
}

// Decode reads an Index previously written by Encode.
func Decode(r io.Reader) (*Index, error) {
	var wire wireIndex
	if err := gob.NewDecoder(r).Decode(&wire); err != nil {
		return nil, err
	}

	finals := make(map[primitives.StateId]struct{}, len(wire.Finals))
	for _, s := range wire.Finals {
		finals[s] = struct{}{}
	}

	return &Index{
		initial:     wire.Initial,
		finals:      finals,
		transitions: wire.Transitions,
		eosTokenID:  wire.EOSTokenID,
		vocabSize:   wire.VocabSize,
	}, nil
}

// EncodeToBytes is a convenience wrapper around Encode.
func EncodeToBytes(idx *Index) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(idx, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeFromBytes is a convenience wrapper around Decode.
func DecodeFromBytes(data []byte) (*Index, error) {
	return Decode(bytes.NewReader(data))
}
