package vocabulary

import (
	"fmt"
	"strconv"
	"strings"
)

// DecoderDescription is the subset of a tokenizer's decoder
// configuration a Processor needs to recover raw byte tokens. It
// mirrors the shape of HuggingFace's tokenizer.json "decoder" object:
// a type tag plus whatever fields that type interprets.
type DecoderDescription struct {
	Type     string               // e.g. "ByteLevel", "ByteFallback", "Sequence"
	Prefix   string               // normalizer prepend marker, e.g. "▁" for SentencePiece
	Decoders []DecoderDescription // for Type == "Sequence"
}

// Processor converts a single token's surface content, as produced by
// a tokenizer's normalizer/decoder pipeline, into the raw byte
// sequence a Vocabulary stores. Hub loading itself is an external
// collaborator outside this module's scope; Processor is the pure
// conversion step in between.
type Processor interface {
	// Process returns the raw bytes corresponding to surface token
	// content, or an error if this processor cannot handle it.
	Process(content string) ([]byte, error)
}

// NewProcessor selects a Processor for the given decoder description.
// An empty type is treated as byte-level. A "Sequence" decoder is
// always accepted: it yields a ByteFallbackProcessor when any of its
// decoders is byte-fallback, and a ByteLevelProcessor otherwise. Any
// other decoder type fails with ErrUnsupportedTokenizer.
func NewProcessor(d DecoderDescription) (Processor, error) {
	switch d.Type {
	case "ByteLevel", "":
		return ByteLevelProcessor{Prefix: d.Prefix}, nil
	case "ByteFallback":
		return ByteFallbackProcessor{Prefix: d.Prefix}, nil
	case "Sequence":
		for _, sub := range d.Decoders {
			if sub.Type == "ByteFallback" {
				return ByteFallbackProcessor{Prefix: d.Prefix}, nil
			}
		}
		return ByteLevelProcessor{Prefix: d.Prefix}, nil
	default:
		return nil, fmt.Errorf("%w: decoder type %q", ErrUnsupportedTokenizer, d.Type)
	}
}

// ByteLevelProcessor replaces every occurrence of a configurable
// prepend marker (the SentencePiece-style "▁" or similar) with the
// space it stands for, so that a token like "▁foo" resolves to its
// raw byte form " foo".
type ByteLevelProcessor struct {
	Prefix string
}

func (p ByteLevelProcessor) Process(content string) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("%w: empty token content", ErrByteProcessorFailed)
	}
	if p.Prefix != "" {
		content = strings.ReplaceAll(content, p.Prefix, " ")
	}
	return []byte(content), nil
}

// ByteFallbackProcessor decodes byte-fallback tokens of the form
// "<0xFF>" back to the single raw byte 0xFF, passing through any other
// content as its literal UTF-8 bytes after replacing the prepend
// marker with a space like ByteLevelProcessor.
type ByteFallbackProcessor struct {
	Prefix string
}

func (p ByteFallbackProcessor) Process(content string) ([]byte, error) {
	if b, ok := decodeByteFallback(content); ok {
		return []byte{b}, nil
	}
	if content == "" {
		return nil, fmt.Errorf("%w: empty token content", ErrByteFallbackProcessorFailed)
	}
	if p.Prefix != "" {
		content = strings.ReplaceAll(content, p.Prefix, " ")
	}
	return []byte(content), nil
}

// decodeByteFallback recognizes the "<0xNN>" form used by
// byte-fallback tokenizers for bytes that do not decode to valid
// UTF-8 on their own.
func decodeByteFallback(content string) (byte, bool) {
	if len(content) != 6 || !strings.HasPrefix(content, "<0x") || !strings.HasSuffix(content, ">") {
		return 0, false
	}
	v, err := strconv.ParseUint(content[3:5], 16, 8)
	if err != nil {
		return 0, false
	}
	return byte(v), true
}
