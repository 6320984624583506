package vocabulary

import "errors"

// === Construction errors ===

// ErrEOSTokenDisallowed is returned by Insert when the id being
// inserted equals the vocabulary's EOS id. EOS must never appear in
// the content map, only as the distinguished end-of-sequence id.
var ErrEOSTokenDisallowed = errors.New("vocabulary: eos token id is not allowed as a regular token")

// === Tokenizer-processor errors ===
//
// These surface from Processor implementations (processor.go), which
// convert an external tokenizer's decoder description into raw byte
// tokens before they are ever inserted into a Vocabulary.

var (
	// ErrUnsupportedTokenizer is returned when a tokenizer's decoder is
	// neither byte-level nor byte-fallback.
	ErrUnsupportedTokenizer = errors.New("vocabulary: tokenizer decoder not supported by any processor")

	// ErrDecoderUnpacking reports a decoder description that cannot be
	// unpacked into the fields a processor expects. NewProcessor takes
	// an already-unpacked DecoderDescription and never returns it.
	ErrDecoderUnpacking = errors.New("vocabulary: decoder unpacking failed for token processor")

	// ErrByteProcessorFailed is returned when the byte-level processor
	// cannot convert a token.
	ErrByteProcessorFailed = errors.New("vocabulary: token processing failed for byte level processor")

	// ErrByteFallbackProcessorFailed is returned when the byte-fallback
	// processor cannot convert a token.
	ErrByteFallbackProcessorFailed = errors.New("vocabulary: token processing failed for byte fallback level processor")
)
