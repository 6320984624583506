package schema

import (
	"errors"
	"fmt"
)

// === Schema shape errors ===

var (
	// ErrUnsupportedSchema is returned when a schema value's shape
	// matches none of the recognized dispatch cases.
	ErrUnsupportedSchema = errors.New("schema: unsupported json schema structure")

	ErrPropertiesNotFound  = errors.New("schema: 'properties' not found or not an object")
	ErrAllOfMustBeArray    = errors.New("schema: 'allOf' must be an array")
	ErrAnyOfMustBeArray    = errors.New("schema: 'anyOf' must be an array")
	ErrOneOfMustBeArray    = errors.New("schema: 'oneOf' must be an array")
	ErrPrefixItemsMustBeArray = errors.New("schema: 'prefixItems' must be an array")
	ErrEnumMustBeArray     = errors.New("schema: 'enum' must be an array")
	ErrConstKeyNotFound    = errors.New("schema: 'const' key not found in object")
	ErrRefMustBeString     = errors.New("schema: '$ref' must be a string")
	ErrInvalidRefFormat    = errors.New("schema: invalid reference format")
	ErrInvalidRefPath      = errors.New("schema: invalid reference path")
	ErrTypeMustBeString    = errors.New("schema: 'type' must be a string")
	ErrUnsupportedType     = errors.New("schema: unsupported type")
	ErrUnsupportedEnumData = errors.New("schema: unsupported data type in enum")
	ErrUnsupportedConstData = errors.New("schema: unsupported data type in const")
	ErrUnsupportedFormat   = errors.New("schema: format is not supported")
)

// === Bound errors ===

// ErrMaxBoundExceeded is returned when a min/max bound pair is
// inconsistent (min > max) for string length or integer/number digit
// counts. Array and object item counts (minItems/maxItems,
// minProperties/maxProperties) are not checked.
var ErrMaxBoundExceeded = errors.New("schema: min bound must not exceed max bound")

// === External reference errors ===

// ErrExternalReference is returned when a $ref's base does not match
// the root schema's $id; external reference resolution is out of
// scope.
var ErrExternalReference = errors.New("schema: external references are not supported")

// === Recursion errors ===

// recursionLimitError is a recoverable error: property emission
// treats it as "skip this property" rather than propagating it. All
// other call sites propagate it like any other error.
type recursionLimitError struct {
	maxDepth int
}

func (e *recursionLimitError) Error() string {
	return fmt.Sprintf("schema: ref recursion limit reached: %d", e.maxDepth)
}

func newRecursionLimitError(maxDepth int) error {
	return &recursionLimitError{maxDepth: maxDepth}
}

// IsRecursionLimit reports whether err is (or wraps) a recursion-limit
// error, the one recoverable error case: the properties emitter must
// swallow it (dropping that property) rather than failing the whole
// compile.
func IsRecursionLimit(err error) bool {
	var rle *recursionLimitError
	return errors.As(err, &rle)
}
