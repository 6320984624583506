// Package schema translates a JSON Schema value into a regular
// expression string matching exactly the JSON documents that conform
// to the schema, for the supported subset of the 2020-12 draft.
package schema

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// DefaultMaxRecursionDepth bounds self-referential $ref resolution.
// Raising it is exponential in regex size; level 5 on a simple
// self-referential schema already produces a regex well over half a
// megabyte.
const DefaultMaxRecursionDepth = 3

// Compiler configures and runs the schema-to-regex translation. Its
// zero value is not ready to use; construct with NewCompiler.
type Compiler struct {
	whitespacePattern string
	maxRecursionDepth int
}

// NewCompiler returns a Compiler with the default whitespace pattern
// and recursion depth.
func NewCompiler() *Compiler {
	return &Compiler{
		whitespacePattern: Whitespace,
		maxRecursionDepth: DefaultMaxRecursionDepth,
	}
}

// WithWhitespacePattern overrides the fragment substituted wherever
// inter-token whitespace is allowed. The pattern is treated as opaque
// and is not validated.
func (c *Compiler) WithWhitespacePattern(pattern string) *Compiler {
	c.whitespacePattern = pattern
	return c
}

// WithMaxRecursionDepth overrides the $ref recursion bound.
func (c *Compiler) WithMaxRecursionDepth(depth int) *Compiler {
	c.maxRecursionDepth = depth
	return c
}

// Compile translates root into its matching regex.
func (c *Compiler) Compile(root interface{}) (string, error) {
	p := &parser{
		root:              root,
		whitespacePattern: c.whitespacePattern,
		maxRecursionDepth: c.maxRecursionDepth,
	}
	return p.toRegex(root)
}

// RegexFromValue translates an already-decoded schema value into its
// matching regex. whitespace and maxDepth may be nil to take the
// package defaults.
func RegexFromValue(value interface{}, whitespace *string, maxDepth *int) (string, error) {
	c := NewCompiler()
	if whitespace != nil {
		c.WithWhitespacePattern(*whitespace)
	}
	if maxDepth != nil {
		c.WithMaxRecursionDepth(*maxDepth)
	}
	return c.Compile(value)
}

// RegexFromString parses jsonText as JSON and translates it into its
// matching regex.
func RegexFromString(jsonText string, whitespace *string, maxDepth *int) (string, error) {
	var value interface{}
	if err := json.Unmarshal([]byte(jsonText), &value); err != nil {
		return "", fmt.Errorf("schema: invalid json: %w", err)
	}
	return RegexFromValue(value, whitespace, maxDepth)
}

// parser carries the translation state described by the data model:
// the root schema value (for local $ref resolution), the whitespace
// fragment, and the current/maximum recursion depth.
type parser struct {
	root              interface{}
	whitespacePattern string
	recursionDepth    int
	maxRecursionDepth int
}

// toRegex dispatches on the schema node shape, in priority order:
// empty object, properties, allOf/anyOf/oneOf, prefixItems,
// enum/const, $ref, type.
func (p *parser) toRegex(value interface{}) (string, error) {
	obj, isObject := asObject(value)
	if isObject {
		if len(obj) == 0 {
			return p.parseEmptyObject()
		}
		if _, ok := obj["properties"]; ok {
			return p.parseProperties(obj)
		}
		if _, ok := obj["allOf"]; ok {
			return p.parseAllOf(obj)
		}
		if _, ok := obj["anyOf"]; ok {
			return p.parseAnyOf(obj)
		}
		if _, ok := obj["oneOf"]; ok {
			return p.parseOneOf(obj)
		}
		if _, ok := obj["prefixItems"]; ok {
			return p.parsePrefixItems(obj)
		}
		if _, ok := obj["enum"]; ok {
			return p.parseEnum(obj)
		}
		if _, ok := obj["const"]; ok {
			return p.parseConst(obj)
		}
		if _, ok := obj["$ref"]; ok {
			return p.parseRef(obj)
		}
		if _, ok := obj["type"]; ok {
			return p.parseType(obj)
		}
	}
	return "", fmt.Errorf("%w: %v", ErrUnsupportedSchema, value)
}

// parseEmptyObject handles {} (unconstrained: any JSON value is legal).
func (p *parser) parseEmptyObject() (string, error) {
	leaves := []interface{}{
		map[string]interface{}{"type": "boolean"},
		map[string]interface{}{"type": "null"},
		map[string]interface{}{"type": "number"},
		map[string]interface{}{"type": "integer"},
		map[string]interface{}{"type": "string"},
		map[string]interface{}{"type": "array"},
		map[string]interface{}{"type": "object"},
	}
	parts := make([]string, 0, len(leaves))
	for _, leaf := range leaves {
		sub, err := p.toRegex(leaf)
		if err != nil {
			return "", err
		}
		parts = append(parts, "("+sub+")")
	}
	return joinAlternation(parts), nil
}

func (p *parser) resolveLocalRef(pathParts []string) (interface{}, error) {
	var current interface{} = p.root
	for _, part := range pathParts {
		obj, ok := asObject(current)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRefPath, part)
		}
		next, ok := obj[part]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrInvalidRefPath, part)
		}
		current = next
	}
	return current, nil
}

// quantifierBound is a resolved {min,max} repetition bound, either
// side of which may be absent.
type quantifierBound struct {
	min    *uint64
	max    *uint64
	hasMin bool
	hasMax bool
}

// validateQuantifiers applies startOffset (the count already emitted
// unconditionally, e.g. the leading [1-9] digit) to a raw min/max pair
// and fails if the result is inverted.
func validateQuantifiers(min, max *uint64, startOffset uint64) (quantifierBound, error) {
	var out quantifierBound
	if min != nil {
		v := saturatingSub(*min, startOffset)
		out.min = &v
		out.hasMin = true
	}
	if max != nil {
		v := saturatingSub(*max, startOffset)
		out.max = &v
		out.hasMax = true
	}
	if out.hasMin && out.hasMax && *out.max < *out.min {
		return quantifierBound{}, ErrMaxBoundExceeded
	}
	return out, nil
}

func saturatingSub(a, b uint64) uint64 {
	if b >= a {
		return 0
	}
	return a - b
}

func joinAlternation(parts []string) string {
	out := ""
	for i, part := range parts {
		if i > 0 {
			out += "|"
		}
		out += part
	}
	return out
}
