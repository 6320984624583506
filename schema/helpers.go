package schema

import (
	"regexp"

	json "github.com/goccy/go-json"
)

// Decoded JSON values use the same representation encoding/json (and
// goccy/go-json, which is wire-compatible) produces when unmarshalling
// into interface{}: map[string]interface{}, []interface{}, string,
// float64, bool, and nil.

func asObject(v interface{}) (map[string]interface{}, bool) {
	m, ok := v.(map[string]interface{})
	return m, ok
}

func asArray(v interface{}) ([]interface{}, bool) {
	a, ok := v.([]interface{})
	return a, ok
}

func asString(v interface{}) (string, bool) {
	s, ok := v.(string)
	return s, ok
}

func asFloat64(v interface{}) (float64, bool) {
	f, ok := v.(float64)
	return f, ok
}

func asUint64(v interface{}) (uint64, bool) {
	f, ok := asFloat64(v)
	if !ok || f < 0 {
		return 0, false
	}
	return uint64(f), true
}

// escapeLiteral returns the regex-safe quoted form of s, the
// equivalent of regex::escape in the reference implementation.
func escapeLiteral(s string) string {
	return regexp.QuoteMeta(s)
}

// jsonLiteral renders value as its canonical JSON text, for use by
// enum/const emission.
func jsonLiteral(value interface{}) (string, error) {
	b, err := json.Marshal(value)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// isPrimitive reports whether value is a decoded JSON value the
// enum/const emitters can render: null, bool, number and string, and
// also arrays and objects, which are rendered through their compact
// JSON text. It returns false only for Go types that JSON decoding
// does not produce.
func isPrimitive(value interface{}) bool {
	switch value.(type) {
	case nil, bool, float64, string, map[string]interface{}, []interface{}:
		return true
	default:
		return false
	}
}
