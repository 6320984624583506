package schema

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequiredObjectProperty(t *testing.T) {
	value := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"count": map[string]interface{}{"type": "integer"},
		},
		"required": []interface{}{"count"},
	}

	got, err := RegexFromValue(value, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, `\{[ ]?"count"[ ]?:[ ]?(-)?(0|[1-9][0-9]*)[ ]?\}`, got)

	re := regexp.MustCompile("^" + got + "$")
	assert.True(t, re.MatchString(`{ "count": 100 }`))
	assert.False(t, re.MatchString(`{ "count": "a" }`))
}

func TestOptionalOnlyObject(t *testing.T) {
	value := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"foo": map[string]interface{}{"type": "integer"},
		},
	}

	got, err := RegexFromValue(value, nil, nil)
	require.NoError(t, err)

	re := regexp.MustCompile("^" + got + "$")
	assert.True(t, re.MatchString(`{}`))
	assert.True(t, re.MatchString(`{ "foo": 0 }`))
	// a property the schema never declared must not be accepted
	assert.False(t, re.MatchString(`{ "bar": 0 }`))
}

func TestRequiredWithInterleavedOptionals(t *testing.T) {
	value := map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"a": map[string]interface{}{"type": "boolean"},
			"b": map[string]interface{}{"type": "boolean"},
			"c": map[string]interface{}{"type": "boolean"},
		},
		"required": []interface{}{"b"},
	}

	got, err := RegexFromValue(value, nil, nil)
	require.NoError(t, err)

	re := regexp.MustCompile("^" + got + "$")
	assert.True(t, re.MatchString(`{"b":true}`))
	assert.True(t, re.MatchString(`{"a":true,"b":true}`))
	assert.True(t, re.MatchString(`{"b":true,"c":true}`))
	assert.True(t, re.MatchString(`{"a":true,"b":true,"c":true}`))
	assert.False(t, re.MatchString(`{"a":true,"c":true}`))
	assert.False(t, re.MatchString(`{}`))
}
