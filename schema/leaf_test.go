package schema

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerLeaf(t *testing.T) {
	got, err := RegexFromValue(map[string]interface{}{"type": "integer"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Integer, got)

	re := regexp.MustCompile("^" + got + "$")
	assert.True(t, re.MatchString("0"))
	assert.True(t, re.MatchString("-42"))
	assert.False(t, re.MatchString("01"))
}

func TestBooleanAndNullLeaves(t *testing.T) {
	got, err := RegexFromValue(map[string]interface{}{"type": "boolean"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Boolean, got)

	got, err = RegexFromValue(map[string]interface{}{"type": "null"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Null, got)
}

func TestUnsupportedType(t *testing.T) {
	_, err := RegexFromValue(map[string]interface{}{"type": "foo"}, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedType))
}

func TestUnsupportedSchemaShape(t *testing.T) {
	_, err := RegexFromValue(map[string]interface{}{"not_a_thing": true}, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedSchema))
}

func TestEmptyObjectIsUnconstrained(t *testing.T) {
	got, err := RegexFromValue(map[string]interface{}{}, nil, nil)
	require.NoError(t, err)

	re := regexp.MustCompile("^(" + got + ")$")
	assert.True(t, re.MatchString("true"))
	assert.True(t, re.MatchString("null"))
	assert.True(t, re.MatchString("42"))
	assert.True(t, re.MatchString(`"hi"`))
}

func TestStringFormatUUID(t *testing.T) {
	got, err := RegexFromValue(map[string]interface{}{"type": "string", "format": "uuid"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, UUID, got)

	re := regexp.MustCompile("^" + got + "$")
	assert.True(t, re.MatchString(`"123e4567-e89b-12d3-a456-426614174000"`))
}

func TestStringPatternStripsAnchors(t *testing.T) {
	got, err := RegexFromValue(map[string]interface{}{"type": "string", "pattern": "^[a-z]+$"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, `("[a-z]+")`, got)
}

func TestStringLengthBounds(t *testing.T) {
	got, err := RegexFromValue(map[string]interface{}{"type": "string", "minLength": float64(2), "maxLength": float64(4)}, nil, nil)
	require.NoError(t, err)

	re := regexp.MustCompile("^" + got + "$")
	assert.True(t, re.MatchString(`"ab"`))
	assert.True(t, re.MatchString(`"abcd"`))
	assert.False(t, re.MatchString(`"a"`))
	assert.False(t, re.MatchString(`"abcde"`))
}

func TestStringLengthMinExceedsMax(t *testing.T) {
	_, err := RegexFromValue(map[string]interface{}{"type": "string", "minLength": float64(5), "maxLength": float64(2)}, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMaxBoundExceeded))
}
