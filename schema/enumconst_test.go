package schema

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumOfStrings(t *testing.T) {
	got, err := RegexFromValue(map[string]interface{}{
		"enum": []interface{}{"Marc", "Jean"},
	}, nil, nil)
	require.NoError(t, err)

	re := regexp.MustCompile("^" + got + "$")
	assert.True(t, re.MatchString(`"Marc"`))
	assert.True(t, re.MatchString(`"Jean"`))
	assert.False(t, re.MatchString(`"Luc"`))
}

func TestEnumMixedPrimitives(t *testing.T) {
	got, err := RegexFromValue(map[string]interface{}{
		"enum": []interface{}{float64(6), "potato", true, nil},
	}, nil, nil)
	require.NoError(t, err)

	re := regexp.MustCompile("^" + got + "$")
	assert.True(t, re.MatchString("6"))
	assert.True(t, re.MatchString(`"potato"`))
	assert.True(t, re.MatchString("true"))
	assert.True(t, re.MatchString("null"))
}

func TestConstSingleValue(t *testing.T) {
	got, err := RegexFromValue(map[string]interface{}{"const": "Marc"}, nil, nil)
	require.NoError(t, err)

	re := regexp.MustCompile("^" + got + "$")
	assert.True(t, re.MatchString(`"Marc"`))
	assert.False(t, re.MatchString(`"Jean"`))
}

func TestEnumMustBeArray(t *testing.T) {
	_, err := RegexFromValue(map[string]interface{}{"enum": "not-an-array"}, nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEnumMustBeArray))
}
