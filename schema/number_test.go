package schema

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegerDigitBounds(t *testing.T) {
	got, err := RegexFromValue(map[string]interface{}{
		"type":      "integer",
		"minDigits": float64(2),
		"maxDigits": float64(3),
	}, nil, nil)
	require.NoError(t, err)

	re := regexp.MustCompile("^" + got + "$")
	assert.True(t, re.MatchString("12"))
	assert.True(t, re.MatchString("123"))
	assert.False(t, re.MatchString("1"))
	assert.False(t, re.MatchString("1234"))
}

func TestIntegerDigitBoundsInverted(t *testing.T) {
	_, err := RegexFromValue(map[string]interface{}{
		"type":      "integer",
		"minDigits": float64(5),
		"maxDigits": float64(2),
	}, nil, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMaxBoundExceeded)
}

func TestNumberPlainLeaf(t *testing.T) {
	got, err := RegexFromValue(map[string]interface{}{"type": "number"}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, Number, got)

	re := regexp.MustCompile("^" + got + "$")
	assert.True(t, re.MatchString("3.14"))
	assert.True(t, re.MatchString("-0"))
	assert.True(t, re.MatchString("1e10"))
}

func TestNumberFractionBounds(t *testing.T) {
	got, err := RegexFromValue(map[string]interface{}{
		"type":              "number",
		"minDigitsFraction": float64(1),
		"maxDigitsFraction": float64(2),
	}, nil, nil)
	require.NoError(t, err)

	re := regexp.MustCompile("^" + got + "$")
	assert.True(t, re.MatchString("1.2"))
	assert.True(t, re.MatchString("1.23"))
	// the fraction group as a whole stays optional regardless of
	// minDigitsFraction: the bound only constrains digit count when a
	// fraction is present.
	assert.True(t, re.MatchString("1"))
	assert.False(t, re.MatchString("1.234"))
}
