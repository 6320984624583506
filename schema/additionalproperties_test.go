package schema

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdditionalPropertiesTyped(t *testing.T) {
	value := map[string]interface{}{
		"type":                 "object",
		"additionalProperties": map[string]interface{}{"type": "integer"},
		"minProperties":        float64(1),
	}

	got, err := RegexFromValue(value, nil, nil)
	require.NoError(t, err)

	re := regexp.MustCompile("^" + got + "$")
	assert.True(t, re.MatchString(`{"a":1}`))
	assert.True(t, re.MatchString(`{"a":1,"b":2}`))
	assert.False(t, re.MatchString(`{}`))
	assert.False(t, re.MatchString(`{"a":"x"}`))
}

func TestAdditionalPropertiesUnconstrainedAllowsEmpty(t *testing.T) {
	value := map[string]interface{}{
		"type": "object",
	}

	got, err := RegexFromValue(value, nil, nil)
	require.NoError(t, err)

	re := regexp.MustCompile("^" + got + "$")
	assert.True(t, re.MatchString(`{}`))
	assert.True(t, re.MatchString(`{"a":true}`))
}
