package schema

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnyOfAlternation(t *testing.T) {
	got, err := RegexFromValue(map[string]interface{}{
		"anyOf": []interface{}{
			map[string]interface{}{"type": "boolean"},
			map[string]interface{}{"type": "null"},
		},
	}, nil, nil)
	require.NoError(t, err)

	re := regexp.MustCompile("^" + got + "$")
	assert.True(t, re.MatchString("true"))
	assert.True(t, re.MatchString("null"))
	assert.False(t, re.MatchString("0"))
}

func TestOneOfWrapsBranchesNonCapturing(t *testing.T) {
	got, err := RegexFromValue(map[string]interface{}{
		"oneOf": []interface{}{
			map[string]interface{}{"type": "boolean"},
			map[string]interface{}{"type": "null"},
		},
	}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "((?:"+Boolean+")|(?:"+Null+"))", got)
}

func TestAllOfConcatenates(t *testing.T) {
	got, err := RegexFromValue(map[string]interface{}{
		"allOf": []interface{}{
			map[string]interface{}{"const": "a"},
			map[string]interface{}{"type": "string"},
		},
	}, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, `("a"`+String+`)`, got)
}
