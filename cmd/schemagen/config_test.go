package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, `[ ]?`, cfg.Whitespace)
	assert.Equal(t, 3, cfg.MaxDepth)
	assert.Equal(t, "en", cfg.Locale)
	assert.False(t, cfg.Verbose)
}

func TestDecodeSchemaAcceptsJSON(t *testing.T) {
	v, err := decodeSchema([]byte(`{"type":"integer"}`))
	require.NoError(t, err)
	m, ok := v.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "integer", m["type"])
}

func TestDecodeSchemaAcceptsYAML(t *testing.T) {
	v, err := decodeSchema([]byte("type: integer\n"))
	require.NoError(t, err)
	m, ok := v.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "integer", m["type"])
}
