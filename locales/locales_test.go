package locales

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kaptinlin/outlines-go/schema"
)

func TestBundleLoadsBothLocales(t *testing.T) {
	bundle, err := Bundle()
	require.NoError(t, err)

	en := bundle.NewLocalizer("en")
	es := bundle.NewLocalizer("es")

	assert.NotEqual(t, Message(en, schema.ErrUnsupportedType), Message(es, schema.ErrUnsupportedType))
}

func TestMessageFallsBackForUnknownError(t *testing.T) {
	bundle, err := Bundle()
	require.NoError(t, err)
	en := bundle.NewLocalizer("en")

	unrecognized := assert.AnError
	assert.Equal(t, unrecognized.Error(), Message(en, unrecognized))
}
