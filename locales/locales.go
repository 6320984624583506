// Package locales embeds the i18n catalogs used to localize this
// module's user-facing error messages (chiefly the CLI's stderr
// output), and maps the library's own sentinel errors onto catalog
// codes.
package locales

import (
	"embed"
	"errors"

	"github.com/kaptinlin/go-i18n"

	"github.com/kaptinlin/outlines-go/guide"
	"github.com/kaptinlin/outlines-go/index"
	"github.com/kaptinlin/outlines-go/schema"
	"github.com/kaptinlin/outlines-go/vocabulary"
)

//go:embed *.json
var localesFS embed.FS

// Bundle returns an initialized i18n bundle with the embedded locale
// catalogs loaded.
func Bundle() (*i18n.I18n, error) {
	bundle := i18n.NewBundle(
		i18n.WithDefaultLocale("en"),
		i18n.WithLocales("en", "es"),
	)
	if err := bundle.LoadFS(localesFS, "*.json"); err != nil {
		return nil, err
	}
	return bundle, nil
}

// codeFor maps a recognized sentinel error to its catalog code. The
// zero value ("", false) means err isn't one this package knows how to
// localize; callers should fall back to err.Error().
func codeFor(err error) (string, bool) {
	switch {
	case errors.Is(err, schema.ErrUnsupportedSchema):
		return "schema.unsupported_schema", true
	case errors.Is(err, schema.ErrUnsupportedType):
		return "schema.unsupported_type", true
	case errors.Is(err, schema.ErrUnsupportedFormat):
		return "schema.unsupported_format", true
	case errors.Is(err, schema.ErrMaxBoundExceeded):
		return "schema.max_bound_exceeded", true
	case errors.Is(err, schema.ErrExternalReference):
		return "schema.external_reference", true
	case schema.IsRecursionLimit(err):
		return "schema.recursion_limit", true
	case errors.Is(err, vocabulary.ErrEOSTokenDisallowed):
		return "vocabulary.eos_token_disallowed", true
	case errors.Is(err, index.ErrNoStartState):
		return "index.no_start_state", true
	case errors.Is(err, index.ErrInsufficientVocabulary):
		return "index.insufficient_vocabulary", true
	case errors.Is(err, guide.ErrNoNextState):
		return "guide.no_next_state", true
	case errors.Is(err, guide.ErrRollbackOverreach):
		return "guide.rollback_overreach", true
	case errors.Is(err, guide.ErrInvalidMaskBuffer):
		return "guide.invalid_mask_buffer", true
	default:
		return "", false
	}
}

// Message returns a localized message for err using localizer, falling
// back to err.Error() when err isn't one of this module's recognized
// sentinel errors.
func Message(localizer *i18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	code, ok := codeFor(err)
	if !ok || localizer == nil {
		return err.Error()
	}
	return localizer.Get(code, i18n.Vars{})
}
