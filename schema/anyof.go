package schema

import "fmt"

// parseAnyOf alternates between every sub-schema's regex: a document
// matches if it matches at least one of them.
func (p *parser) parseAnyOf(obj map[string]interface{}) (string, error) {
	anyOf, ok := asArray(obj["anyOf"])
	if !ok {
		return "", ErrAnyOfMustBeArray
	}

	parts := make([]string, 0, len(anyOf))
	for _, sub := range anyOf {
		r, err := p.toRegex(sub)
		if err != nil {
			return "", err
		}
		parts = append(parts, r)
	}
	return fmt.Sprintf("(%s)", joinAlternation(parts)), nil
}
