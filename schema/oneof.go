package schema

import "fmt"

// parseOneOf alternates between every sub-schema's regex, each
// wrapped in a non-capturing group to prevent accidental lookaround
// formation when the branches are concatenated elsewhere.
func (p *parser) parseOneOf(obj map[string]interface{}) (string, error) {
	oneOf, ok := asArray(obj["oneOf"])
	if !ok {
		return "", ErrOneOfMustBeArray
	}

	parts := make([]string, 0, len(oneOf))
	for _, sub := range oneOf {
		r, err := p.toRegex(sub)
		if err != nil {
			return "", err
		}
		parts = append(parts, fmt.Sprintf("(?:%s)", r))
	}
	return fmt.Sprintf("(%s)", joinAlternation(parts)), nil
}
