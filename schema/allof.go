package schema

import "fmt"

// parseAllOf concatenates every sub-schema's regex inside a single
// group: a document must match all of them in sequence.
func (p *parser) parseAllOf(obj map[string]interface{}) (string, error) {
	allOf, ok := asArray(obj["allOf"])
	if !ok {
		return "", ErrAllOfMustBeArray
	}

	combined := ""
	for _, sub := range allOf {
		r, err := p.toRegex(sub)
		if err != nil {
			return "", err
		}
		combined += r
	}
	return fmt.Sprintf("(%s)", combined), nil
}
