package schema

import "fmt"

// parseEnum alternates between the escaped JSON rendering of each
// enum value.
func (p *parser) parseEnum(obj map[string]interface{}) (string, error) {
	values, ok := asArray(obj["enum"])
	if !ok {
		return "", ErrEnumMustBeArray
	}

	choices := make([]string, 0, len(values))
	for _, v := range values {
		if !isPrimitive(v) {
			return "", fmt.Errorf("%w: %v", ErrUnsupportedEnumData, v)
		}
		lit, err := jsonLiteral(v)
		if err != nil {
			return "", err
		}
		choices = append(choices, escapeLiteral(lit))
	}
	return fmt.Sprintf("(%s)", joinAlternation(choices)), nil
}

// parseConst emits the escaped JSON rendering of a single literal value.
func (p *parser) parseConst(obj map[string]interface{}) (string, error) {
	value, ok := obj["const"]
	if !ok {
		return "", ErrConstKeyNotFound
	}
	if !isPrimitive(value) {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedConstData, value)
	}
	lit, err := jsonLiteral(value)
	if err != nil {
		return "", err
	}
	return escapeLiteral(lit), nil
}
