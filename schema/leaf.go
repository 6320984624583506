package schema

import "fmt"

// parseType dispatches on the "type" keyword to the leaf parser for
// that JSON type.
func (p *parser) parseType(obj map[string]interface{}) (string, error) {
	instanceType, ok := asString(obj["type"])
	if !ok {
		return "", ErrTypeMustBeString
	}
	switch instanceType {
	case "string":
		return p.parseStringType(obj)
	case "number":
		return p.parseNumberType(obj)
	case "integer":
		return p.parseIntegerType(obj)
	case "array":
		return p.parseArrayType(obj)
	case "object":
		return p.parseObjectType(obj)
	case "boolean":
		return JsonTypeBoolean.Regex(), nil
	case "null":
		return JsonTypeNull.Regex(), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, instanceType)
	}
}
