package schema

import "fmt"

// parseObjectType handles an object schema without a "properties"
// keyword: a repeated key-value pattern shaped by
// minProperties/maxProperties, where the value side is either
// to_regex(additionalProperties) or a depth-bounded any-type
// alternation.
func (p *parser) parseObjectType(obj map[string]interface{}) (string, error) {
	minProperties, _ := asUint64(obj["minProperties"])
	maxPropertiesVal, hasMax := asUint64(obj["maxProperties"])
	var maxProperties *uint64
	if hasMax {
		maxProperties = &maxPropertiesVal
	}
	numRepeats := numItemsPattern(minProperties, maxProperties)

	if numRepeats == "" {
		return fmt.Sprintf(`\{%s\}`, p.whitespacePattern), nil
	}

	allowEmpty := ""
	if minProperties == 0 {
		allowEmpty = "?"
	}

	additionalProperties, hasAdditional := obj["additionalProperties"]
	var valuePattern string
	var err error
	if !hasAdditional || additionalProperties == true {
		valuePattern, err = p.unconstrainedPropertyValue(obj)
	} else {
		valuePattern, err = p.toRegex(additionalProperties)
	}
	if err != nil {
		return "", err
	}

	keyValuePattern := fmt.Sprintf("%s%s:%s%s", String, p.whitespacePattern, p.whitespacePattern, valuePattern)
	keyValueSuccessor := fmt.Sprintf("%s,%s%s", p.whitespacePattern, p.whitespacePattern, keyValuePattern)
	multipleKeyValue := fmt.Sprintf("(%s(%s){0,})%s", keyValuePattern, keyValueSuccessor, allowEmpty)

	return fmt.Sprintf(`\{%s%s%s\}`, p.whitespacePattern, multipleKeyValue, p.whitespacePattern), nil
}

func (p *parser) unconstrainedPropertyValue(obj map[string]interface{}) (string, error) {
	legalTypes := []interface{}{
		map[string]interface{}{"type": "string"},
		map[string]interface{}{"type": "number"},
		map[string]interface{}{"type": "boolean"},
		map[string]interface{}{"type": "null"},
	}
	depth, ok := asUint64(obj["depth"])
	if !ok {
		depth = 2
	}
	if depth > 0 {
		legalTypes = append(legalTypes,
			map[string]interface{}{"type": "object", "depth": float64(depth - 1)},
			map[string]interface{}{"type": "array", "depth": float64(depth - 1)},
		)
	}
	anyOf := map[string]interface{}{"anyOf": legalTypes}
	return p.toRegex(anyOf)
}
