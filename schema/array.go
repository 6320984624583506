package schema

import (
	"fmt"
	"strings"
)

// parseArrayType handles a schema of type "array". With "items" it
// emits a repeated single-element pattern bounded by minItems/maxItems;
// without it, an unconstrained element alternation bounded by an
// internal depth counter.
func (p *parser) parseArrayType(obj map[string]interface{}) (string, error) {
	minItems, _ := asUint64(obj["minItems"])
	maxItemsVal, hasMax := asUint64(obj["maxItems"])
	var maxItems *uint64
	if hasMax {
		maxItems = &maxItemsVal
	}
	numRepeats := numItemsPattern(minItems, maxItems)

	if numRepeats == "" {
		return fmt.Sprintf(`\[%s\]`, p.whitespacePattern), nil
	}

	allowEmpty := ""
	if minItems == 0 {
		allowEmpty = "?"
	}

	if items, ok := obj["items"]; ok {
		itemsRegex, err := p.toRegex(items)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(`\[%s((%s)(,%s(%s))%s)%s%s\]`,
			p.whitespacePattern, itemsRegex, p.whitespacePattern, itemsRegex, numRepeats, allowEmpty, p.whitespacePattern), nil
	}

	depth, ok := asUint64(obj["depth"])
	if !ok {
		depth = 2
	}
	legalTypes := []interface{}{
		map[string]interface{}{"type": "boolean"},
		map[string]interface{}{"type": "null"},
		map[string]interface{}{"type": "number"},
		map[string]interface{}{"type": "integer"},
		map[string]interface{}{"type": "string"},
	}
	if depth > 0 {
		legalTypes = append(legalTypes,
			map[string]interface{}{"type": "object", "depth": float64(depth - 1)},
			map[string]interface{}{"type": "array", "depth": float64(depth - 1)},
		)
	}
	parts := make([]string, 0, len(legalTypes))
	for _, t := range legalTypes {
		r, err := p.toRegex(t)
		if err != nil {
			return "", err
		}
		parts = append(parts, r)
	}
	joined := strings.Join(parts, "|")

	return fmt.Sprintf(`\[%s((%s)(,%s(%s))%s)%s%s\]`,
		p.whitespacePattern, joined, p.whitespacePattern, joined, numRepeats, allowEmpty, p.whitespacePattern), nil
}

// parsePrefixItems handles the "prefixItems" tuple form: a fixed
// sequence of element schemas, one per position.
func (p *parser) parsePrefixItems(obj map[string]interface{}) (string, error) {
	prefixItems, ok := asArray(obj["prefixItems"])
	if !ok {
		return "", ErrPrefixItemsMustBeArray
	}

	elementPatterns := make([]string, 0, len(prefixItems))
	for _, item := range prefixItems {
		r, err := p.toRegex(item)
		if err != nil {
			return "", err
		}
		elementPatterns = append(elementPatterns, r)
	}

	commaSplit := fmt.Sprintf("%s,%s", p.whitespacePattern, p.whitespacePattern)
	tupleInner := strings.Join(elementPatterns, commaSplit)

	return fmt.Sprintf(`\[%s%s%s\]`, p.whitespacePattern, tupleInner, p.whitespacePattern), nil
}

// numItemsPattern returns the {min,max} repeat-count quantifier for
// the N-1 trailing elements of a fixed-item-pattern array (the first
// element is always emitted unconditionally), or "" if the array
// cannot contain any elements (maxItems == 0).
func numItemsPattern(minItems uint64, maxItems *uint64) string {
	if maxItems == nil {
		return fmt.Sprintf("{%d,}", saturatingSub(minItems, 1))
	}
	if *maxItems < 1 {
		return ""
	}
	return fmt.Sprintf("{%d,%d}", saturatingSub(minItems, 1), saturatingSub(*maxItems, 1))
}
