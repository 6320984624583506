package schema

import (
	"fmt"
	"sort"
)

// parseProperties handles an object schema with a "properties"
// keyword. If at least one property is required, required properties
// are emitted in order with optional ones interleaved around the last
// required position; if none are required, one alternation branch is
// emitted per property acting as the "anchor", so the empty object is
// also accepted.
//
// Property iteration order is alphabetical by key: Go maps have no
// intrinsic order, and this module follows the same choice the
// teacher's own SchemaMap marshaling makes (deterministic,
// alphabetical) rather than threading an order-preserving map through
// every schema decode.
func (p *parser) parseProperties(obj map[string]interface{}) (string, error) {
	regex := `\{`

	propertiesVal, ok := obj["properties"]
	if !ok {
		return "", ErrPropertiesNotFound
	}
	properties, ok := asObject(propertiesVal)
	if !ok {
		return "", ErrPropertiesNotFound
	}

	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)

	required := map[string]bool{}
	if reqArr, ok := asArray(obj["required"]); ok {
		for _, r := range reqArr {
			if s, ok := asString(r); ok {
				required[s] = true
			}
		}
	}

	isRequired := make([]bool, len(names))
	anyRequired := false
	lastRequiredPos := -1
	for i, name := range names {
		if required[name] {
			isRequired[i] = true
			anyRequired = true
			lastRequiredPos = i
		}
	}

	if anyRequired {
		for i, name := range names {
			subregex, skip, err := p.propertySubregex(name, properties[name])
			if err != nil {
				return "", err
			}
			if skip {
				continue
			}
			switch {
			case i < lastRequiredPos:
				subregex = subregex + p.whitespacePattern + ","
			case i > lastRequiredPos:
				subregex = p.whitespacePattern + "," + subregex
			}
			if isRequired[i] {
				regex += subregex
			} else {
				regex += fmt.Sprintf("(%s)?", subregex)
			}
		}
	} else {
		subregexes := make([]string, 0, len(names))
		for _, name := range names {
			subregex, skip, err := p.propertySubregex(name, properties[name])
			if err != nil {
				return "", err
			}
			if skip {
				continue
			}
			subregexes = append(subregexes, subregex)
		}

		patterns := make([]string, 0, len(subregexes))
		for i := range subregexes {
			pattern := ""
			for _, sub := range subregexes[:i] {
				pattern += fmt.Sprintf("(%s%s,)?", sub, p.whitespacePattern)
			}
			pattern += subregexes[i]
			for _, sub := range subregexes[i+1:] {
				pattern += fmt.Sprintf("(%s,%s)?", p.whitespacePattern, sub)
			}
			patterns = append(patterns, pattern)
		}
		regex += fmt.Sprintf("(%s)?", joinAlternation(patterns))
	}

	regex += p.whitespacePattern + `\}`
	return regex, nil
}

// propertySubregex emits the `"name"WS:WSvalue` fragment for one
// property. skip is true when the value's regex hit the recursion
// limit, which callers must treat as "drop this property" rather than
// fail the whole compile.
func (p *parser) propertySubregex(name string, value interface{}) (subregex string, skip bool, err error) {
	subregex = fmt.Sprintf(`%s"%s"%s:%s`, p.whitespacePattern, escapeLiteral(name), p.whitespacePattern, p.whitespacePattern)
	valueRegex, err := p.toRegex(value)
	if err != nil {
		if IsRecursionLimit(err) {
			return "", true, nil
		}
		return "", false, err
	}
	subregex += valueRegex
	return subregex, false, nil
}
