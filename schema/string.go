package schema

import "fmt"

// parseStringType handles a schema of type "string", dispatching
// further on maxLength/minLength, pattern, and format.
func (p *parser) parseStringType(obj map[string]interface{}) (string, error) {
	_, hasMax := obj["maxLength"]
	_, hasMin := obj["minLength"]
	if hasMax || hasMin {
		return p.parseStringLength(obj)
	}
	if pattern, ok := asString(obj["pattern"]); ok {
		return p.parseStringPattern(pattern), nil
	}
	if format, ok := asString(obj["format"]); ok {
		formatType, ok := ParseFormatType(format)
		if !ok {
			return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
		}
		return formatType.Regex(), nil
	}
	return JsonTypeString.Regex(), nil
}

func (p *parser) parseStringLength(obj map[string]interface{}) (string, error) {
	minV, hasMin := asUint64(obj["minLength"])
	maxV, hasMax := asUint64(obj["maxLength"])
	if hasMin && hasMax && minV > maxV {
		return "", ErrMaxBoundExceeded
	}

	min := "0"
	if hasMin {
		min = fmt.Sprintf("%d", minV)
	}
	max := ""
	if hasMax {
		max = fmt.Sprintf("%d", maxV)
	}
	return fmt.Sprintf(`"%s{%s,%s}"`, StringInner, min, max), nil
}

// parseStringPattern emits the pattern wrapped as an anchored group,
// stripping a leading '^' and trailing '$' if both are present (the
// surrounding quotes already anchor the match).
func (p *parser) parseStringPattern(pattern string) string {
	if len(pattern) >= 2 && pattern[0] == '^' && pattern[len(pattern)-1] == '$' {
		pattern = pattern[1 : len(pattern)-1]
	}
	return fmt.Sprintf(`("%s")`, pattern)
}
