package schema

import "fmt"

// parseIntegerType handles a schema of type "integer", applying
// minDigits/maxDigits if present.
func (p *parser) parseIntegerType(obj map[string]interface{}) (string, error) {
	_, hasMin := obj["minDigits"]
	_, hasMax := obj["maxDigits"]
	if !hasMin && !hasMax {
		return JsonTypeInteger.Regex(), nil
	}

	minV, okMin := asUint64(obj["minDigits"])
	maxV, okMax := asUint64(obj["maxDigits"])
	bound, err := validateQuantifiers(optUint64(minV, okMin), optUint64(maxV, okMax), 1)
	if err != nil {
		return "", err
	}

	quant := formatQuantifier(bound, "*", "{0,%d}")
	return fmt.Sprintf(`(-)?(0|[1-9][0-9]%s)`, quant), nil
}

// parseNumberType handles a schema of type "number", applying the
// integer/fraction/exponent digit-count bounds if present.
func (p *parser) parseNumberType(obj map[string]interface{}) (string, error) {
	boundKeys := []string{
		"minDigitsInteger", "maxDigitsInteger",
		"minDigitsFraction", "maxDigitsFraction",
		"minDigitsExponent", "maxDigitsExponent",
	}
	hasBounds := false
	for _, k := range boundKeys {
		if _, ok := obj[k]; ok {
			hasBounds = true
			break
		}
	}
	if !hasBounds {
		return JsonTypeNumber.Regex(), nil
	}

	intMin, intMinOK := asUint64(obj["minDigitsInteger"])
	intMax, intMaxOK := asUint64(obj["maxDigitsInteger"])
	intBound, err := validateQuantifiers(optUint64(intMin, intMinOK), optUint64(intMax, intMaxOK), 1)
	if err != nil {
		return "", err
	}

	fracMin, fracMinOK := asUint64(obj["minDigitsFraction"])
	fracMax, fracMaxOK := asUint64(obj["maxDigitsFraction"])
	fracBound, err := validateQuantifiers(optUint64(fracMin, fracMinOK), optUint64(fracMax, fracMaxOK), 0)
	if err != nil {
		return "", err
	}

	expMin, expMinOK := asUint64(obj["minDigitsExponent"])
	expMax, expMaxOK := asUint64(obj["maxDigitsExponent"])
	expBound, err := validateQuantifiers(optUint64(expMin, expMinOK), optUint64(expMax, expMaxOK), 0)
	if err != nil {
		return "", err
	}

	intQuant := formatQuantifier(intBound, "*", "{1,%d}")
	fracQuant := formatQuantifier(fracBound, "+", "{0,%d}")
	expQuant := formatQuantifier(expBound, "+", "{0,%d}")

	return fmt.Sprintf(
		`((-)?(0|[1-9][0-9]%s))(\.[0-9]%s)?([eE][+-][0-9]%s)?`,
		intQuant, fracQuant, expQuant,
	), nil
}

func optUint64(v uint64, ok bool) *uint64 {
	if !ok {
		return nil
	}
	return &v
}

// formatQuantifier renders a resolved bound as a regex repeat
// quantifier. noneNone is used when neither side is present;
// noneMaxFmt (a printf template taking max) is used when only max is
// present.
func formatQuantifier(b quantifierBound, noneNone, noneMaxFmt string) string {
	switch {
	case b.hasMin && b.hasMax:
		return fmt.Sprintf("{%d,%d}", *b.min, *b.max)
	case b.hasMin:
		return fmt.Sprintf("{%d,}", *b.min)
	case b.hasMax:
		return fmt.Sprintf(noneMaxFmt, *b.max)
	default:
		return noneNone
	}
}
