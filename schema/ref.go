package schema

import (
	"fmt"
	"strings"
)

// parseRef resolves a "$ref" of the form "[base]#[fragment]". An
// empty base, or one matching the root schema's "$id", resolves
// locally by indexing into the root along the fragment's '/'
// segments. Any other base fails as an unsupported external
// reference. Each call increments a recursion counter; once it
// exceeds maxRecursionDepth, parseRef returns a recoverable
// recursion-limit error instead of resolving further.
func (p *parser) parseRef(obj map[string]interface{}) (string, error) {
	if p.recursionDepth > p.maxRecursionDepth {
		return "", newRecursionLimitError(p.maxRecursionDepth)
	}
	p.recursionDepth++
	defer func() { p.recursionDepth-- }()

	refPath, ok := asString(obj["$ref"])
	if !ok {
		return "", ErrRefMustBeString
	}

	parts := strings.Split(refPath, "#")
	switch len(parts) {
	case 1:
		return p.resolveRefFragment(parts[0])
	case 2:
		base, fragment := parts[0], parts[1]
		if base == "" {
			return p.resolveRefFragment(fragment)
		}
		rootObj, isObj := asObject(p.root)
		if isObj {
			if id, ok := asString(rootObj["$id"]); ok && id == base {
				return p.resolveRefFragment(fragment)
			}
		}
		return "", fmt.Errorf("%w: %s", ErrExternalReference, refPath)
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidRefFormat, refPath)
	}
}

func (p *parser) resolveRefFragment(fragment string) (string, error) {
	var pathParts []string
	for _, seg := range strings.Split(fragment, "/") {
		if seg != "" {
			pathParts = append(pathParts, seg)
		}
	}
	referenced, err := p.resolveLocalRef(pathParts)
	if err != nil {
		return "", err
	}
	return p.toRegex(referenced)
}
