package interpolate

import (
	"strings"

	"github.com/goliatone/go-msgfmt/pkg/document"
)

// evalPlaceholder turns one placeholder body into replacement text. Failures
// never escape: an unresolved path renders empty text and a failing
// transformation call renders ErrorText.
func evalPlaceholder(body string, doc document.Document) string {
	trimmed := strings.TrimSpace(body)
	if trimmed == "" {
		return ""
	}

	name, argsText, isCall := splitCall(trimmed)
	if !isCall {
		value, found := doc.Resolve(trimmed)
		if !found || value == nil {
			return ""
		}
		return document.DisplayString(value)
	}

	kind, known := lookupTransform(name)
	if !known {
		return ErrorText
	}

	args := parseArgs(argsText)

	// the first argument names the value's key path; everything after it is
	// positional input for the transformation
	var value any
	var found bool
	var remaining []arg
	if len(args) > 0 {
		if path := args[0].path(); path != "" {
			value, found = doc.Resolve(path)
		}
		remaining = args[1:]
	}

	text, err := apply(kind, value, found, remaining)
	if err != nil {
		return ErrorText
	}
	return text
}

// splitCall reports whether body has the shape name(argsText) spanning the
// whole string, with name a run of identifier characters directly attached
// to the opening parenthesis.
func splitCall(body string) (name, argsText string, ok bool) {
	i := 0
	for i < len(body) && isIdentChar(body[i]) {
		i++
	}
	if i == 0 || i >= len(body) || body[i] != '(' || body[len(body)-1] != ')' {
		return "", "", false
	}
	return body[:i], body[i+1 : len(body)-1], true
}

func isIdentChar(c byte) bool {
	return c == '_' ||
		(c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9')
}
