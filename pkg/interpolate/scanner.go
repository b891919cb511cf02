package interpolate

import (
	"strings"

	"github.com/goliatone/go-msgfmt/pkg/document"
)

// ErrorText is inserted in place of a placeholder whose transformation call
// failed. It is in-band replacement text, never an error value.
const ErrorText = "#ERROR"

// Render substitutes every {{...}} region of template with its evaluated
// text. A region closes at the first "}}" after its "{{" and its body may
// not contain stray braces; a "{{" that never closes stays in the output
// verbatim. Text outside regions passes through unchanged.
func Render(template string, doc document.Document) string {
	if template == "" {
		return ""
	}
	if !strings.Contains(template, "{{") {
		return template
	}

	var out strings.Builder
	out.Grow(len(template))

	rest := template
	for {
		open := strings.Index(rest, "{{")
		if open < 0 {
			out.WriteString(rest)
			return out.String()
		}

		body, end, ok := scanRegion(rest, open)
		if !ok {
			// no well-formed close; the first brace is literal text and
			// scanning resumes right behind it
			out.WriteString(rest[:open+1])
			rest = rest[open+1:]
			continue
		}

		out.WriteString(rest[:open])
		out.WriteString(evalPlaceholder(body, doc))
		rest = rest[end:]
	}
}

// scanRegion reads the region whose "{{" starts at open. The body is the
// longest run of characters free of '{' and '}' and must be closed by "}}".
// It returns the body, the offset just past the closing delimiter, and
// whether the region is well formed.
func scanRegion(s string, open int) (string, int, bool) {
	start := open + 2
	end := start
	for end < len(s) && s[end] != '{' && s[end] != '}' {
		end++
	}
	if end+1 < len(s) && s[end] == '}' && s[end+1] == '}' {
		return s[start:end], end + 2, true
	}
	return "", 0, false
}
