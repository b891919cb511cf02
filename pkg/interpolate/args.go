package interpolate

import "strings"

type argKind int

const (
	argString argKind = iota
	argList
)

// arg is one parsed transformation argument: either string text (a bare
// token or an unwrapped quoted literal) or a list of string items.
type arg struct {
	kind  argKind
	text  string
	items []string
}

// path returns the argument text when it can serve as a key path; list
// arguments never can.
func (a arg) path() string {
	if a.kind != argString {
		return ""
	}
	return a.text
}

// parseArgs splits raw transformation-argument text into positional
// arguments. Splitting happens on top-level commas only: a comma inside a
// single-quoted literal or a [...] literal does not split. Empty positions
// are preserved as empty bare tokens. The parser is lenient and never fails;
// unbalanced quotes or brackets fall out as best-effort tokens.
func parseArgs(argsText string) []arg {
	if strings.TrimSpace(argsText) == "" {
		return nil
	}
	parts := splitTopLevel(argsText)
	out := make([]arg, 0, len(parts))
	for _, part := range parts {
		out = append(out, parseArg(part))
	}
	return out
}

// splitTopLevel cuts s on commas sitting outside quotes and brackets.
func splitTopLevel(s string) []string {
	var parts []string
	var quoted bool
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '\'':
			quoted = !quoted
		case '[':
			if !quoted {
				depth++
			}
		case ']':
			if !quoted && depth > 0 {
				depth--
			}
		case ',':
			if !quoted && depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}

// parseArg classifies one raw token. Quoted text is unwrapped verbatim, no
// escape sequences exist inside literals.
func parseArg(raw string) arg {
	token := strings.TrimSpace(raw)
	if isQuoted(token) {
		return arg{kind: argString, text: token[1 : len(token)-1]}
	}
	if len(token) >= 2 && token[0] == '[' && token[len(token)-1] == ']' {
		return arg{kind: argList, items: parseList(token[1 : len(token)-1])}
	}
	return arg{kind: argString, text: token}
}

// parseList splits an array-literal interior into its string elements; an
// empty interior is an empty sequence.
func parseList(inner string) []string {
	if strings.TrimSpace(inner) == "" {
		return nil
	}
	parts := splitTopLevel(inner)
	items := make([]string, 0, len(parts))
	for _, part := range parts {
		token := strings.TrimSpace(part)
		if isQuoted(token) {
			token = token[1 : len(token)-1]
		}
		items = append(items, token)
	}
	return items
}

func isQuoted(token string) bool {
	return len(token) >= 2 && token[0] == '\'' && token[len(token)-1] == '\''
}
