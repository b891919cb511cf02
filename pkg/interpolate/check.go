package interpolate

import (
	"fmt"
	"sort"
	"strings"
)

// Placeholder describes one well-formed {{...}} region of a template.
type Placeholder struct {
	// Start and End bound the region in bytes, delimiters included.
	Start int
	End   int
	// Body is the raw text between the delimiters.
	Body string
	// Path is the key path the region resolves: the trimmed body for plain
	// regions, the first call argument otherwise. Empty when the region
	// resolves no path.
	Path string
	// Transform is the call name; empty for plain regions.
	Transform string
}

// Placeholders scans template and reports every well-formed region in
// order. Regions that never close are not reported: Render keeps those as
// literal text and Check flags them.
func Placeholders(template string) []Placeholder {
	var out []Placeholder
	pos := 0
	for {
		idx := strings.Index(template[pos:], "{{")
		if idx < 0 {
			return out
		}
		open := pos + idx
		body, end, ok := scanRegion(template, open)
		if !ok {
			pos = open + 1
			continue
		}
		out = append(out, describeRegion(open, end, body))
		pos = end
	}
}

func describeRegion(start, end int, body string) Placeholder {
	p := Placeholder{Start: start, End: end, Body: body}
	trimmed := strings.TrimSpace(body)
	name, argsText, isCall := splitCall(trimmed)
	if !isCall {
		p.Path = trimmed
		return p
	}
	p.Transform = name
	if args := parseArgs(argsText); len(args) > 0 {
		p.Path = args[0].path()
	}
	return p
}

// Problem is a static diagnosis for a template. Rendering never fails, so a
// Problem marks text that will come out as a literal or as ErrorText.
type Problem struct {
	// Offset is the byte position the problem starts at.
	Offset int
	// Message says what will happen at render time.
	Message string
}

// Check statically diagnoses a template: unterminated regions, unknown
// transformation names, and call arguments that cannot succeed. Check never
// influences rendering; Render produces the same output either way.
func Check(template string) []Problem {
	var problems []Problem

	for _, ph := range Placeholders(template) {
		if ph.Transform == "" {
			continue
		}
		kind, known := lookupTransform(ph.Transform)
		if !known {
			problems = append(problems, Problem{
				Offset:  ph.Start,
				Message: fmt.Sprintf("unknown transformation %q renders as %s", ph.Transform, ErrorText),
			})
			continue
		}
		problems = append(problems, checkCall(kind, ph)...)
	}

	problems = append(problems, unterminatedProblems(template)...)

	sort.Slice(problems, func(i, j int) bool { return problems[i].Offset < problems[j].Offset })
	return problems
}

func checkCall(kind transformKind, ph Placeholder) []Problem {
	_, argsText, _ := splitCall(strings.TrimSpace(ph.Body))
	args := parseArgs(argsText)
	var remaining []arg
	if len(args) > 0 {
		remaining = args[1:]
	}

	var problems []Problem
	switch kind {
	case transformDefault:
		if len(remaining) == 0 || remaining[0].kind != argString {
			problems = append(problems, Problem{
				Offset:  ph.Start,
				Message: fmt.Sprintf("default needs a string fallback and renders as %s without one", ErrorText),
			})
		}
	case transformReplace:
		for i, pair := range remaining {
			if pair.kind != argList || len(pair.items) != 2 {
				problems = append(problems, Problem{
					Offset:  ph.Start,
					Message: fmt.Sprintf("replace argument %d is not a [search, replacement] pair and is skipped", i+1),
				})
			}
		}
	case transformDate:
		// nothing to verify statically, the outcome depends on the resolved value
	}
	return problems
}

// unterminatedProblems reports the first "{{" that has no closing "}}"
// anywhere ahead of it. Everything from that opener on is one literal tail,
// so later openers inside it add nothing. Regions broken by stray braces
// still resynchronize on a later "}}" and are not flagged.
func unterminatedProblems(template string) []Problem {
	pos := 0
	for {
		idx := strings.Index(template[pos:], "{{")
		if idx < 0 {
			return nil
		}
		open := pos + idx
		if _, end, ok := scanRegion(template, open); ok {
			pos = end
			continue
		}
		if !strings.Contains(template[open+2:], "}}") {
			return []Problem{{Offset: open, Message: "unterminated {{ stays literal text"}}
		}
		pos = open + 1
	}
}
