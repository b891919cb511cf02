package msgfmt

import (
	"github.com/goliatone/go-msgfmt/pkg/document"
	"github.com/goliatone/go-msgfmt/pkg/interpolate"
)

// Document aliases document.Document so callers can hand-build data trees
// without importing the subpackage.
type Document = document.Document

// Placeholder aliases interpolate.Placeholder for template introspection.
type Placeholder = interpolate.Placeholder

// Problem aliases interpolate.Problem, the static diagnosis Check reports.
type Problem = interpolate.Problem

// ErrorText is the in-band sentinel a failing transformation call renders as.
const ErrorText = interpolate.ErrorText

// Format renders template against data, replacing every {{...}} placeholder
// with its resolved, optionally transformed, value. Data may be any
// JSON-marshalable value (map, struct, nil); it is normalized before
// resolution. Format is total: it never panics and never returns an error.
// Unresolved paths render as empty text, failing transformation calls render
// as ErrorText, and malformed regions stay literal.
func Format(template string, data any) string {
	return interpolate.Render(template, document.Normalize(data))
}

// FormatDocument renders template against an already normalized document,
// skipping the conversion pass. Useful when one data tree backs many
// templates.
func FormatDocument(template string, doc Document) string {
	return interpolate.Render(template, doc)
}

// Normalize converts arbitrary caller data into a Document for use with
// FormatDocument.
func Normalize(data any) Document {
	return document.Normalize(data)
}

// Placeholders reports every well-formed {{...}} region of template in order.
func Placeholders(template string) []Placeholder {
	return interpolate.Placeholders(template)
}

// Check statically diagnoses template without rendering it.
func Check(template string) []Problem {
	return interpolate.Check(template)
}
