// Package sanitize guards formatted messages headed for HTML pages. Data
// documents routinely carry user-supplied strings, so output embedded in
// markup goes through a bluemonday policy first: Plain strips all markup,
// Inline keeps a small emphasis allowlist.
package sanitize
