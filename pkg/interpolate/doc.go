// Package interpolate implements the {{...}} placeholder engine. A
// hand-written scanner locates placeholder regions, the evaluator classifies
// each body as a key path or a transformation call, and a closed set of
// transformations (default, date, replace) turns resolved values into text.
// Rendering is total: unresolved paths become empty text, failing
// transformations become the ErrorText sentinel, and malformed regions pass
// through as literals. No call ever panics or returns an error.
package interpolate
