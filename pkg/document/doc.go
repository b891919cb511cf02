// Package document models the JSON-like data tree that placeholder paths
// resolve against. It normalizes arbitrary caller data into a uniform shape,
// walks dot-separated key paths with an explicit found/missing outcome, and
// converts resolved values into their substitution text.
package document
