// Package prompt collects data documents interactively. A Driver abstracts
// the terminal prompts so collection flows can be tested without a TTY;
// NewSurvey returns the real implementation. CollectDocument asks for a
// value per key path and assembles the answers into a document tree.
package prompt
