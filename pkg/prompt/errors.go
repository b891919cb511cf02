package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrDriverRequired is returned when a collection flow is started
	// without a driver.
	ErrDriverRequired = errors.New("prompt: driver is required")
)
