package catalog

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/goliatone/go-msgfmt/pkg/document"
	"github.com/goliatone/go-msgfmt/pkg/interpolate"
)

// ErrMessageNotFound reports a Format or Get against an unregistered key.
var ErrMessageNotFound = errors.New("catalog: message not found")

// Catalog stores message templates by key. Safe for concurrent use.
type Catalog struct {
	mu        sync.RWMutex
	templates map[string]string
}

// New creates an empty catalog.
func New() *Catalog {
	return &Catalog{
		templates: make(map[string]string),
	}
}

// Register adds a template under key. Duplicate keys return an error.
func (c *Catalog) Register(key, template string) error {
	if key == "" {
		return fmt.Errorf("catalog: message key is required")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.templates[key]; exists {
		return fmt.Errorf("catalog: message %q already registered", key)
	}

	c.templates[key] = template
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (c *Catalog) MustRegister(key, template string) {
	if err := c.Register(key, template); err != nil {
		panic(err)
	}
}

// Get retrieves the raw template stored under key.
func (c *Catalog) Get(key string) (string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	template, ok := c.templates[key]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMessageNotFound, key)
	}
	return template, nil
}

// Format renders the message stored under key against data. The only error
// is a missing key; rendering never fails.
func (c *Catalog) Format(key string, data any) (string, error) {
	template, err := c.Get(key)
	if err != nil {
		return "", err
	}
	return interpolate.Render(template, document.Normalize(data)), nil
}

// FormatDocument renders the message stored under key against an already
// normalized document.
func (c *Catalog) FormatDocument(key string, doc document.Document) (string, error) {
	template, err := c.Get(key)
	if err != nil {
		return "", err
	}
	return interpolate.Render(template, doc), nil
}

// List returns the sorted message keys.
func (c *Catalog) List() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := make([]string, 0, len(c.templates))
	for key := range c.templates {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Has reports whether a message is registered.
func (c *Catalog) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, ok := c.templates[key]
	return ok
}
