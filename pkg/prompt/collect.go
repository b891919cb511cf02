package prompt

import (
	"context"
	"strings"

	"github.com/goliatone/go-msgfmt/pkg/document"
	"github.com/goliatone/go-msgfmt/pkg/interpolate"
)

// CollectOption adjusts how CollectDocument gathers answers.
type CollectOption func(*collectSettings)

type collectSettings struct {
	multiline map[string]struct{}
}

// WithMultiline marks key paths whose answers span several lines. Those
// paths are collected through the driver's multi-line editor instead of the
// single-line input.
func WithMultiline(paths ...string) CollectOption {
	return func(s *collectSettings) {
		for _, path := range paths {
			key := strings.TrimSpace(path)
			if key == "" {
				continue
			}
			if s.multiline == nil {
				s.multiline = map[string]struct{}{}
			}
			s.multiline[key] = struct{}{}
		}
	}
}

// CollectDocument prompts for a value at each key path, in order, and
// assembles the answers into a document tree. Dotted paths build nested
// mappings, so "user.name" stores under a "user" mapping. Answers arrive as
// strings; blank paths are skipped. The first failed prompt aborts the
// collection.
func CollectDocument(ctx context.Context, driver Driver, paths []string, opts ...CollectOption) (document.Document, error) {
	if driver == nil {
		return nil, ErrDriverRequired
	}

	settings := collectSettings{}
	for _, opt := range opts {
		if opt != nil {
			opt(&settings)
		}
	}

	doc := document.Document{}
	for _, path := range paths {
		key := strings.TrimSpace(path)
		if key == "" {
			continue
		}
		var answer string
		var err error
		if _, long := settings.multiline[key]; long {
			answer, err = driver.TextArea(ctx, TextAreaConfig{Message: key})
		} else {
			answer, err = driver.Input(ctx, InputConfig{Message: key})
		}
		if err != nil {
			return nil, err
		}
		setPath(doc, key, answer)
	}
	return doc, nil
}

// MissingPaths reports, in template order and without duplicates, the key
// paths that template references but doc does not resolve. Plain regions
// contribute their path, transformation calls their first argument.
func MissingPaths(template string, doc document.Document) []string {
	var missing []string
	seen := map[string]struct{}{}
	for _, ph := range interpolate.Placeholders(template) {
		path := ph.Path
		if path == "" {
			continue
		}
		if _, dup := seen[path]; dup {
			continue
		}
		seen[path] = struct{}{}
		if _, found := doc.Resolve(path); !found {
			missing = append(missing, path)
		}
	}
	return missing
}

// setPath writes value at a dotted path, creating intermediate mappings as
// needed. A non-mapping node in the way is replaced; the last write wins.
func setPath(doc document.Document, path string, value any) {
	segments := strings.Split(path, ".")
	node := map[string]any(doc)
	for i, segment := range segments {
		if i == len(segments)-1 {
			node[segment] = value
			return
		}
		next, ok := node[segment].(map[string]any)
		if !ok {
			next = map[string]any{}
			node[segment] = next
		}
		node = next
	}
}
