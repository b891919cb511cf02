package catalog

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFS walks the provided filesystem and registers every message found in
// JSON/YAML files. Nested mappings flatten into dotted keys, so a "greeting"
// mapping holding "welcome" registers "greeting.welcome". When fsys is nil or
// holds no message files, the returned catalog is empty.
func LoadFS(fsys fs.FS) (*Catalog, error) {
	cat := New()
	if fsys == nil {
		return cat, nil
	}

	err := fs.WalkDir(fsys, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() || !isMessageFile(path) {
			return nil
		}

		data, err := fs.ReadFile(fsys, path)
		if err != nil {
			return fmt.Errorf("catalog: read %s: %w", path, err)
		}

		doc, err := parseMessages(data, path)
		if err != nil {
			return err
		}

		return registerTree(cat, doc, "", path)
	})
	if err != nil {
		return nil, err
	}

	return cat, nil
}

// LoadFile loads the messages of a single file from the host filesystem.
func LoadFile(path string) (*Catalog, error) {
	cat := New()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}

	doc, err := parseMessages(data, path)
	if err != nil {
		return nil, err
	}

	if err := registerTree(cat, doc, "", path); err != nil {
		return nil, err
	}
	return cat, nil
}

func isMessageFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return true
	default:
		return false
	}
}

func parseMessages(data []byte, source string) (map[string]any, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("catalog: file %s is empty", source)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}
	if err := yaml.Unmarshal(data, &doc); err == nil {
		return doc, nil
	}

	return nil, fmt.Errorf("catalog: parse %s: invalid JSON or YAML", source)
}

// registerTree flattens nested mappings into dotted keys. Leaves must be
// strings; anything else is a malformed message file.
func registerTree(cat *Catalog, node map[string]any, prefix, source string) error {
	for rawKey, value := range node {
		key := strings.TrimSpace(rawKey)
		if key == "" {
			return fmt.Errorf("catalog: file %s defines an empty message key", source)
		}
		if prefix != "" {
			key = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			if cat.Has(key) {
				return fmt.Errorf("catalog: duplicate message %q (file %s)", key, source)
			}
			if err := cat.Register(key, v); err != nil {
				return err
			}
		case map[string]any:
			if err := registerTree(cat, v, key, source); err != nil {
				return err
			}
		default:
			return fmt.Errorf("catalog: file %s message %q is not a string", source, key)
		}
	}
	return nil
}
