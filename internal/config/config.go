// Package config layers the msgfmt CLI configuration: embedded defaults,
// then an optional .msgfmt.toml in the working directory, then MSGFMT_*
// environment variables.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

// Config holds the CLI settings the commands read.
type Config struct {
	// Catalog is the directory message catalog files load from.
	Catalog string `koanf:"catalog"`
	// Output is the file formatted text is written to; stdout when empty.
	Output string `koanf:"output"`
	// HTML sanitizes formatted output for HTML embedding.
	HTML bool `koanf:"html"`
}

// rawBytesProvider implements koanf's provider for embedded raw bytes.
type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Load builds the effective configuration. dir is where the optional
// .msgfmt.toml (or msgfmt.toml) is looked up; empty means the current
// directory.
func Load(dir string) (*Config, error) {
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	// 2. Project config if it exists
	if dir == "" {
		dir = "."
	}
	for _, name := range []string{".msgfmt.toml", "msgfmt.toml"} {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, fmt.Errorf("config: load %s: %w", path, err)
			}
			break
		}
	}

	// 3. Environment variables (MSGFMT_CATALOG -> catalog)
	err := k.Load(env.Provider("MSGFMT_", ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, "MSGFMT_")), "_", ".")
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("config: load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}
