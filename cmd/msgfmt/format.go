package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	msgfmt "github.com/goliatone/go-msgfmt"
	"github.com/goliatone/go-msgfmt/internal/config"
	"github.com/goliatone/go-msgfmt/internal/logging"
	"github.com/goliatone/go-msgfmt/pkg/prompt"
	"github.com/goliatone/go-msgfmt/pkg/sanitize"
)

// newPromptDriver builds the interactive prompt driver; tests swap it out.
var newPromptDriver = prompt.NewSurvey

func newFormatCmd() *cobra.Command {
	var (
		templateText string
		templateFile string
		dataPath     string
		outPath      string
		htmlOut      bool
		interactive  bool
	)

	cmd := &cobra.Command{
		Use:   "format",
		Short: "Render a template against a data document",
		Example: `  msgfmt format --template "Hello, {{user.name}}!" --data user.json
  msgfmt format --template-file welcome.tmpl --data user.yaml --out welcome.txt
  msgfmt format --template "{{greeting}}" --interactive`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.GetLogger("format")

			cfg, err := config.Load("")
			if err != nil {
				return err
			}

			template, err := resolveTemplate(templateText, templateFile)
			if err != nil {
				return err
			}

			doc := msgfmt.Document{}
			if dataPath != "" {
				raw, err := loadData(dataPath)
				if err != nil {
					return err
				}
				doc = msgfmt.Normalize(raw)
			}

			var driver prompt.Driver
			if interactive {
				driver = newPromptDriver()
				missing := prompt.MissingPaths(template, doc)
				logger.Debug().Strs("paths", missing).Msg("prompting for unresolved paths")
				if len(missing) > 0 {
					_ = driver.Info(cmd.Context(), fmt.Sprintf("Collecting %d unresolved paths", len(missing)))
					answers, err := prompt.CollectDocument(cmd.Context(), driver, missing)
					if err != nil {
						return err
					}
					mergeTree(doc, answers)
				}
			}

			text := msgfmt.FormatDocument(template, doc)

			if !cmd.Flags().Changed("html") {
				htmlOut = cfg.HTML
			}
			if htmlOut {
				text = sanitize.Plain(text)
			}

			if outPath == "" {
				outPath = cfg.Output
			}
			if interactive && outPath != "" {
				if err := confirmOverwrite(cmd.Context(), driver, outPath); err != nil {
					return err
				}
			}
			return writeOutput(cmd, outPath, text)
		},
	}

	cmd.Flags().StringVarP(&templateText, "template", "t", "", "template text")
	cmd.Flags().StringVar(&templateFile, "template-file", "", "file holding the template")
	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "JSON or YAML data document")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (stdout when empty)")
	cmd.Flags().BoolVar(&htmlOut, "html", false, "strip markup so the output is safe to embed in HTML")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "prompt for paths the data document does not resolve")

	return cmd
}

func resolveTemplate(text, file string) (string, error) {
	switch {
	case text != "" && file != "":
		return "", errors.New("provide --template or --template-file, not both")
	case text != "":
		return text, nil
	case file != "":
		raw, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("read template %s: %w", file, err)
		}
		return string(raw), nil
	default:
		return "", errors.New("a template is required (--template or --template-file)")
	}
}

// loadData reads a JSON or YAML document from path; the extension picks the
// parser, anything unknown tries JSON first.
func loadData(path string) (map[string]any, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read data %s: %w", path, err)
	}

	var doc map[string]any
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("parse data %s: %w", path, err)
		}
	case ".json":
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("parse data %s: %w", path, err)
		}
	default:
		if err := json.Unmarshal(raw, &doc); err != nil {
			if yerr := yaml.Unmarshal(raw, &doc); yerr != nil {
				return nil, fmt.Errorf("parse data %s: %w", path, err)
			}
		}
	}
	return doc, nil
}

// confirmOverwrite asks before clobbering an existing output file. A path
// that does not exist yet needs no confirmation.
func confirmOverwrite(ctx context.Context, driver prompt.Driver, path string) error {
	if _, err := os.Stat(path); err != nil {
		return nil
	}
	ok, err := driver.Confirm(ctx, prompt.ConfirmConfig{
		Message: fmt.Sprintf("%s exists, overwrite?", path),
		Default: true,
	})
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("refusing to overwrite %s", path)
	}
	return nil
}

// mergeTree writes src over dst, descending into mappings both sides share.
func mergeTree(dst, src map[string]any) {
	for key, value := range src {
		if srcMap, ok := value.(map[string]any); ok {
			if dstMap, ok := dst[key].(map[string]any); ok {
				mergeTree(dstMap, srcMap)
				continue
			}
		}
		dst[key] = value
	}
}

func writeOutput(cmd *cobra.Command, path, text string) error {
	if path == "" {
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write output %s: %w", path, err)
	}
	logger := logging.GetLogger("format")
	logger.Info().Str("path", path).Msg("output written")
	return nil
}
