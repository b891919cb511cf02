package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	msgfmt "github.com/goliatone/go-msgfmt"
	"github.com/goliatone/go-msgfmt/internal/config"
	"github.com/goliatone/go-msgfmt/internal/logging"
	"github.com/goliatone/go-msgfmt/pkg/catalog"
	"github.com/goliatone/go-msgfmt/pkg/sanitize"
)

func newCatalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Work with message catalogs",
		Long: `Message catalogs are directories of JSON/YAML files mapping keys to
templates. Nested mappings flatten into dotted keys.`,
	}

	cmd.AddCommand(newCatalogListCmd())
	cmd.AddCommand(newCatalogRenderCmd())

	return cmd
}

func newCatalogListCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the message keys of a catalog directory",
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := openCatalog(dir)
			if err != nil {
				return err
			}
			for _, key := range cat.List() {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "catalog directory (default from config)")

	return cmd
}

func newCatalogRenderCmd() *cobra.Command {
	var (
		dir      string
		dataPath string
		outPath  string
		htmlOut  bool
	)

	cmd := &cobra.Command{
		Use:   "render <key>",
		Short: "Render one catalog message against a data document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := openCatalog(dir)
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

			text, err := cat.FormatDocument(args[0], doc)
			if err != nil {
				return err
			}
			if htmlOut {
				text = sanitize.Plain(text)
			}
			return writeOutput(cmd, outPath, text)
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "catalog directory (default from config)")
	cmd.Flags().StringVarP(&dataPath, "data", "d", "", "JSON or YAML data document")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (stdout when empty)")
	cmd.Flags().BoolVar(&htmlOut, "html", false, "strip markup so the output is safe to embed in HTML")

	return cmd
}

// openCatalog loads the catalog directory named by the flag, falling back to
// the configured default.
func openCatalog(dir string) (*catalog.Catalog, error) {
	if dir == "" {
		cfg, err := config.Load("")
		if err != nil {
			return nil, err
		}
		dir = cfg.Catalog
	}
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("catalog directory %s: %w", dir, err)
	}

	cat, err := catalog.LoadFS(os.DirFS(dir))
	if err != nil {
		return nil, err
	}
	logger := logging.GetLogger("catalog")
	logger.Debug().Str("dir", dir).Int("messages", len(cat.List())).Msg("catalog loaded")
	return cat, nil
}
