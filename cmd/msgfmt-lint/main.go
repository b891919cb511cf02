package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goliatone/go-msgfmt/pkg/catalog"
	"github.com/goliatone/go-msgfmt/pkg/interpolate"
)

type violation struct {
	file     string
	location string
	message  string
}

func main() {
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [paths...]\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nLint message templates for placeholder problems.\nCatalog files (.json/.yaml/.yml) are checked message by message;\nany other file is checked as one raw template.\n"); err != nil {
			panic(err)
		}
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		paths = []string{
			"examples/fixtures/messages/en.yaml",
			"examples/fixtures/welcome.tmpl",
		}
	}

	var violations []violation
	for _, path := range paths {
		linted, err := lintFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		violations = append(violations, linted...)
	}

	if len(violations) > 0 {
		sort.Slice(violations, func(i, j int) bool {
			if violations[i].file == violations[j].file {
				if violations[i].location == violations[j].location {
					return violations[i].message < violations[j].message
				}
				return violations[i].location < violations[j].location
			}
			return violations[i].file < violations[j].file
		})
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s: %s -> %s\n", v.file, v.location, v.message)
		}
		os.Exit(1)
	}
}

func lintFile(path string) ([]violation, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yaml", ".yml":
		return lintCatalog(path)
	default:
		return lintTemplateFile(path)
	}
}

func lintCatalog(path string) ([]violation, error) {
	cat, err := catalog.LoadFile(path)
	if err != nil {
		return nil, err
	}

	var result []violation
	for _, key := range cat.List() {
		template, err := cat.Get(key)
		if err != nil {
			return nil, err
		}
		for _, problem := range interpolate.Check(template) {
			result = append(result, violation{
				file:     path,
				location: fmt.Sprintf("%s @ %d", key, problem.Offset),
				message:  problem.Message,
			})
		}
	}
	return result, nil
}

func lintTemplateFile(path string) ([]violation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	var result []violation
	for _, problem := range interpolate.Check(string(raw)) {
		result = append(result, violation{
			file:     path,
			location: fmt.Sprintf("@ %d", problem.Offset),
			message:  problem.Message,
		})
	}
	return result, nil
}
