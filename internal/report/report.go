// Package report assembles and persists the symbol inventory artifact.
// Its JSON shape is a compatibility surface: downstream consumers index the
// document by these exact keys.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/stubgen/stubgen/internal/extract"
)

// Meta records the provenance of one generated inventory.
type Meta struct {
	GeneratedAt string `json:"generated_at"`
	Source      string `json:"source"`
	Branch      string `json:"branch"`
	Version     string `json:"version"`
	License     string `json:"license"`
	Copyright   string `json:"copyright"`
	LicenseURL  string `json:"license_url"`
}

// Stats holds per-category counts. TotalUnique counts the union of
// functions, classes and methods; constants are excluded from it, which is
// part of the downstream contract.
type Stats struct {
	Functions   int `json:"functions"`
	Classes     int `json:"classes"`
	Methods     int `json:"methods"`
	Constants   int `json:"constants"`
	TotalUnique int `json:"total_unique"`
}

// Symbols holds the sorted symbol lists.
type Symbols struct {
	Functions []string `json:"functions"`
	Classes   []string `json:"classes"`
	Methods   []string `json:"methods"`
	Constants []string `json:"constants"`
}

// Report is the persisted artifact.
type Report struct {
	Meta    Meta    `json:"meta"`
	Stats   Stats   `json:"stats"`
	Symbols Symbols `json:"symbols"`
}

// Provenance identifies the source tree a report was generated from.
type Provenance struct {
	Source     string
	Branch     string
	Version    string
	License    string
	Copyright  string
	LicenseURL string
}

// Build assembles a report from an aggregate. Symbol lists are sorted
// ascending by code point so output over an identical corpus is byte-stable
// regardless of traversal order. Pure except for the generated_at stamp.
func Build(agg *extract.Aggregate, prov Provenance) *Report {
	symbols := Symbols{
		Functions: sortedNames(agg.Names(extract.CategoryFunction)),
		Classes:   sortedNames(agg.Names(extract.CategoryClass)),
		Methods:   sortedNames(agg.Names(extract.CategoryMethod)),
		Constants: sortedNames(agg.Names(extract.CategoryConstant)),
	}

	unique := make(map[string]struct{})
	for _, list := range [][]string{symbols.Functions, symbols.Classes, symbols.Methods} {
		for _, name := range list {
			unique[name] = struct{}{}
		}
	}

	return &Report{
		Meta: Meta{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			Source:      prov.Source,
			Branch:      prov.Branch,
			Version:     prov.Version,
			License:     prov.License,
			Copyright:   prov.Copyright,
			LicenseURL:  prov.LicenseURL,
		},
		Stats: Stats{
			Functions:   len(symbols.Functions),
			Classes:     len(symbols.Classes),
			Methods:     len(symbols.Methods),
			Constants:   len(symbols.Constants),
			TotalUnique: len(unique),
		},
		Symbols: symbols,
	}
}

// Write persists the report as indented JSON, creating parent directories as
// needed.
func Write(r *Report, path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing report to %s: %w", path, err)
	}
	return nil
}

func sortedNames(set map[string]struct{}) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
