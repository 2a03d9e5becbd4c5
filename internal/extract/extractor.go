package extract

import (
	"fmt"
	"os"
)

// Extractor applies the pattern registry to file contents and collects
// accepted symbol names per category.
type Extractor struct {
	registry *Registry
	filter   *NameFilter
}

// NewExtractor creates an extractor using the given registry and name filter.
func NewExtractor(registry *Registry, filter *NameFilter) *Extractor {
	return &Extractor{
		registry: registry,
		filter:   filter,
	}
}

// Extract runs every category's matchers over content and returns the
// accepted names as a per-file aggregate. Function and method candidates go
// through the name filter; class and constant shapes are constrained by the
// patterns themselves.
func (e *Extractor) Extract(content string) *Aggregate {
	agg := NewAggregate()
	for _, category := range Categories() {
		filtered := category == CategoryFunction || category == CategoryMethod
		for _, rule := range e.registry.Rules(category) {
			for _, match := range rule.FindAllStringSubmatch(content, -1) {
				name := match[1]
				if filtered && !e.filter.Accept(name) {
					continue
				}
				agg.Add(category, name)
			}
		}
	}
	return agg
}

// ExtractFile reads path and extracts its symbols. Binary content yields an
// error rather than garbage matches; callers treat any error here as a
// per-file warning, not a run failure.
func (e *Extractor) ExtractFile(path string) (*Aggregate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if !isText(data) {
		return nil, fmt.Errorf("%s: binary content", path)
	}
	return e.Extract(string(data)), nil
}

// isText checks the first 512 bytes for null bytes, which indicate binary
// content.
func isText(data []byte) bool {
	n := len(data)
	if n > 512 {
		n = 512
	}
	for i := 0; i < n; i++ {
		if data[i] == 0 {
			return false
		}
	}
	return true
}
