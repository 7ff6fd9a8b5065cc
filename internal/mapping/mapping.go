// Package mapping loads and validates the curated source to test file table.
package mapping

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"covest/internal/domain"
)

var (
	// ErrDuplicateSource is returned when a source name appears twice in a mapping file
	ErrDuplicateSource = errors.New("duplicate source in mapping")
	// ErrEmptyName is returned when an entry has an empty source or test name
	ErrEmptyName = errors.New("empty name in mapping")
)

// File is the on-disk layout of a mapping file:
//
//	mappings:
//	  - source: SecureAPIClient.swift
//	    test: SecureAPIClientTests.swift
type File struct {
	Mappings []domain.MappingEntry `yaml:"mappings"`
}

// LoadFile reads a YAML mapping file
func LoadFile(path string) (*domain.CoverageMapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read mapping file: %w", err)
	}

	m, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("mapping file %s: %w", path, err)
	}
	return m, nil
}

// Parse decodes a YAML mapping document, keeping the entry order
func Parse(data []byte) (*domain.CoverageMapping, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse mapping: %w", err)
	}

	seen := make(map[string]int, len(f.Mappings))
	for i, e := range f.Mappings {
		e.Source = strings.TrimSpace(e.Source)
		e.Test = strings.TrimSpace(e.Test)
		if e.Source == "" || e.Test == "" {
			return nil, fmt.Errorf("entry %d: %w", i+1, ErrEmptyName)
		}
		if prev, ok := seen[e.Source]; ok {
			return nil, fmt.Errorf("entry %d: %w: %s (first at entry %d)", i+1, ErrDuplicateSource, e.Source, prev+1)
		}
		seen[e.Source] = i
		f.Mappings[i] = e
	}

	return domain.NewCoverageMapping(f.Mappings), nil
}

// Marshal encodes m in the mapping file layout
func Marshal(m *domain.CoverageMapping) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(File{Mappings: m.Entries()}); err != nil {
		return nil, fmt.Errorf("encode mapping: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode mapping: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile writes m to path. An existing file is never overwritten.
func WriteFile(path string, m *domain.CoverageMapping) error {
	data, err := Marshal(m)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create mapping file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("write mapping file: %w", err)
	}
	return nil
}

// Validate cross-checks every entry against the enumerated files and returns
// one issue per missing source or test, in table order.
func Validate(m *domain.CoverageMapping, sources []domain.SourceFile, tests []domain.TestFile) []domain.MappingIssue {
	sourceNames := make(map[string]bool, len(sources))
	for _, s := range sources {
		sourceNames[s.Name] = true
	}
	testNames := make(map[string]bool, len(tests))
	for _, t := range tests {
		testNames[t.Name] = true
	}

	var issues []domain.MappingIssue
	for _, e := range m.Entries() {
		if !sourceNames[e.Source] {
			issues = append(issues, domain.MappingIssue{Entry: e, Kind: domain.IssueMissingSource})
		}
		if !testNames[e.Test] {
			issues = append(issues, domain.MappingIssue{Entry: e, Kind: domain.IssueMissingTest})
		}
	}
	return issues
}

// ConfirmedKeys counts mapping keys that are present among the enumerated source files
func ConfirmedKeys(m *domain.CoverageMapping, sources []domain.SourceFile) int {
	present := make(map[string]bool, len(sources))
	for _, s := range sources {
		present[s.Name] = true
	}

	n := 0
	for _, key := range m.Keys() {
		if present[key] {
			n++
		}
	}
	return n
}
