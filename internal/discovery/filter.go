package discovery

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"covest/internal/domain"
)

// Filter filters test files by name pattern
type Filter struct{}

// NewFilter creates a new Filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByName keeps the test files whose name matches pattern.
// Glob patterns like "*Security*Tests.swift" or "{VPN,Network}*" are matched
// against the file name; a pattern without glob syntax is a substring match.
func (f *Filter) FilterByName(tests []domain.TestFile, pattern string) []domain.TestFile {
	if pattern == "" {
		return tests
	}

	hasGlob := strings.ContainsAny(pattern, "*?[{")

	var filtered []domain.TestFile
	for _, test := range tests {
		if !hasGlob {
			if strings.Contains(test.Name, pattern) {
				filtered = append(filtered, test)
			}
			continue
		}

		// Invalid patterns match nothing
		if matched, err := doublestar.Match(pattern, test.Name); err == nil && matched {
			filtered = append(filtered, test)
		}
	}

	return filtered
}

// ValidatePattern returns an error when pattern is not a valid glob
func ValidatePattern(pattern string) error {
	if pattern == "" || doublestar.ValidatePattern(pattern) {
		return nil
	}
	return doublestar.ErrBadPattern
}
