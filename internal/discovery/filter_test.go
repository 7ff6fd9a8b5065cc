package discovery

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"covest/internal/domain"
)

func testFiles(names ...string) []domain.TestFile {
	files := make([]domain.TestFile, 0, len(names))
	for _, n := range names {
		files = append(files, domain.TestFile{Path: "Tests/" + n, Name: n})
	}
	return files
}

func TestFilter_FilterByName(t *testing.T) {
	filter := NewFilter()
	all := testFiles(
		"SecureAPIClientTests.swift",
		"NetworkSecurityValidatorTests.swift",
		"VPNConnectionStateTests.swift",
		"SettingsStoreTests.swift",
	)

	tests := []struct {
		name     string
		pattern  string
		expected int
	}{
		{name: "empty pattern returns all", pattern: "", expected: 4},
		{name: "wildcard pattern matches suffix", pattern: "*StoreTests.swift", expected: 1},
		{name: "wildcard pattern matches substring", pattern: "*Secur*", expected: 2},
		{name: "brace alternatives", pattern: "{VPN,Settings}*", expected: 2},
		{name: "simple contains match", pattern: "Network", expected: 1},
		{name: "no matches", pattern: "*NonExistent*", expected: 0},
		{name: "invalid pattern matches nothing", pattern: "[", expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := filter.FilterByName(all, tt.pattern)
			assert.Len(t, result, tt.expected)
		})
	}
}

func TestFilter_FilterByName_EdgeCases(t *testing.T) {
	filter := NewFilter()

	t.Run("empty test list", func(t *testing.T) {
		assert.Empty(t, filter.FilterByName(nil, "*Tests.swift"))
	})

	t.Run("matches on name not directory", func(t *testing.T) {
		files := []domain.TestFile{{Path: "NetworkTests/AppTests.swift", Name: "AppTests.swift"}}
		assert.Empty(t, filter.FilterByName(files, "Network"))
	})
}

func TestValidatePattern(t *testing.T) {
	assert.NoError(t, ValidatePattern(""))
	assert.NoError(t, ValidatePattern("*Tests.swift"))
	assert.Error(t, ValidatePattern("[abc"))
}
