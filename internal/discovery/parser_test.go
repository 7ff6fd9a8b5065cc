package discovery

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const swiftTestFile = `import Testing
import XCTest

@Suite struct SecureAPIClientTests {
    @Test("rejects plain http")
    func rejectsPlainHTTP() async throws {
        // @Test( inside a comment is still counted by the marker heuristic
    }

    @Test func buildsRequest() {}

    @Test(.disabled("flaky")) @MainActor
    func retries() {}

    @Test("pins certificate", .tags(.security))
    func testPinning() {}

    func helper() {}
}

final class LegacyTests: XCTestCase {
    func testLegacyPath() {}
    override func setUp() {}
}
`

func TestMarkerCounter_Count(t *testing.T) {
	counter := NewMarkerCounter("@Test(")

	tests := []struct {
		name     string
		content  string
		expected int
	}{
		{name: "empty", content: "", expected: 0},
		{name: "single", content: `@Test("a") func a() {}`, expected: 1},
		{name: "bare attribute is not counted", content: "@Test func a() {}", expected: 0},
		{name: "adjacent markers", content: "@Test(@Test(", expected: 2},
		{name: "fixture file", content: swiftTestFile, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, counter.Count([]byte(tt.content)))
		})
	}

	t.Run("empty marker counts nothing", func(t *testing.T) {
		assert.Zero(t, NewMarkerCounter("").Count([]byte("anything")))
	})
}

func TestMarkerCounter_Additive(t *testing.T) {
	counter := NewMarkerCounter("@Test(")
	parts := []string{
		`@Test("one") func one() {}` + "\n",
		swiftTestFile,
		"@Test(.tags(.slow)) func two() {}\n@Test(\"three\") func three() {}\n",
	}

	sum := 0
	var concatenated []byte
	for _, p := range parts {
		sum += counter.Count([]byte(p))
		concatenated = append(concatenated, p...)
	}

	assert.Equal(t, sum, counter.Count(concatenated))
}

func TestParser_CountFile(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "SecureAPIClientTests.swift")
	require.NoError(t, os.WriteFile(testFile, []byte(swiftTestFile), 0o644))

	parser := NewParser(NewMarkerCounter("@Test("))

	t.Run("counts markers", func(t *testing.T) {
		count, err := parser.CountFile(testFile)
		require.NoError(t, err)
		assert.Equal(t, 4, count)
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		_, err := parser.CountFile(filepath.Join(tmpDir, "Missing.swift"))
		assert.Error(t, err)
	})
}

func TestParser_FindTestCases(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := filepath.Join(tmpDir, "SecureAPIClientTests.swift")
	require.NoError(t, os.WriteFile(testFile, []byte(swiftTestFile), 0o644))

	parser := NewParser(NewMarkerCounter("@Test("))

	t.Run("finds test cases", func(t *testing.T) {
		testCases, err := parser.FindTestCases(testFile)
		require.NoError(t, err)

		var names []string
		for _, tc := range testCases {
			assert.Equal(t, testFile, tc.FilePath)
			names = append(names, tc.Name)
		}
		assert.Equal(t, []string{
			"buildsRequest",
			"pins certificate",
			"rejects plain http",
			"retries",
			"testLegacyPath",
		}, names)
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		_, err := parser.FindTestCases("/non/existent/file.swift")
		assert.Error(t, err)
	})
}
