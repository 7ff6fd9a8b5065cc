package discovery

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"covest/internal/domain"
)

// Counter counts test-case declarations in the contents of one test file
type Counter interface {
	Count(content []byte) int
}

// MarkerCounter counts non-overlapping occurrences of a literal marker such as "@Test(".
// It is a surface heuristic: markers inside comments or strings are counted too.
type MarkerCounter struct {
	Marker string
}

// NewMarkerCounter creates a MarkerCounter for marker
func NewMarkerCounter(marker string) MarkerCounter {
	return MarkerCounter{Marker: marker}
}

// Count returns the number of marker occurrences in content
func (c MarkerCounter) Count(content []byte) int {
	if c.Marker == "" {
		return 0
	}
	return bytes.Count(content, []byte(c.Marker))
}

var (
	// @Test, @Test("display name"), @Test(.tags(.x)) followed by optional attributes and the func
	swiftTestingPattern = regexp.MustCompile(`@Test\b(\((?:[^()]|\([^()]*\))*\))?\s*(?:@\w+\s*)*func\s+(\w+)`)
	displayNamePattern  = regexp.MustCompile(`^\(\s*"((?:[^"\\]|\\.)*)"`)
	// XCTest style methods
	xcTestPattern = regexp.MustCompile(`(?m)^\s*(?:(?:override|public|private|internal|final|open)\s+)*func\s+(test\w*)\s*\(`)
)

// Parser reads test files and counts or extracts their test cases
type Parser struct {
	counter Counter
}

// NewParser creates a new Parser using counter for declaration counts
func NewParser(counter Counter) *Parser {
	return &Parser{counter: counter}
}

// CountFile reads the whole file at filePath and counts its test-case declarations
func (p *Parser) CountFile(filePath string) (int, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return 0, fmt.Errorf("error reading file %s: %w", filePath, err)
	}
	return p.counter.Count(content), nil
}

// FindTestCases finds all test cases declared in a test file
func (p *Parser) FindTestCases(filePath string) ([]domain.TestCase, error) {
	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("error reading file %s: %w", filePath, err)
	}

	names := ExtractTestCases(string(content))
	testCases := make([]domain.TestCase, 0, len(names))
	for _, name := range names {
		testCases = append(testCases, domain.TestCase{Name: name, FilePath: filePath})
	}
	return testCases, nil
}

// ExtractTestCases returns the sorted, de-duplicated test-case names declared in content.
// Swift Testing cases use their display name when one is given.
func ExtractTestCases(content string) []string {
	testCasesMap := make(map[string]bool)
	funcNames := make(map[string]bool)

	for _, match := range swiftTestingPattern.FindAllStringSubmatch(content, -1) {
		name := match[2]
		funcNames[name] = true
		if dn := displayNamePattern.FindStringSubmatch(match[1]); dn != nil && strings.TrimSpace(dn[1]) != "" {
			name = dn[1]
		}
		testCasesMap[name] = true
	}

	for _, match := range xcTestPattern.FindAllStringSubmatch(content, -1) {
		// Already listed through its @Test attribute
		if funcNames[match[1]] {
			continue
		}
		testCasesMap[match[1]] = true
	}

	testCases := make([]string, 0, len(testCasesMap))
	for testCase := range testCasesMap {
		testCases = append(testCases, testCase)
	}
	sort.Strings(testCases)

	return testCases
}
