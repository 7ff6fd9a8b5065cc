package domain

// Verdict is the qualitative label applied to the overall coverage percentage
type Verdict string

const (
	VerdictExcellent        Verdict = "EXCELLENT"
	VerdictGood             Verdict = "GOOD"
	VerdictNeedsImprovement Verdict = "NEEDS IMPROVEMENT"
)

// Coverage is a covered/total ratio expressed as a percentage
type Coverage struct {
	Covered int     `json:"covered"`
	Total   int     `json:"total"`
	Percent float64 `json:"percent"`
}

// CategoryCoverage is coverage restricted to files matching a set of keywords
type CategoryCoverage struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Files    []string `json:"files"`
	Covered  int      `json:"covered"`
	Percent  float64  `json:"percent"`
}

// CoverageReport is the complete result of one analysis pass
type CoverageReport struct {
	Project       string           `json:"project"`
	Marker        string           `json:"marker"`
	SourceFiles   []SourceFile     `json:"source_files"`
	TestFiles     []TestFile       `json:"test_files"`
	Mapping       []MappingEntry   `json:"mapping"`
	Issues        []MappingIssue   `json:"issues,omitempty"`
	TestCounts    []TestCaseCount  `json:"test_counts"`
	SkippedDirs   []SkippedDir     `json:"-"`
	TotalTests    int              `json:"total_tests"`
	ExpectedTests int              `json:"expected_tests,omitempty"` // 0 when not provided
	ConfirmedKeys int              `json:"confirmed_keys"`
	Overall       Coverage         `json:"overall"`
	Category      CategoryCoverage `json:"category"`
	Verdict       Verdict          `json:"verdict"`
}

// SkippedTestFiles returns the test files that could not be read
func (r *CoverageReport) SkippedTestFiles() []TestCaseCount {
	var skipped []TestCaseCount
	for _, c := range r.TestCounts {
		if c.Skipped() {
			skipped = append(skipped, c)
		}
	}
	return skipped
}
