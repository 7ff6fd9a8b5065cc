package domain

// SourceFile represents an application source file eligible for coverage
type SourceFile struct {
	Path string `json:"path"` // Path as produced by the directory walk
	Rel  string `json:"rel"`  // Path relative to the project, used for keyword and exclusion matching
	Name string `json:"name"` // Just the filename
}

// MatchPath returns the path keywords are matched against
func (f SourceFile) MatchPath() string {
	if f.Rel != "" {
		return f.Rel
	}
	return f.Path
}

// SkippedDir is a source subdirectory that could not be read
type SkippedDir struct {
	Path string `json:"path"`
	Err  error  `json:"-"`
}

// TestFile represents a test file found directly inside the test directory
type TestFile struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// TestCase represents a single test case declared within a test file
type TestCase struct {
	Name     string // Test function or display name
	FilePath string // Path to the test file containing this case
}

// TestCaseCount holds the number of test-case declarations found in a test file
type TestCaseCount struct {
	File  TestFile `json:"file"`
	Count int      `json:"count"`
	Err   error    `json:"-"` // Set when the file could not be read; Count is 0
}

// Skipped reports whether the file was left out of the totals
func (c TestCaseCount) Skipped() bool {
	return c.Err != nil
}
