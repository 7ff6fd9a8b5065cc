package ui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"covest/internal/discovery"
	"covest/internal/domain"
)

const ruleWidth = 50

// Formatter formats and displays output
type Formatter struct {
	out    io.Writer
	errOut io.Writer
	parser *discovery.Parser
}

// NewFormatter creates a new Formatter writing the report to out and warnings to errOut
func NewFormatter(out, errOut io.Writer, parser *discovery.Parser) *Formatter {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	return &Formatter{
		out:    out,
		errOut: errOut,
		parser: parser,
	}
}

// PrintReport writes the coverage report sections in order and the warnings
// collected during the pass.
func (f *Formatter) PrintReport(r *domain.CoverageReport) error {
	w := &errWriter{w: f.out}
	cyan := color.New(color.FgCyan)

	w.printf("%s\n", cyan.Sprintf("📊 %s Coverage Analysis", r.Project))
	w.printf("%s\n", strings.Repeat("=", ruleWidth))

	w.printf("\n📁 Source Files: %d\n", len(r.SourceFiles))
	w.printf("🧪 Test Files: %d\n", len(r.TestFiles))

	// Mapping entries and per-file counts share the section
	w.printf("\n🎯 Direct Coverage Mapping:\n")
	for _, e := range r.Mapping {
		w.printf("  ✅ %s → %s\n", e.Source, e.Test)
	}
	for _, c := range r.TestCounts {
		if c.Skipped() {
			continue
		}
		w.printf("  📝 %s: %d tests\n", c.File.Name, c.Count)
	}

	w.printf("\n🔢 Total Test Cases: %d\n", r.TotalTests)
	if r.ExpectedTests > 0 {
		w.printf("🎯 Verified Total (via grep): %d %s annotations\n", r.ExpectedTests, markerLabel(r.Marker))
	}

	w.printf("\n📈 Coverage Estimate:\n")
	w.printf("  Critical Files Covered: %d/%d\n", r.Overall.Covered, r.Overall.Total)
	w.printf("  Estimated Coverage: %.1f%%\n", r.Overall.Percent)

	name := categoryLabel(r.Category.Name)
	w.printf("\n🔒 %s Coverage:\n", name)
	w.printf("  %s Files: %d\n", name, len(r.Category.Files))
	w.printf("  %s Files Covered: %d\n", name, r.Category.Covered)
	w.printf("  %s Coverage: %.1f%%\n", name, r.Category.Percent)

	w.printf("\n✅ Coverage Assessment: %s\n", verdictColor(r.Verdict).Sprint(r.Verdict))

	if w.err != nil {
		return w.err
	}

	f.PrintWarnings(r)
	return nil
}

// PrintWarnings writes one warning line per skipped directory or file, mapping issue and count mismatch
func (f *Formatter) PrintWarnings(r *domain.CoverageReport) {
	f.PrintSkippedDirs(r.SkippedDirs)
	for _, c := range r.SkippedTestFiles() {
		f.Warning(fmt.Sprintf("Skipped %s: %v", c.File.Name, c.Err))
	}

	for _, issue := range r.Issues {
		switch issue.Kind {
		case domain.IssueMissingSource:
			f.Warning(fmt.Sprintf("Mapped source %s was not found among the source files", issue.Entry.Source))
		case domain.IssueMissingTest:
			f.Warning(fmt.Sprintf("Mapped test %s (for %s) was not found among the test files", issue.Entry.Test, issue.Entry.Source))
		}
	}

	if r.ExpectedTests > 0 && r.ExpectedTests != r.TotalTests {
		f.Warning(fmt.Sprintf("Counted %d test cases, expected %d", r.TotalTests, r.ExpectedTests))
	}
}

// PrintSkippedDirs warns about source directories left out of the scan
func (f *Formatter) PrintSkippedDirs(dirs []domain.SkippedDir) {
	for _, d := range dirs {
		f.Warning(fmt.Sprintf("Skipped directory %s: %v", d.Path, d.Err))
	}
}

// Warning writes a warning line to the error stream
func (f *Formatter) Warning(msg string) {
	fmt.Fprintf(f.errOut, "%s\n", color.YellowString("⚠️  %s", msg))
}

// PrintFileList prints the enumerated source and test files, optionally with test cases
func (f *Formatter) PrintFileList(sources []domain.SourceFile, tests []domain.TestFile, showTestCases bool) error {
	w := &errWriter{w: f.out}

	w.printf("%s\n", color.GreenString("Found %d source file(s):", len(sources)))
	for i, s := range sources {
		w.printf("%s\n", color.CyanString("%s %s", branch(i, len(sources)), s.Path))
	}

	w.printf("\n%s\n", color.GreenString("Found %d test file(s):", len(tests)))
	for i, test := range tests {
		isLastFile := i == len(tests)-1
		w.printf("%s\n", color.CyanString("%s %s", branch(i, len(tests)), test.Path))

		if !showTestCases {
			continue
		}

		testCases, err := f.parser.FindTestCases(test.Path)
		if err != nil {
			f.Warning(fmt.Sprintf("Error reading test file %s: %v", test.Path, err))
			continue
		}

		indent := "│   "
		if isLastFile {
			indent = "    "
		}

		if len(testCases) == 0 {
			w.printf("%s└── %s\n", indent, color.RedString("(no test cases found)"))
			continue
		}
		for j, testCase := range testCases {
			w.printf("%s%s %s\n", indent, branch(j, len(testCases)), color.YellowString(testCase.Name))
		}
	}

	return w.err
}

func branch(i, n int) string {
	if i == n-1 {
		return "└──"
	}
	return "├──"
}

func markerLabel(marker string) string {
	return strings.TrimSuffix(marker, "(")
}

func categoryLabel(name string) string {
	if name == "" {
		return "Category"
	}
	return name
}

func verdictColor(v domain.Verdict) *color.Color {
	switch v {
	case domain.VerdictExcellent:
		return color.New(color.FgGreen, color.Bold)
	case domain.VerdictGood:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgRed, color.Bold)
	}
}

// errWriter remembers the first write error so sections can be printed without checks
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...any) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}

// relPath returns path relative to base when possible
func relPath(base, path string) string {
	if rel, err := filepath.Rel(base, path); err == nil && !strings.HasPrefix(rel, "..") {
		return rel
	}
	return path
}
