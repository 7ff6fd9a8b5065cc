// Package analysis runs the single coverage-estimation pass:
// enumerate, map, count, aggregate.
package analysis

import (
	"log/slog"

	"covest/internal/config"
	"covest/internal/discovery"
	"covest/internal/domain"
	"covest/internal/mapping"
	"covest/internal/metrics"
)

// Progress is told how many test files will be counted, then receives one tick per file
type Progress interface {
	Start(total int)
	Add(n int)
	Finish()
}

// Analyzer wires the scan, mapping and metrics stages together
type Analyzer struct {
	config  *config.Config
	scanner *discovery.Scanner
	filter  *discovery.Filter
	parser  *discovery.Parser
	logger  *slog.Logger
}

// NewAnalyzer creates a new Analyzer
func NewAnalyzer(
	cfg *config.Config,
	scanner *discovery.Scanner,
	filter *discovery.Filter,
	parser *discovery.Parser,
	logger *slog.Logger,
) *Analyzer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Analyzer{
		config:  cfg,
		scanner: scanner,
		filter:  filter,
		parser:  parser,
		logger:  logger,
	}
}

// Files is the output of the enumeration stage
type Files struct {
	Sources     []domain.SourceFile
	Tests       []domain.TestFile
	SkippedDirs []domain.SkippedDir
}

// Enumerate lists the eligible source files and the (filtered) test files.
// Either root missing is an error.
func (a *Analyzer) Enumerate() (*Files, error) {
	sources, skipped, err := a.scanner.ScanSources(a.config.GetSourcePath())
	if err != nil {
		return nil, err
	}
	for _, dir := range skipped {
		a.logger.Info("skipping unreadable source directory", "path", dir.Path, "error", dir.Err)
	}

	tests, err := a.scanner.ScanTests(a.config.GetTestPath())
	if err != nil {
		return nil, err
	}
	tests = a.filter.FilterByName(tests, a.config.NameFilter)

	a.logger.Debug("enumerated files",
		"source_root", a.config.GetSourcePath(),
		"sources", len(sources),
		"test_root", a.config.GetTestPath(),
		"tests", len(tests))

	return &Files{Sources: sources, Tests: tests, SkippedDirs: skipped}, nil
}

// LoadMapping returns the mapping file named by the config, or the built-in table
func (a *Analyzer) LoadMapping() (*domain.CoverageMapping, error) {
	path := a.config.GetMappingPath()
	if path == "" {
		return mapping.Default(), nil
	}

	m, err := mapping.LoadFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("loaded mapping file", "path", path, "entries", m.Len())
	return m, nil
}

// CountTests counts declarations in every test file, one file at a time.
// Unreadable files are kept in the result with their error and count 0.
func (a *Analyzer) CountTests(tests []domain.TestFile, progress Progress) []domain.TestCaseCount {
	counts := make([]domain.TestCaseCount, 0, len(tests))
	if progress != nil {
		progress.Start(len(tests))
	}
	for _, test := range tests {
		n, err := a.parser.CountFile(test.Path)
		if err != nil {
			a.logger.Info("skipping unreadable test file", "path", test.Path, "error", err)
		}
		counts = append(counts, domain.TestCaseCount{File: test, Count: n, Err: err})
		if progress != nil {
			progress.Add(1)
		}
	}
	if progress != nil {
		progress.Finish()
	}
	return counts
}

// Analyze performs the full pass and returns the report
func (a *Analyzer) Analyze(m *domain.CoverageMapping, progress Progress) (*domain.CoverageReport, error) {
	files, err := a.Enumerate()
	if err != nil {
		return nil, err
	}

	issues := mapping.Validate(m, files.Sources, files.Tests)
	for _, issue := range issues {
		a.logger.Info("mapping entry not found in tree",
			"source", issue.Entry.Source, "test", issue.Entry.Test, "kind", issue.Kind)
	}

	counts := a.CountTests(files.Tests, progress)

	confirmed := mapping.ConfirmedKeys(m, files.Sources)
	keys := m.Len()
	if a.config.ConfirmedOnly {
		keys = confirmed
	}
	overall := metrics.Overall(keys, len(files.Sources))

	report := &domain.CoverageReport{
		Project:       a.config.GetProjectName(),
		Marker:        a.config.Marker,
		SourceFiles:   files.Sources,
		TestFiles:     files.Tests,
		Mapping:       m.Entries(),
		Issues:        issues,
		TestCounts:    counts,
		SkippedDirs:   files.SkippedDirs,
		TotalTests:    metrics.TotalTests(counts),
		ExpectedTests: a.config.ExpectedTests,
		ConfirmedKeys: confirmed,
		Overall:       overall,
		Category:      metrics.Category(a.config.Category, files.Sources, a.config.Keywords, m),
		Verdict:       metrics.VerdictFor(overall.Percent),
	}

	a.logger.Debug("analysis complete",
		"overall", overall.Percent,
		"category", report.Category.Percent,
		"total_tests", report.TotalTests,
		"verdict", report.Verdict)

	return report, nil
}
