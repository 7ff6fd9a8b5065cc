// Package metrics turns enumeration and mapping results into coverage percentages.
package metrics

import (
	"strings"

	"covest/internal/domain"
)

const (
	excellentThreshold = 80.0
	goodThreshold      = 60.0
)

// Percent returns covered/total*100, or 0 when total is 0
func Percent(covered, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(covered) / float64(total) * 100
}

// Overall computes coverage as mapped keys over enumerated source files
func Overall(keys, totalSources int) domain.Coverage {
	return domain.Coverage{
		Covered: keys,
		Total:   totalSources,
		Percent: Percent(keys, totalSources),
	}
}

// Category restricts coverage to sources whose project-relative path contains
// any keyword (case-sensitive). A source counts as covered when its base name is a mapping key.
func Category(name string, sources []domain.SourceFile, keywords []string, m *domain.CoverageMapping) domain.CategoryCoverage {
	cat := domain.CategoryCoverage{
		Name:     name,
		Keywords: keywords,
		Files:    []string{},
	}

	for _, s := range sources {
		if !matchesAny(s.MatchPath(), keywords) {
			continue
		}
		cat.Files = append(cat.Files, s.Path)
		if m.Contains(s.Name) {
			cat.Covered++
		}
	}

	cat.Percent = Percent(cat.Covered, len(cat.Files))
	return cat
}

// VerdictFor maps an overall percentage onto the three-tier label
func VerdictFor(percent float64) domain.Verdict {
	switch {
	case percent >= excellentThreshold:
		return domain.VerdictExcellent
	case percent >= goodThreshold:
		return domain.VerdictGood
	default:
		return domain.VerdictNeedsImprovement
	}
}

// TotalTests sums the counts of every test file that was read successfully
func TotalTests(counts []domain.TestCaseCount) int {
	total := 0
	for _, c := range counts {
		if c.Skipped() {
			continue
		}
		total += c.Count
	}
	return total
}

func matchesAny(path string, keywords []string) bool {
	for _, k := range keywords {
		if k != "" && strings.Contains(path, k) {
			return true
		}
	}
	return false
}
