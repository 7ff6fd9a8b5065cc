package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"covest/internal/domain"
)

func TestJSONWriter_Write(t *testing.T) {
	r := &domain.CoverageReport{
		Project:     "CrookedSentry",
		Marker:      "@Test(",
		SourceFiles: []domain.SourceFile{{Path: "App/VPNManager.swift", Name: "VPNManager.swift"}},
		TestFiles: []domain.TestFile{
			{Path: "Tests/VPNTests.swift", Name: "VPNTests.swift"},
			{Path: "Tests/LockedTests.swift", Name: "LockedTests.swift"},
		},
		Mapping: []domain.MappingEntry{{Source: "VPNManager.swift", Test: "VPNTests.swift"}},
		TestCounts: []domain.TestCaseCount{
			{File: domain.TestFile{Path: "Tests/VPNTests.swift", Name: "VPNTests.swift"}, Count: 3},
			{File: domain.TestFile{Path: "Tests/LockedTests.swift", Name: "LockedTests.swift"}, Err: errors.New("permission denied")},
		},
		SkippedDirs: []domain.SkippedDir{
			{Path: "App/Locked", Err: errors.New("permission denied")},
		},
		TotalTests:    3,
		ConfirmedKeys: 1,
		Overall:       domain.Coverage{Covered: 1, Total: 1, Percent: 100},
		Category: domain.CategoryCoverage{
			Name:     "Security",
			Keywords: []string{"VPN"},
			Files:    []string{"App/VPNManager.swift"},
			Covered:  1,
			Percent:  100,
		},
		Verdict: domain.VerdictExcellent,
	}

	var buf bytes.Buffer
	require.NoError(t, NewJSONWriter().Write(&buf, r))

	assert.Contains(t, buf.String(), `"project": "CrookedSentry"`)
	assert.Contains(t, buf.String(), `"verdict": "EXCELLENT"`)
	assert.NotContains(t, buf.String(), "expected_tests")

	decoded, err := Decode(&buf)
	require.NoError(t, err)

	assert.Equal(t, r.Project, decoded.Project)
	assert.Equal(t, r.Mapping, decoded.Mapping)
	assert.Equal(t, r.Overall, decoded.Overall)
	assert.Equal(t, r.Category, decoded.Category)
	assert.Equal(t, 3, decoded.TotalTests)
	assert.Equal(t, []SkippedFile{
		{File: domain.TestFile{Path: "Tests/LockedTests.swift", Name: "LockedTests.swift"}, Error: "permission denied"},
	}, decoded.Skipped)
	assert.Equal(t, []SkippedDir{{Path: "App/Locked", Error: "permission denied"}}, decoded.SkippedDirs)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode(bytes.NewBufferString("{not json"))
	assert.ErrorContains(t, err, "parse report")
}
