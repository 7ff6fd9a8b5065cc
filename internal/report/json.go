package report

import (
	"encoding/json"
	"fmt"
	"io"

	"covest/internal/domain"
)

// Writer renders a coverage report in a machine-readable form
type Writer interface {
	Write(w io.Writer, r *domain.CoverageReport) error
}

// SkippedFile is a test file that could not be read, with the reason
type SkippedFile struct {
	File  domain.TestFile `json:"file"`
	Error string          `json:"error"`
}

// SkippedDir is a source directory that could not be read, with the reason
type SkippedDir struct {
	Path  string `json:"path"`
	Error string `json:"error"`
}

// Output is the JSON document written for --output json
type Output struct {
	*domain.CoverageReport
	Skipped     []SkippedFile `json:"skipped,omitempty"`
	SkippedDirs []SkippedDir  `json:"skipped_dirs,omitempty"`
}

// JSONWriter writes the report as indented JSON
type JSONWriter struct{}

// NewJSONWriter returns a Writer producing indented JSON.
func NewJSONWriter() *JSONWriter {
	return &JSONWriter{}
}

// Write encodes r to w. Skipped test files and source directories are listed with their read error.
func (jw *JSONWriter) Write(w io.Writer, r *domain.CoverageReport) error {
	output := Output{CoverageReport: r}
	for _, c := range r.SkippedTestFiles() {
		output.Skipped = append(output.Skipped, SkippedFile{File: c.File, Error: c.Err.Error()})
	}
	for _, d := range r.SkippedDirs {
		output.SkippedDirs = append(output.SkippedDirs, SkippedDir{Path: d.Path, Error: d.Err.Error()})
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// Decode reads a report previously written by JSONWriter.
func Decode(rd io.Reader) (*Output, error) {
	output := Output{CoverageReport: &domain.CoverageReport{}}
	if err := json.NewDecoder(rd).Decode(&output); err != nil {
		return nil, fmt.Errorf("parse report: %w", err)
	}
	return &output, nil
}
