package ui

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"covest/internal/domain"
)

// Mapping status labels
const (
	statusOK        = "ok"
	statusNoSource  = "missing source"
	statusNoTest    = "missing test"
	statusNoneFound = "missing source+test"
)

// PrintMappingTable renders the mapping with one status per entry
func (f *Formatter) PrintMappingTable(entries []domain.MappingEntry, issues []domain.MappingIssue) error {
	table := tablewriter.NewWriter(f.out)
	table.Header([]string{"#", "Source", "Test", "Status"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignLeft
	})

	statuses := MappingStatuses(entries, issues)

	var data [][]string
	for i, e := range entries {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			e.Source,
			e.Test,
			statuses[i],
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// MappingStatuses returns the status label of every entry, in entry order
func MappingStatuses(entries []domain.MappingEntry, issues []domain.MappingIssue) []string {
	kinds := make(map[string][]domain.IssueKind, len(issues))
	for _, issue := range issues {
		kinds[issue.Entry.Source] = append(kinds[issue.Entry.Source], issue.Kind)
	}

	statuses := make([]string, len(entries))
	for i, e := range entries {
		var missingSource, missingTest bool
		for _, k := range kinds[e.Source] {
			switch k {
			case domain.IssueMissingSource:
				missingSource = true
			case domain.IssueMissingTest:
				missingTest = true
			}
		}

		switch {
		case missingSource && missingTest:
			statuses[i] = statusNoneFound
		case missingSource:
			statuses[i] = statusNoSource
		case missingTest:
			statuses[i] = statusNoTest
		default:
			statuses[i] = statusOK
		}
	}
	return statuses
}

// CountStatus returns how many entries are not ok
func CountStatus(statuses []string) int {
	n := 0
	for _, s := range statuses {
		if s != statusOK {
			n++
		}
	}
	return n
}
