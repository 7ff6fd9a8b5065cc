package ui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"covest/internal/domain"
)

// Viewer displays a coverage report interactively
type Viewer interface {
	View(report *domain.CoverageReport) error
}

// ReportViewer browses source files and their mapped tests in a TUI
type ReportViewer struct {
	sourceRoot string
	category   string
}

// NewReportViewer creates a new ReportViewer. Paths are shown relative to sourceRoot.
func NewReportViewer(sourceRoot string) *ReportViewer {
	return &ReportViewer{sourceRoot: sourceRoot}
}

// sourceRow is one line of the viewer list
type sourceRow struct {
	File     domain.SourceFile
	Test     string
	Mapped   bool
	Category bool
	Cases    int
	HasCases bool
}

// buildRows joins the report's sources with the mapping, category and test counts
func buildRows(r *domain.CoverageReport) []sourceRow {
	m := domain.NewCoverageMapping(r.Mapping)
	counts := make(map[string]int, len(r.TestCounts))
	for _, c := range r.TestCounts {
		if !c.Skipped() {
			counts[c.File.Name] = c.Count
		}
	}
	inCategory := make(map[string]bool, len(r.Category.Files))
	for _, p := range r.Category.Files {
		inCategory[p] = true
	}

	rows := make([]sourceRow, 0, len(r.SourceFiles))
	for _, s := range r.SourceFiles {
		test, mapped := m.TestFor(s.Name)
		cases, hasCases := counts[test]
		rows = append(rows, sourceRow{
			File:     s,
			Test:     test,
			Mapped:   mapped,
			Category: inCategory[s.Path],
			Cases:    cases,
			HasCases: mapped && hasCases,
		})
	}
	return rows
}

// View displays the report until the user exits
func (rv *ReportViewer) View(report *domain.CoverageReport) error {
	rv.category = categoryLabel(report.Category.Name)
	rows := buildRows(report)
	if len(rows) == 0 {
		color.Yellow("No source files found")
		return nil
	}

	app := tview.NewApplication()

	// Left side: source files
	list := tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)

	list.SetMainTextColor(tview.Styles.PrimaryTextColor).
		SetSelectedTextColor(tcell.ColorWhite).
		SetSelectedBackgroundColor(tcell.ColorDarkCyan)

	detailsView := tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(true).
		SetWordWrap(true)

	detailsContainer := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(detailsView, 0, 1, false).
		AddItem(tview.NewBox(), 2, 0, false)

	flex := tview.NewFlex().
		SetDirection(tview.FlexColumn).
		AddItem(list, 0, 1, true).
		AddItem(detailsContainer, 0, 2, false)

	headerView := tview.NewTextView().
		SetTextAlign(tview.AlignCenter).
		SetDynamicColors(true)

	uncoveredOnly := false
	var visible []sourceRow

	updateDetails := func() {
		index := list.GetCurrentItem()
		if index >= 0 && index < len(visible) {
			detailsView.SetText(rv.formatRowDetails(visible[index]))
		} else {
			detailsView.SetText("")
		}
	}

	refresh := func() {
		visible = visible[:0]
		for _, row := range rows {
			if uncoveredOnly && row.Mapped {
				continue
			}
			visible = append(visible, row)
		}

		list.Clear()
		for _, row := range visible {
			list.AddItem(rv.formatListItem(row), "", 0, nil)
		}
		headerView.SetText(formatViewerHeader(report, uncoveredOnly))
		updateDetails()
	}

	list.SetChangedFunc(func(int, string, string, rune) {
		updateDetails()
	})

	list.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyEnter, tcell.KeyRight:
			app.SetFocus(detailsView)
			return nil
		case tcell.KeyCtrlC, tcell.KeyEsc:
			app.Stop()
			return nil
		case tcell.KeyRune:
			switch event.Rune() {
			case 'u', 'U':
				uncoveredOnly = !uncoveredOnly
				refresh()
				return nil
			case 'q', 'Q':
				app.Stop()
				return nil
			}
		}
		return event
	})

	detailsView.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Key() {
		case tcell.KeyLeft, tcell.KeyEsc:
			app.SetFocus(list)
			return nil
		case tcell.KeyCtrlC:
			app.Stop()
			return nil
		}
		return event
	})

	refresh()

	mainLayout := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(headerView, 1, 0, false).
		AddItem(tview.NewBox(), 1, 0, false).
		AddItem(flex, 0, 1, true)

	if err := app.SetRoot(mainLayout, true).SetFocus(list).Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}

func formatViewerHeader(r *domain.CoverageReport, uncoveredOnly bool) string {
	filter := "all files"
	if uncoveredOnly {
		filter = "unmapped only"
	}
	return fmt.Sprintf(" %s: %d source files, %.1f%% estimated, %s %.1f%% | [yellow]U[white] %s, → details, q to exit ",
		r.Project, len(r.SourceFiles), r.Overall.Percent, categoryLabel(r.Category.Name), r.Category.Percent, filter)
}

func (rv *ReportViewer) formatListItem(row sourceRow) string {
	name := relPath(rv.sourceRoot, row.File.Path)
	mark := "[red]✗[white]"
	if row.Mapped {
		mark = "[green]✓[white]"
	}
	if row.Category {
		return fmt.Sprintf("%s [yellow]%s[white]", mark, name)
	}
	return fmt.Sprintf("%s %s", mark, name)
}

// formatRowDetails formats one source file using tview color tags
func (rv *ReportViewer) formatRowDetails(row sourceRow) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[cyan]File:[white] %s\n", row.File.Name)
	fmt.Fprintf(&b, "[cyan]Path:[white] %s\n", filepath.ToSlash(row.File.Path))
	if row.Category {
		fmt.Fprintf(&b, "[yellow]%s file[white]\n", rv.category)
	}
	b.WriteString("\n")

	if !row.Mapped {
		b.WriteString("[red]No test file is mapped to this source.[white]\n")
		return b.String()
	}

	fmt.Fprintf(&b, "[green]Mapped test:[white] %s\n", row.Test)
	if row.HasCases {
		fmt.Fprintf(&b, "[green]Test cases:[white] %d\n", row.Cases)
	} else {
		b.WriteString("[red]Mapped test file was not found or could not be read.[white]\n")
	}
	return b.String()
}
