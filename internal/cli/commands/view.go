package commands

import (
	"covest/internal/ui"
)

// ViewCommand handles the view command
type ViewCommand struct {
	runtime *Runtime
	viewer  ui.Viewer
}

// NewViewCommand creates a new ViewCommand. A nil viewer opens the terminal UI.
func NewViewCommand(rt *Runtime, viewer ui.Viewer) *ViewCommand {
	return &ViewCommand{runtime: rt, viewer: viewer}
}

// Execute computes the report and hands it to the viewer
func (vc *ViewCommand) Execute() error {
	rt := vc.runtime

	m, err := rt.Analyzer.LoadMapping()
	if err != nil {
		return err
	}
	r, err := rt.Analyzer.Analyze(m, rt.Progress())
	if err != nil {
		return err
	}
	rt.Formatter.PrintWarnings(r)

	viewer := vc.viewer
	if viewer == nil {
		viewer = ui.NewReportViewer(rt.Config.GetSourcePath())
	}
	return viewer.View(r)
}
