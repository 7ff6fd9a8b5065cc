package commands

import (
	"io"

	"github.com/spf13/cobra"

	"covest/internal/config"
	"covest/internal/report"
)

// AnalyzeCommand handles the analyze command
type AnalyzeCommand struct {
	runtime *Runtime
	out     io.Writer
	writer  report.Writer
}

// NewAnalyzeCommand creates a new AnalyzeCommand
func NewAnalyzeCommand(rt *Runtime, out io.Writer) *AnalyzeCommand {
	return &AnalyzeCommand{
		runtime: rt,
		out:     out,
		writer:  report.NewJSONWriter(),
	}
}

// Execute runs the command
func (ac *AnalyzeCommand) Execute(cmd *cobra.Command, args []string) error {
	rt := ac.runtime

	m, err := rt.Analyzer.LoadMapping()
	if err != nil {
		return err
	}

	r, err := rt.Analyzer.Analyze(m, rt.Progress())
	if err != nil {
		return err
	}

	if rt.Config.Output == config.OutputJSON {
		if err := ac.writer.Write(ac.out, r); err != nil {
			return err
		}
		rt.Formatter.PrintWarnings(r)
		return nil
	}

	return rt.Formatter.PrintReport(r)
}
