package commands

// ListCommand handles the list command
type ListCommand struct {
	runtime *Runtime
}

// NewListCommand creates a new ListCommand
func NewListCommand(rt *Runtime) *ListCommand {
	return &ListCommand{runtime: rt}
}

// Execute runs the command
func (lc *ListCommand) Execute(showTestCases bool) error {
	files, err := lc.runtime.Analyzer.Enumerate()
	if err != nil {
		return err
	}

	lc.runtime.Formatter.PrintSkippedDirs(files.SkippedDirs)

	if len(files.Sources) == 0 && len(files.Tests) == 0 {
		lc.runtime.Formatter.Warning("No source or test files found")
		return nil
	}

	return lc.runtime.Formatter.PrintFileList(files.Sources, files.Tests, showTestCases)
}
