package commands

import (
	"errors"
	"fmt"

	"covest/internal/mapping"
	"covest/internal/ui"
)

// ErrMappingDrift is returned by mapping --strict when entries name missing files
var ErrMappingDrift = errors.New("mapping references missing files")

// MappingCommand handles the mapping command
type MappingCommand struct {
	runtime *Runtime
}

// NewMappingCommand creates a new MappingCommand
func NewMappingCommand(rt *Runtime) *MappingCommand {
	return &MappingCommand{runtime: rt}
}

// Execute prints the mapping table. With strict, any entry that is not ok is an error.
func (mc *MappingCommand) Execute(strict bool) error {
	rt := mc.runtime

	m, err := rt.Analyzer.LoadMapping()
	if err != nil {
		return err
	}
	files, err := rt.Analyzer.Enumerate()
	if err != nil {
		return err
	}

	rt.Formatter.PrintSkippedDirs(files.SkippedDirs)

	entries := m.Entries()
	issues := mapping.Validate(m, files.Sources, files.Tests)
	if err := rt.Formatter.PrintMappingTable(entries, issues); err != nil {
		return err
	}

	drifted := ui.CountStatus(ui.MappingStatuses(entries, issues))
	if drifted == 0 {
		return nil
	}
	if strict {
		return fmt.Errorf("%w: %d of %d entries", ErrMappingDrift, drifted, len(entries))
	}
	rt.Formatter.Warning(fmt.Sprintf("%d of %d mapping entries reference missing files", drifted, len(entries)))
	return nil
}

// Init writes the current mapping to path. An existing file is left untouched.
func (mc *MappingCommand) Init(path string) error {
	rt := mc.runtime

	m, err := rt.Analyzer.LoadMapping()
	if err != nil {
		return err
	}
	if err := mapping.WriteFile(path, m); err != nil {
		return err
	}

	rt.Logger.Info("wrote mapping file", "path", path, "entries", m.Len())
	_, err = fmt.Fprintf(rt.out, "Wrote %d mapping entries to %s\n", m.Len(), path)
	return err
}
