package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/viper"

	"covest/internal/analysis"
	"covest/internal/config"
	"covest/internal/discovery"
	"covest/internal/logging"
	"covest/internal/ui"
)

// Runtime holds the collaborators built once flags and environment are resolved.
// Commands share one Runtime; Init must run before any Execute.
type Runtime struct {
	viper  *viper.Viper
	out    io.Writer
	errOut io.Writer
	closer io.Closer

	Config    *config.Config
	Logger    *slog.Logger
	Parser    *discovery.Parser
	Analyzer  *analysis.Analyzer
	Formatter *ui.Formatter
}

// NewRuntime creates a Runtime reading settings from v and printing to out and errOut
func NewRuntime(v *viper.Viper, out, errOut io.Writer) *Runtime {
	return &Runtime{viper: v, out: out, errOut: errOut}
}

// Init loads .env and the resolved configuration, then wires the pipeline
func (rt *Runtime) Init() error {
	if err := config.LoadEnv(rt.viper.GetString(config.KeyDir)); err != nil {
		return err
	}

	cfg, err := config.Load(rt.viper)
	if err != nil {
		return err
	}
	if err := discovery.ValidatePattern(cfg.NameFilter); err != nil {
		return fmt.Errorf("invalid filter %q: %w", cfg.NameFilter, err)
	}

	logger, closer := logging.Configure(logging.Options{
		Writer:  rt.errOut,
		LogFile: cfg.LogFile,
		Verbose: cfg.Verbose,
	})

	scanner := discovery.NewScanner(cfg.Suffix, cfg.Excludes, cfg.ProjectPath)
	filter := discovery.NewFilter()
	parser := discovery.NewParser(discovery.NewMarkerCounter(cfg.Marker))

	rt.Config = cfg
	rt.Logger = logger
	rt.closer = closer
	rt.Parser = parser
	rt.Analyzer = analysis.NewAnalyzer(cfg, scanner, filter, parser, logger)
	rt.Formatter = ui.NewFormatter(rt.out, rt.errOut, parser)

	logger.Debug("configuration loaded",
		"source", cfg.GetSourcePath(),
		"tests", cfg.GetTestPath(),
		"mapping", cfg.GetMappingPath(),
		"output", cfg.Output)
	return nil
}

// Progress returns the progress reporter for the counting stage, or nil when disabled
func (rt *Runtime) Progress() analysis.Progress {
	if !ui.ProgressEnabled(rt.Config.Progress) {
		return nil
	}
	return ui.NewProgressBar(rt.errOut)
}

// Close releases the log file, if one was opened
func (rt *Runtime) Close() error {
	if rt.closer == nil {
		return nil
	}
	return rt.closer.Close()
}
