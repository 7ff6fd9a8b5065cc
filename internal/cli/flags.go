package cli

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"covest/internal/config"
)

// Flags holds command-line flags that only affect a single command.
// Shared settings live in viper, see RegisterConfigFlags.
type Flags struct {
	TestCases   bool
	Strict      bool
	InitMapping string
}

// RegisterConfigFlags adds the configuration flags to fs and binds each one to
// the viper key of the same name, so flags override COVEST_* variables.
func RegisterConfigFlags(fs *pflag.FlagSet, v *viper.Viper) error {
	def := config.New()

	fs.String(config.KeyDir, def.ProjectPath, "Project directory that relative paths and .env are resolved against")
	fs.StringP(config.KeySource, "s", def.SourcePath, "Application source root (walked recursively)")
	fs.StringP(config.KeyTests, "t", def.TestPath, "Test directory (flat, not recursive)")
	fs.String(config.KeySuffix, def.Suffix, "Source and test file suffix")
	fs.StringSlice(config.KeyExclude, def.Excludes, "Path substrings that disqualify a source file (repeatable)")
	fs.StringSliceP(config.KeyKeyword, "k", def.Keywords, "Path keywords of category files (repeatable)")
	fs.String(config.KeyCategory, def.Category, "Name of the keyword-restricted coverage block")
	fs.String(config.KeyMarker, def.Marker, "Text that marks one test-case declaration")
	fs.StringP(config.KeyMapping, "m", "", "YAML file with the source-to-test mapping (default: built-in table)")
	fs.Int(config.KeyExpectedTests, 0, "Externally verified test count, printed next to the computed total")
	fs.String(config.KeyProject, "", "Project name in the report title (default: source directory name)")
	fs.StringP(config.KeyFilter, "f", "", "Only consider test files whose name matches (supports globs, e.g. '*Security*')")
	fs.Bool(config.KeyConfirmedOnly, false, "Count only mapping entries whose source file exists")
	fs.StringP(config.KeyOutput, "o", def.Output, "Report format: text or json")
	fs.Bool(config.KeyProgress, false, "Show a progress bar while counting tests")
	fs.String(config.KeyLogFile, "", "Write logs to a rotating file")
	fs.BoolP(config.KeyVerbose, "v", false, "Enable debug logging")

	for _, key := range []string{
		config.KeyDir,
		config.KeySource,
		config.KeyTests,
		config.KeySuffix,
		config.KeyExclude,
		config.KeyKeyword,
		config.KeyCategory,
		config.KeyMarker,
		config.KeyMapping,
		config.KeyExpectedTests,
		config.KeyProject,
		config.KeyFilter,
		config.KeyConfirmedOnly,
		config.KeyOutput,
		config.KeyProgress,
		config.KeyLogFile,
		config.KeyVerbose,
	} {
		if err := v.BindPFlag(key, fs.Lookup(key)); err != nil {
			return fmt.Errorf("bind flag %s: %w", key, err)
		}
	}
	return nil
}
