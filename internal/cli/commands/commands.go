package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"covest/internal/cli"
)

// Commands holds all CLI commands
type Commands struct {
	Analyze *AnalyzeCommand
	List    *ListCommand
	Mapping *MappingCommand
	View    *ViewCommand

	viper   *viper.Viper
	runtime *Runtime
}

// NewCommands creates all commands sharing one Runtime.
// Nil writers default to stdout and stderr.
func NewCommands(v *viper.Viper, out, errOut io.Writer) *Commands {
	if out == nil {
		out = os.Stdout
	}
	if errOut == nil {
		errOut = os.Stderr
	}
	rt := NewRuntime(v, out, errOut)

	return &Commands{
		Analyze: NewAnalyzeCommand(rt, out),
		List:    NewListCommand(rt),
		Mapping: NewMappingCommand(rt),
		View:    NewViewCommand(rt, nil),
		viper:   v,
		runtime: rt,
	}
}

// Register registers all commands with cobra. The root command itself runs the analysis.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags) error {
	if err := cli.RegisterConfigFlags(rootCmd.PersistentFlags(), c.viper); err != nil {
		return err
	}

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true
	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return c.runtime.Init()
	}
	rootCmd.RunE = c.Analyze.Execute
	rootCmd.Args = cobra.NoArgs

	// Analyze command
	analyzeCmd := &cobra.Command{
		Use:   "analyze",
		Short: "Print the coverage estimate",
		Long:  "Enumerate sources and tests, apply the mapping, count test cases and print the coverage report",
		Args:  cobra.NoArgs,
		RunE:  c.Analyze.Execute,
	}
	rootCmd.AddCommand(analyzeCmd)

	// List command
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List discovered source and test files",
		Long:  "Enumerate the source and test files the analysis would consider, without computing coverage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.List.Execute(flags.TestCases)
		},
	}
	listCmd.Flags().BoolVarP(&flags.TestCases, "test-cases", "c", false, "List the test cases found in each test file")
	rootCmd.AddCommand(listCmd)

	// Mapping command
	mappingCmd := &cobra.Command{
		Use:   "mapping",
		Short: "Show the source-to-test mapping and its status",
		Long:  "Print the mapping table with the status of each entry against the files on disk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.InitMapping != "" {
				return c.Mapping.Init(flags.InitMapping)
			}
			return c.Mapping.Execute(flags.Strict)
		},
	}
	mappingCmd.Flags().BoolVar(&flags.Strict, "strict", false, "Fail when a mapped source or test file does not exist")
	mappingCmd.Flags().StringVar(&flags.InitMapping, "init", "", "Write the current mapping to a new YAML file and exit")
	rootCmd.AddCommand(mappingCmd)

	// View command
	viewCmd := &cobra.Command{
		Use:   "view",
		Short: "Browse the coverage report interactively",
		Long:  "Open an interactive viewer over source files, their mapped tests and test counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.View.Execute()
		},
	}
	rootCmd.AddCommand(viewCmd)

	return nil
}

// Close releases resources held by the shared runtime
func (c *Commands) Close() error {
	return c.runtime.Close()
}
