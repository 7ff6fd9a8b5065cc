package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Viper keys. Flags use the same names; environment variables are
// COVEST_<KEY> with dashes turned into underscores.
const (
	KeyDir           = "dir"
	KeySource        = "source"
	KeyTests         = "tests"
	KeySuffix        = "suffix"
	KeyExclude       = "exclude"
	KeyKeyword       = "keyword"
	KeyCategory      = "category"
	KeyMarker        = "marker"
	KeyMapping       = "mapping"
	KeyExpectedTests = "expected-tests"
	KeyProject       = "project"
	KeyFilter        = "filter"
	KeyConfirmedOnly = "confirmed-only"
	KeyOutput        = "output"
	KeyProgress      = "progress"
	KeyLogFile       = "log-file"
	KeyVerbose       = "verbose"
)

// ErrInvalidConfig is returned when a setting has an unusable value
var ErrInvalidConfig = errors.New("invalid configuration")

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath string
	SourcePath  string
	TestPath    string
	ProjectName string

	// Scan settings
	Suffix     string
	Excludes   []string
	NameFilter string

	// Coverage settings
	MappingFile   string
	Marker        string
	Category      string
	Keywords      []string
	ExpectedTests int
	ConfirmedOnly bool

	// Output settings
	Output   string
	Progress bool
	LogFile  string
	Verbose  bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath: DefaultProjectPath,
		SourcePath:  DefaultSourcePath,
		TestPath:    DefaultTestPath,
		Suffix:      DefaultSuffix,
		Marker:      DefaultMarker,
		Category:    DefaultCategory,
		Output:      DefaultOutput,
	}
	cfg.Excludes = append([]string(nil), DefaultExcludes...)
	cfg.Keywords = append([]string(nil), DefaultKeywords...)
	return cfg
}

// NewViper returns a viper instance reading COVEST_* environment variables
// with the defaults registered. No config file is read.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	def := New()
	v.SetDefault(KeyDir, def.ProjectPath)
	v.SetDefault(KeySource, def.SourcePath)
	v.SetDefault(KeyTests, def.TestPath)
	v.SetDefault(KeySuffix, def.Suffix)
	v.SetDefault(KeyExclude, def.Excludes)
	v.SetDefault(KeyKeyword, def.Keywords)
	v.SetDefault(KeyCategory, def.Category)
	v.SetDefault(KeyMarker, def.Marker)
	v.SetDefault(KeyMapping, "")
	v.SetDefault(KeyExpectedTests, 0)
	v.SetDefault(KeyProject, "")
	v.SetDefault(KeyFilter, "")
	v.SetDefault(KeyConfirmedOnly, false)
	v.SetDefault(KeyOutput, def.Output)
	v.SetDefault(KeyProgress, false)
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyVerbose, false)
	return v
}

// LoadEnv loads the .env file in dir into the process environment.
// Variables already set take precedence; a missing file is not an error.
func LoadEnv(dir string) error {
	envPath := filepath.Join(dir, EnvFile)
	if err := godotenv.Load(envPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", envPath, err)
	}
	return nil
}

// Load builds a Config from the resolved viper values (defaults, env, flags)
func Load(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		ProjectPath:   v.GetString(KeyDir),
		SourcePath:    v.GetString(KeySource),
		TestPath:      v.GetString(KeyTests),
		ProjectName:   v.GetString(KeyProject),
		Suffix:        v.GetString(KeySuffix),
		Excludes:      stringList(v, KeyExclude),
		NameFilter:    v.GetString(KeyFilter),
		MappingFile:   v.GetString(KeyMapping),
		Marker:        v.GetString(KeyMarker),
		Category:      v.GetString(KeyCategory),
		Keywords:      stringList(v, KeyKeyword),
		ExpectedTests: v.GetInt(KeyExpectedTests),
		ConfirmedOnly: v.GetBool(KeyConfirmedOnly),
		Output:        strings.ToLower(strings.TrimSpace(v.GetString(KeyOutput))),
		Progress:      v.GetBool(KeyProgress),
		LogFile:       v.GetString(KeyLogFile),
		Verbose:       v.GetBool(KeyVerbose),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// stringList reads a list setting. Flags arrive already split; environment
// values such as COVEST_KEYWORD="Security,VPN" are split on commas as well as spaces.
func stringList(v *viper.Viper, key string) []string {
	var out []string
	for _, item := range v.GetStringSlice(key) {
		for _, part := range strings.Split(item, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

// Validate checks that settings are usable
func (c *Config) Validate() error {
	switch {
	case c.SourcePath == "":
		return fmt.Errorf("%w: source path is empty", ErrInvalidConfig)
	case c.TestPath == "":
		return fmt.Errorf("%w: test path is empty", ErrInvalidConfig)
	case c.Suffix == "":
		return fmt.Errorf("%w: file suffix is empty", ErrInvalidConfig)
	case c.Marker == "":
		return fmt.Errorf("%w: test marker is empty", ErrInvalidConfig)
	case c.ExpectedTests < 0:
		return fmt.Errorf("%w: expected tests must not be negative", ErrInvalidConfig)
	case c.Output != OutputText && c.Output != OutputJSON:
		return fmt.Errorf("%w: unknown output format %q", ErrInvalidConfig, c.Output)
	}
	return nil
}

// GetSourcePath returns the source root, relative to ProjectPath unless absolute
func (c *Config) GetSourcePath() string {
	return c.resolve(c.SourcePath)
}

// GetTestPath returns the test root, relative to ProjectPath unless absolute
func (c *Config) GetTestPath() string {
	return c.resolve(c.TestPath)
}

// GetMappingPath returns the mapping file path, or "" when the built-in table is used
func (c *Config) GetMappingPath() string {
	if c.MappingFile == "" {
		return ""
	}
	return c.resolve(c.MappingFile)
}

// GetProjectName returns the report title, defaulting to the source directory name
func (c *Config) GetProjectName() string {
	if c.ProjectName != "" {
		return c.ProjectName
	}
	return filepath.Base(filepath.Clean(c.SourcePath))
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.ProjectPath, path)
}
