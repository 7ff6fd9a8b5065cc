package config

const (
	// DefaultProjectPath is the directory the source and test paths are resolved against
	DefaultProjectPath = "."
	// DefaultSourcePath is the default application source root
	DefaultSourcePath = "CrookedSentry"
	// DefaultTestPath is the default flat test directory
	DefaultTestPath = "CrookedSentryTests"
	// DefaultSuffix is the source-code file suffix
	DefaultSuffix = ".swift"
	// DefaultMarker is the text that marks one test-case declaration
	DefaultMarker = "@Test("
	// DefaultCategory names the keyword-restricted coverage block
	DefaultCategory = "Security"
	// DefaultOutput is the default report format
	DefaultOutput = OutputText
	// EnvPrefix prefixes every environment variable read by covest
	EnvPrefix = "COVEST"
	// EnvFile is loaded from the project directory when present
	EnvFile = ".env"
)

// Report formats
const (
	OutputText = "text"
	OutputJSON = "json"
)

// DefaultExcludes are the path substrings that disqualify a source file
var DefaultExcludes = []string{
	"Preview",
	"Generated",
	".build",
}

// DefaultKeywords are the path fragments of security-related source files
var DefaultKeywords = []string{
	"Security",
	"VPN",
	"Network",
	"Auth",
}
