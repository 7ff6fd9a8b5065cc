package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_GetTestPath(t *testing.T) {
	tests := []struct {
		name     string
		config   *Config
		expected string
	}{
		{
			name:     "default path",
			config:   New(),
			expected: "CrookedSentryTests",
		},
		{
			name: "relative to project path",
			config: &Config{
				ProjectPath: "/project",
				TestPath:    "AppTests",
			},
			expected: "/project/AppTests",
		},
		{
			name: "absolute test path",
			config: &Config{
				ProjectPath: "/project",
				TestPath:    "/absolute/path",
			},
			expected: "/absolute/path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.config.GetTestPath())
		})
	}
}

func TestConfig_GetMappingPath(t *testing.T) {
	cfg := New()
	assert.Empty(t, cfg.GetMappingPath())

	cfg.ProjectPath = "/project"
	cfg.MappingFile = "coverage-map.yaml"
	assert.Equal(t, "/project/coverage-map.yaml", cfg.GetMappingPath())
}

func TestConfig_GetProjectName(t *testing.T) {
	cfg := New()
	assert.Equal(t, "CrookedSentry", cfg.GetProjectName())

	cfg.SourcePath = "ios/App/"
	assert.Equal(t, "App", cfg.GetProjectName())

	cfg.ProjectName = "Sentry"
	assert.Equal(t, "Sentry", cfg.GetProjectName())
}

func TestNew(t *testing.T) {
	cfg := New()

	assert.Equal(t, DefaultProjectPath, cfg.ProjectPath)
	assert.Equal(t, DefaultMarker, cfg.Marker)
	assert.Equal(t, DefaultExcludes, cfg.Excludes)
	assert.Equal(t, DefaultKeywords, cfg.Keywords)
	assert.Zero(t, cfg.ExpectedTests)

	// Defaults must not be shared with the package-level slices
	cfg.Excludes[0] = "changed"
	assert.Equal(t, "Preview", DefaultExcludes[0])
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(NewViper())
		require.NoError(t, err)

		assert.Equal(t, New(), cfg)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("COVEST_SOURCE", "App")
		t.Setenv("COVEST_EXPECTED_TESTS", "240")
		t.Setenv("COVEST_KEYWORD", "Auth Crypto")
		t.Setenv("COVEST_OUTPUT", "JSON")

		cfg, err := Load(NewViper())
		require.NoError(t, err)

		assert.Equal(t, "App", cfg.SourcePath)
		assert.Equal(t, 240, cfg.ExpectedTests)
		assert.Equal(t, []string{"Auth", "Crypto"}, cfg.Keywords)
		assert.Equal(t, OutputJSON, cfg.Output)
	})

	t.Run("comma separated lists", func(t *testing.T) {
		t.Setenv("COVEST_KEYWORD", "Security,VPN, Keychain")
		t.Setenv("COVEST_EXCLUDE", "Preview,Generated")

		cfg, err := Load(NewViper())
		require.NoError(t, err)

		assert.Equal(t, []string{"Security", "VPN", "Keychain"}, cfg.Keywords)
		assert.Equal(t, []string{"Preview", "Generated"}, cfg.Excludes)
	})

	t.Run("rejects unknown output", func(t *testing.T) {
		v := NewViper()
		v.Set(KeyOutput, "xml")

		_, err := Load(v)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})

	t.Run("rejects negative expected tests", func(t *testing.T) {
		v := NewViper()
		v.Set(KeyExpectedTests, -1)

		_, err := Load(v)
		assert.ErrorIs(t, err, ErrInvalidConfig)
	})
}

func TestLoadEnv(t *testing.T) {
	t.Run("missing file is ignored", func(t *testing.T) {
		assert.NoError(t, LoadEnv(t.TempDir()))
	})

	t.Run("loads variables", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, EnvFile), []byte("COVEST_TESTS=AppTests\n"), 0o644))
		// Registers cleanup that restores the unset state
		t.Setenv("COVEST_TESTS", "")
		require.NoError(t, os.Unsetenv("COVEST_TESTS"))

		require.NoError(t, LoadEnv(dir))

		cfg, err := Load(NewViper())
		require.NoError(t, err)
		assert.Equal(t, "AppTests", cfg.TestPath)
	})
}
