package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	derrors "git.home.luguber.info/inful/apidocs/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "apidocs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "bootstrap", cfg.Theme)
	assert.Equal(t, "./docs", cfg.Out)
	assert.Equal(t, "error", cfg.OnConflict)
	assert.Equal(t, LogLevelInfo, cfg.Logging.Level)
	assert.Equal(t, LogFormatText, cfg.Logging.Format)
	assert.Empty(t, cfg.Input)
	assert.False(t, cfg.VerifyLinks)
}

func TestLoad_ExpandsOnlyBracedVariables(t *testing.T) {
	t.Setenv("page", "expanded")
	t.Setenv("APIDOCS_TEST_LAYOUT", "api")
	path := writeConfig(t, `
input: "$page/${APIDOCS_TEST_LAYOUT}/*.api.json"
layout: $page
out: ${APIDOCS_TEST_UNSET}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "$page/api/*.api.json", cfg.Input)
	assert.Equal(t, "$page", cfg.Layout)
	assert.Equal(t, "./docs", cfg.Out)
}

func TestLoad_FullFile(t *testing.T) {
	t.Setenv("APIDOCS_TEST_OUT", "/srv/site")
	path := writeConfig(t, `
input: "api/**/*.api.json"
theme: Bootstrap
out: ${APIDOCS_TEST_OUT}
layout: api
on_conflict: REPLACE
fingerprint: true
verify_links: true
metrics_file: /tmp/apidocs.prom
logging:
  level: Warning
  format: JSON
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, &Config{
		Input:       "api/**/*.api.json",
		Theme:       "bootstrap",
		Out:         "/srv/site",
		Layout:      "api",
		OnConflict:  "replace",
		Fingerprint: true,
		VerifyLinks: true,
		MetricsFile: "/tmp/apidocs.prom",
		Logging:     LoggingConfig{Level: LogLevelWarn, Format: LogFormatJSON},
	}, cfg)
}

func TestLoad_EmptyFileGetsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Rejects(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		category derrors.ErrorCategory
	}{
		{"unknown key", "outdir: x\n", derrors.CategoryConfig},
		{"malformed yaml", "input: [\n", derrors.CategoryConfig},
		{"bad conflict policy", "on_conflict: merge\n", derrors.CategoryValidation},
		{"bad log level", "logging:\n  level: loud\n", derrors.CategoryValidation},
		{"bad log format", "logging:\n  format: xml\n", derrors.CategoryValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Equal(t, tt.category, derrors.GetCategory(err))
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, derrors.IsCategory(err, derrors.CategoryConfig))
}

func TestLoadOptional(t *testing.T) {
	cfg, found, err := LoadOptional(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, Default(), cfg)

	cfg, found, err = LoadOptional(writeConfig(t, "layout: page\n"))
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "page", cfg.Layout)
}

func TestParseLogLevel(t *testing.T) {
	level, err := ParseLogLevel(" DEBUG ")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level.SlogLevel())

	_, err = ParseLogLevel("trace")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "valid options: debug, error, info, warn, warning")
}

func TestLoadEnvFiles(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, ".env")
	second := filepath.Join(dir, ".env.local")
	require.NoError(t, os.WriteFile(first, []byte("APIDOCS_TEST_A=from-env\n"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("APIDOCS_TEST_A=from-local\nAPIDOCS_TEST_B=local\n"), 0o600))

	t.Setenv("APIDOCS_TEST_A", "")
	require.NoError(t, os.Unsetenv("APIDOCS_TEST_A"))
	t.Setenv("APIDOCS_TEST_B", "")
	require.NoError(t, os.Unsetenv("APIDOCS_TEST_B"))

	loaded, err := loadEnvFiles([]string{first, second, filepath.Join(dir, ".env.missing")})
	require.NoError(t, err)
	assert.Equal(t, []string{first, second}, loaded)
	assert.Equal(t, "from-env", os.Getenv("APIDOCS_TEST_A"))
	assert.Equal(t, "local", os.Getenv("APIDOCS_TEST_B"))
}

func TestLoadEnvFiles_KeepsExistingEnvironment(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("APIDOCS_TEST_C=file\n"), 0o600))
	t.Setenv("APIDOCS_TEST_C", "process")

	_, err := loadEnvFiles([]string{path})
	require.NoError(t, err)
	assert.Equal(t, "process", os.Getenv("APIDOCS_TEST_C"))
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "apidocs.yaml")
	require.NoError(t, Init(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "api/**/*.api.json", cfg.Input)
	assert.True(t, cfg.VerifyLinks)

	err = Init(path, false)
	require.Error(t, err)
	assert.False(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, Init(path, true))
}
