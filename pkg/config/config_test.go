package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/tabular/pkg/errors"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Encoding)
	assert.True(t, cfg.Ingest.FirstRowHeader)
	assert.Equal(t, "snappy", cfg.Archive.Algorithm)
}

func TestLoadSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tabular.yaml")

	original := Default()
	original.Logging.Level = "debug"
	original.Archive.Algorithm = "zstd"
	require.NoError(t, Save(path, original))

	var loaded ToolConfig
	require.NoError(t, Load(path, &loaded))
	assert.Equal(t, *original, loaded)
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("TABULAR_TEST_LEVEL", "warn")

	path := filepath.Join(t.TempDir(), "tabular.yaml")
	content := "logging:\n  level: ${TABULAR_TEST_LEVEL}\n  encoding: json\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	var cfg ToolConfig
	require.NoError(t, Load(path, &cfg))
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Encoding)
}

func TestLoad_MissingFile(t *testing.T) {
	err := Load(filepath.Join(t.TempDir(), "absent.yaml"), &ToolConfig{})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging: [unclosed"), 0o644))

	err := Load(path, &ToolConfig{})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}
