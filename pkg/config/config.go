// Package config provides configuration loading for the tabular CLI tool.
// Configuration files are YAML with ${ENV_VAR} substitution, so credentials
// and per-machine paths can stay out of checked-in files.
package config

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ajitpratap0/tabular/pkg/errors"
)

// ToolConfig is the configuration for the tabular CLI tool.
type ToolConfig struct {
	// Logging controls the structured logger
	Logging LoggingConfig `yaml:"logging" json:"logging"`

	// Ingest controls how raw input files are normalized into tables
	Ingest IngestConfig `yaml:"ingest" json:"ingest"`

	// Archive controls the compression used by pack/unpack
	Archive ArchiveConfig `yaml:"archive" json:"archive"`
}

// LoggingConfig controls the zap logger used by the CLI.
type LoggingConfig struct {
	// Level is the minimum level to emit (debug, info, warn, error)
	Level string `yaml:"level" json:"level"`
	// Encoding selects the output format (json or console)
	Encoding string `yaml:"encoding" json:"encoding"`
	// Development enables colored levels and stacktraces on error
	Development bool `yaml:"development" json:"development"`
}

// IngestConfig controls ingestion defaults.
type IngestConfig struct {
	// FirstRowHeader treats the first row of list-shaped input as the header
	FirstRowHeader bool `yaml:"first_row_header" json:"first_row_header"`
	// CaptureRejected collects dropped rows/cells instead of discarding them
	CaptureRejected bool `yaml:"capture_rejected" json:"capture_rejected"`
}

// ArchiveConfig controls table archiving.
type ArchiveConfig struct {
	// Algorithm selects the compression algorithm (none, gzip, snappy, lz4, zstd, s2)
	Algorithm string `yaml:"algorithm" json:"algorithm"`
}

// Default returns the default tool configuration.
func Default() *ToolConfig {
	return &ToolConfig{
		Logging: LoggingConfig{
			Level:    "info",
			Encoding: "console",
		},
		Ingest: IngestConfig{
			FirstRowHeader: true,
		},
		Archive: ArchiveConfig{
			Algorithm: "snappy",
		},
	}
}

// Load loads a configuration from a YAML file with environment variable
// substitution applied before parsing.
func Load(filePath string, config interface{}) error {
	data, err := os.ReadFile(filePath) //nolint:gosec // G304: File path is controlled by caller
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to read config file")
	}

	content := substituteEnvVars(string(data))

	if err := yaml.Unmarshal([]byte(content), config); err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to parse YAML")
	}

	return nil
}

// Save saves a configuration to a YAML file.
func Save(filePath string, config interface{}) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to marshal YAML")
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil { //nolint:gosec
		return errors.Wrap(err, errors.ErrorTypeConfig, "failed to write config file")
	}

	return nil
}

// substituteEnvVars replaces ${VAR_NAME} with environment variable values
func substituteEnvVars(content string) string {
	for {
		start := strings.Index(content, "${")
		if start == -1 {
			break
		}
		end := strings.Index(content[start:], "}")
		if end == -1 {
			break
		}
		end += start

		varName := content[start+2 : end]
		envValue := os.Getenv(varName)
		content = content[:start] + envValue + content[end+1:]
	}
	return content
}
