// Package load turns input files into tables for the CLI tool. CSV files go
// through list-rows ingestion, JSON arrays of objects through map-rows
// ingestion.
package load

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/ajitpratap0/tabular/pkg/errors"
	"github.com/ajitpratap0/tabular/pkg/json"
	"github.com/ajitpratap0/tabular/pkg/logger"
	"github.com/ajitpratap0/tabular/pkg/table"
)

// Options controls how a file is ingested.
type Options struct {
	// FirstRowHeader applies to CSV input: treat the first record as the
	// header instead of synthesizing column names.
	FirstRowHeader bool
	// Rejected, when non-nil, collects dropped rows and truncated cells.
	Rejected *table.RejectedSink
}

// File loads a table from path, picking the ingestion strategy from the file
// extension (.csv or .json).
func File(path string, opts Options) (*table.Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return CSV(path, opts)
	case ".json":
		return JSON(path, opts)
	default:
		return nil, errors.New(errors.ErrorTypeConfig, "unsupported input format").
			WithDetail("path", path)
	}
}

// CSV loads a CSV file through list-rows ingestion.
func CSV(path string, opts Options) (*table.Table, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from the CLI invocation
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to open input file")
	}
	defer f.Close() // Ignore close error on read-only file

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // ragged rows are the ingestion layer's job
	records, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData, "failed to parse CSV")
	}

	rows := make([]interface{}, len(records))
	for i, record := range records {
		cells := make([]interface{}, len(record))
		for j, field := range record {
			cells[j] = field
		}
		rows[i] = cells
	}

	tableOpts := []table.Option{}
	if opts.FirstRowHeader {
		tableOpts = append(tableOpts, table.WithFirstRowHeader())
	}
	if opts.Rejected != nil {
		tableOpts = append(tableOpts, table.WithRejected(opts.Rejected))
	}

	t, err := table.FromRows(rows, table.ListRows, tableOpts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded CSV input",
		zap.String("path", path),
		zap.Int("rows", t.Rows()),
		zap.Int("columns", t.Columns()))
	return t, nil
}

// JSON loads a JSON array of objects through map-rows ingestion.
func JSON(path string, opts Options) (*table.Table, error) {
	f, err := os.Open(path) //nolint:gosec // G304: path comes from the CLI invocation
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeConfig, "failed to open input file")
	}
	defer f.Close() // Ignore close error on read-only file

	rows, err := json.DecodeRows(f)
	if err != nil {
		return nil, err
	}

	tableOpts := []table.Option{}
	if opts.Rejected != nil {
		tableOpts = append(tableOpts, table.WithRejected(opts.Rejected))
	}

	t, err := table.FromRows(rows, table.MapRows, tableOpts...)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded JSON input",
		zap.String("path", path),
		zap.Int("rows", t.Rows()),
		zap.Int("columns", t.Columns()))
	return t, nil
}
