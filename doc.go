// Package tabular provides immutable, in-memory, two-dimensional tables with
// named columns, plus a companion indexing and search facility. It targets
// callers who need spreadsheet-like row/column access over irregular input
// (ragged arrays of rows, arrays of key-value maps, or one long flat
// sequence) without the cost of a full database.
//
// # Architecture
//
// The module is organized around two core packages and a set of supporting
// ones:
//
// 1. pkg/table: the immutable Table entity. Three ingestion strategies
// (flat sequence with header, flat sequence with column count, rowset of
// maps or lists) normalize arbitrary input into one canonical flat
// row-major buffer. Accessors expose cells, rows, columns, hash rows, and
// shaped views. Take extracts arbitrary row lists into new tables using
// run-compaction over the flat buffer.
//
// 2. pkg/query: per-column indexes mapping distinct values to ascending row
// numbers, and predicate search (Grep) that runs against an index when one
// exists and falls back to a full scan otherwise, with identical results
// either way.
//
// Supporting packages follow: pkg/errors (structured error taxonomy),
// pkg/logger (zap), pkg/pool (scratch pooling), pkg/strings (pooled
// builders), pkg/json (goccy-backed codec), pkg/compression and table
// archiving, pkg/config (YAML tool config), and cmd/tabular (CLI).
//
// # Quick Start
//
// Build a table from a flat sequence and search it:
//
//	import (
//	    "github.com/ajitpratap0/tabular/pkg/query"
//	    "github.com/ajitpratap0/tabular/pkg/table"
//	)
//
//	t, err := table.New(
//	    []string{"A", "B", "C"},
//	    []interface{}{1, 2, 3, 4, 5, 6, 7},
//	)
//	// 3 rows; the last row is padded with table.NoValue.
//
//	q := query.New(t)
//	result, err := q.Grep(
//	    query.And(query.Contains("US"), query.Contains("RU")),
//	    "A",
//	    query.RowNumbers,
//	)
//
// # Concurrency
//
// A Table is immutable after construction and safe for concurrent reads; it
// may be shared by several Query instances at once. A Query's own index set
// is mutable state and needs external synchronization when shared across
// goroutines.
package tabular
