package query

import (
	"sort"

	"go.uber.org/zap"

	"github.com/ajitpratap0/tabular/pkg/errors"
	"github.com/ajitpratap0/tabular/pkg/logger"
	"github.com/ajitpratap0/tabular/pkg/pool"
	"github.com/ajitpratap0/tabular/pkg/table"
)

// Query owns a shared reference to one table and a set of named indexes.
// Indexes are additive: AddIndex replaces any prior index for the same
// column, and nothing removes one.
type Query struct {
	table   *table.Table
	indexes map[string]*Index
}

// New creates a query session over an existing table.
func New(t *table.Table) *Query {
	return &Query{
		table:   t,
		indexes: make(map[string]*Index),
	}
}

// Table returns the table this query reads.
func (q *Query) Table() *table.Table {
	return q.table
}

// AddIndex builds an index over the named column and returns its selectivity
// score: distinct value count divided by row count. Columns with at least one
// indexable value score in (0, 1]; a column holding nothing but filler has no
// buckets and scores 0. Lower scores mean the index distinguishes more rows.
// Subsequent Grep calls on the column use the stored index automatically.
func (q *Query) AddIndex(column string) (float64, error) {
	idx, err := buildIndex(q.table, column)
	if err != nil {
		return 0, err
	}
	q.indexes[column] = idx

	selectivity := float64(idx.Distinct()) / float64(q.table.Rows())
	logger.Debug("index built",
		zap.String("column", column),
		zap.Int("distinct_values", idx.Distinct()),
		zap.Float64("selectivity", selectivity))
	return selectivity, nil
}

// Index returns the stored index for a column, if one has been built.
func (q *Query) Index(column string) (*Index, bool) {
	idx, ok := q.indexes[column]
	return idx, ok
}

// IndexedColumns returns the names of all indexed columns, sorted.
func (q *Query) IndexedColumns() []string {
	names := make([]string, 0, len(q.indexes))
	for name := range q.indexes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Mode selects the shape of a Grep result.
type Mode int

const (
	// HashRows returns matched rows as header-to-cell mappings (default).
	HashRows Mode = iota
	// RowNumbers returns the ascending matched positions.
	RowNumbers
	// RawRows returns matched rows as plain cell sequences.
	RawRows
	// RowToRawRow returns a position-to-cell-sequence mapping.
	RowToRawRow
	// RowToHashRow returns a position-to-hash-row mapping.
	RowToHashRow
)

// Result holds the output of one Grep call; only the field matching the
// requested mode is populated. Positions are always ascending regardless of
// internal discovery order.
type Result struct {
	Mode      Mode
	Positions []table.Position
	Rows      [][]interface{}
	HashRows  []map[string]interface{}
	RowToRaw  map[table.Position][]interface{}
	RowToHash map[table.Position]map[string]interface{}
}

// Grep finds the rows whose cell in the named column satisfies the
// predicate. With an index on the column the predicate is evaluated once per
// distinct value; without one the column is scanned row by row, skipping
// filler cells. Both paths return identical results.
//
// At most one output mode may be given; none defaults to HashRows.
func (q *Query) Grep(pred Predicate, column string, modes ...Mode) (*Result, error) {
	if len(modes) > 1 {
		return nil, errors.New(errors.ErrorTypeMultipleModes, "more than one output mode requested").
			WithDetail("modes", len(modes))
	}
	mode := HashRows
	if len(modes) == 1 {
		mode = modes[0]
	}

	scratch := pool.GetPositions()
	defer func() { pool.PutPositions(scratch) }()

	if idx, ok := q.indexes[column]; ok {
		for _, b := range idx.buckets {
			if pred.Match(b.value) {
				for _, p := range b.positions {
					scratch = append(scratch, int(p))
				}
			}
		}
	} else {
		values, err := q.table.Column(column)
		if err != nil {
			return nil, err
		}
		for i, v := range values {
			if q.table.IsFiller(v) {
				continue
			}
			if pred.Match(v) {
				scratch = append(scratch, i+1)
			}
		}
	}

	sort.Ints(scratch)

	positions := make([]table.Position, len(scratch))
	for i, p := range scratch {
		positions[i] = table.Position(p)
	}

	return q.shape(mode, positions)
}

// shape materializes the requested output mode from the ascending match set.
func (q *Query) shape(mode Mode, positions []table.Position) (*Result, error) {
	result := &Result{Mode: mode}

	switch mode {
	case RowNumbers:
		result.Positions = positions

	case RawRows:
		result.Rows = make([][]interface{}, 0, len(positions))
		for _, p := range positions {
			row, err := q.table.Row(p)
			if err != nil {
				return nil, err
			}
			result.Rows = append(result.Rows, row)
		}

	case HashRows:
		result.HashRows = make([]map[string]interface{}, 0, len(positions))
		for _, p := range positions {
			row, err := q.table.HashRow(p)
			if err != nil {
				return nil, err
			}
			result.HashRows = append(result.HashRows, row)
		}

	case RowToRawRow:
		result.RowToRaw = make(map[table.Position][]interface{}, len(positions))
		for _, p := range positions {
			row, err := q.table.Row(p)
			if err != nil {
				return nil, err
			}
			result.RowToRaw[p] = row
		}

	case RowToHashRow:
		result.RowToHash = make(map[table.Position]map[string]interface{}, len(positions))
		for _, p := range positions {
			row, err := q.table.HashRow(p)
			if err != nil {
				return nil, err
			}
			result.RowToHash[p] = row
		}

	default:
		return nil, errors.New(errors.ErrorTypeMultipleModes, "unknown output mode").
			WithDetail("mode", int(mode))
	}

	return result, nil
}
