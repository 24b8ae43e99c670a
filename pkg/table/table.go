// Package table implements an immutable, in-memory, two-dimensional table
// with named columns over a flat row-major buffer.
//
// A Table is created once by one of the constructor strategies (New,
// NewWithCount, FromRows) and never mutated afterward, so it is safe to read
// concurrently without locking and to share between any number of query
// sessions. Derived tables produced by Take and Clone own fresh buffers and
// never alias their parent.
package table

import (
	"reflect"

	"github.com/ajitpratap0/tabular/pkg/errors"
)

// Position is a 1-based row number. Values below 1 are never valid.
type Position int

// Valid reports whether the position is usable at all (>= 1). Whether it
// falls inside a particular table is checked by the operation receiving it.
func (p Position) Valid() bool {
	return p >= 1
}

// novalue is the default filler sentinel type.
type novalue struct{}

func (novalue) String() string { return "none" }

// NoValue is the default filler: the marker padded into incomplete rows when
// no caller-supplied filler is configured.
var NoValue = novalue{}

// Table is an immutable two-dimensional table with named columns. The cell at
// 1-based (column c, row r) lives at flat offset columns*(r-1)+(c-1).
type Table struct {
	columns  int
	rows     int
	header   []string
	colIndex map[string]int // header name -> 1-based column number
	data     []interface{}  // row-major, len == columns*rows
	filler   interface{}
}

// Option configures a constructor strategy.
type Option func(*options)

type options struct {
	filler         interface{}
	firstRowHeader bool
	rejected       *RejectedSink
}

func newOptions(opts []Option) options {
	o := options{filler: NoValue}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithFiller overrides the sentinel used to pad incomplete rows.
func WithFiller(v interface{}) Option {
	return func(o *options) {
		o.filler = v
	}
}

// New builds a table from an explicit header and a flat value sequence.
// The data length is rounded up to a whole number of rows; the final row is
// padded with the filler. Both slices are copied, so the caller keeps
// ownership of its arguments.
func New(header []string, data []interface{}, opts ...Option) (*Table, error) {
	o := newOptions(opts)
	return build(header, data, o.filler)
}

// NewWithCount builds a table from a flat value sequence and a column count,
// synthesizing a spreadsheet-style header (A, B, ... AA, ...).
func NewWithCount(data []interface{}, columns int, opts ...Option) (*Table, error) {
	return New(Names(columns), data, opts...)
}

// build is the canonical constructor every ingestion strategy terminates in.
func build(header []string, data []interface{}, filler interface{}) (*Table, error) {
	if len(header) == 0 {
		return nil, errors.New(errors.ErrorTypeEmptyHeader, "header has no entries")
	}
	if len(data) == 0 {
		return nil, errors.New(errors.ErrorTypeEmptyData, "data has no entries")
	}

	columns := len(header)
	colIndex := make(map[string]int, columns)
	ownHeader := make([]string, columns)
	for i, name := range header {
		if _, exists := colIndex[name]; exists {
			return nil, errors.New(errors.ErrorTypeDuplicateHeader, "duplicate header entry").
				WithDetail("column", name)
		}
		colIndex[name] = i + 1
		ownHeader[i] = name
	}

	rows := (len(data) + columns - 1) / columns

	ownData := make([]interface{}, columns*rows)
	copy(ownData, data)
	for i := len(data); i < len(ownData); i++ {
		ownData[i] = filler
	}

	return &Table{
		columns:  columns,
		rows:     rows,
		header:   ownHeader,
		colIndex: colIndex,
		data:     ownData,
		filler:   filler,
	}, nil
}

// Columns returns the number of columns.
func (t *Table) Columns() int { return t.columns }

// Rows returns the number of rows.
func (t *Table) Rows() int { return t.rows }

// Elems returns the total number of cells (rows * columns).
func (t *Table) Elems() int { return t.rows * t.columns }

// Filler returns the padding sentinel this table was built with.
func (t *Table) Filler() interface{} { return t.filler }

// Header returns a copy of the header sequence.
func (t *Table) Header() []string {
	h := make([]string, len(t.header))
	copy(h, t.header)
	return h
}

// ColumnNumber resolves a header name to its 1-based column number.
func (t *Table) ColumnNumber(name string) (int, bool) {
	n, ok := t.colIndex[name]
	return n, ok
}

// Cell returns the value at the named column and 1-based row.
func (t *Table) Cell(column string, row Position) (interface{}, error) {
	c, ok := t.colIndex[column]
	if !ok {
		return nil, errors.New(errors.ErrorTypeUnknownColumn, "no such column").
			WithDetail("column", column)
	}
	if !row.Valid() {
		return nil, errors.New(errors.ErrorTypeOutOfBounds, "row below valid range").
			WithDetail("row", int(row))
	}
	offset := t.columns*(int(row)-1) + (c - 1)
	if offset >= len(t.data) {
		return nil, errors.New(errors.ErrorTypeOutOfBounds, "cell offset past end of data").
			WithDetail("column", column).
			WithDetail("row", int(row))
	}
	return t.data[offset], nil
}

// Row returns a copy of the cells of the given 1-based row.
func (t *Table) Row(row Position) ([]interface{}, error) {
	if !row.Valid() || int(row) > t.rows {
		return nil, errors.New(errors.ErrorTypeOutOfBounds, "row outside table").
			WithDetail("row", int(row)).
			WithDetail("rows", t.rows)
	}
	out := make([]interface{}, t.columns)
	copy(out, t.data[(int(row)-1)*t.columns:int(row)*t.columns])
	return out, nil
}

// Column returns a copy of the named column's values, top to bottom.
func (t *Table) Column(column string) ([]interface{}, error) {
	c, ok := t.colIndex[column]
	if !ok {
		return nil, errors.New(errors.ErrorTypeUnknownColumn, "no such column").
			WithDetail("column", column)
	}
	out := make([]interface{}, t.rows)
	for r := 0; r < t.rows; r++ {
		out[r] = t.data[r*t.columns+(c-1)]
	}
	return out, nil
}

// HashRow returns the given 1-based row as a header-name-to-cell mapping.
func (t *Table) HashRow(row Position) (map[string]interface{}, error) {
	cells, err := t.Row(row)
	if err != nil {
		return nil, err
	}
	out := make(map[string]interface{}, t.columns)
	for i, name := range t.header {
		out[name] = cells[i]
	}
	return out, nil
}

// At provides bracket-style indexed access: At(0) returns the header
// sequence, At(n) for n in 1..rows returns the row as a header-to-cell
// mapping, anything else is out of bounds.
func (t *Table) At(n int) (interface{}, error) {
	if n == 0 {
		return t.Header(), nil
	}
	if n < 0 || n > t.rows {
		return nil, errors.New(errors.ErrorTypeOutOfBounds, "index outside table").
			WithDetail("index", n).
			WithDetail("rows", t.rows)
	}
	return t.HashRow(Position(n))
}

// ShapedArray returns the data as a rows x columns nested array, header
// excluded.
func (t *Table) ShapedArray() [][]interface{} {
	out := make([][]interface{}, t.rows)
	for r := 0; r < t.rows; r++ {
		// Row cannot fail for r in 1..rows
		row, _ := t.Row(Position(r + 1))
		out[r] = row
	}
	return out
}

// IsFiller reports whether a cell value is this table's padding sentinel.
func (t *Table) IsFiller(v interface{}) bool {
	return reflect.DeepEqual(v, t.filler)
}

// Equal reports whether two tables are structurally equal: identical header
// sequences and element-wise equal columns. It short-circuits on the first
// difference.
func Equal(a, b *Table) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if len(a.header) != len(b.header) {
		return false
	}
	for i, name := range a.header {
		if b.header[i] != name {
			return false
		}
	}
	for _, name := range a.header {
		ca, _ := a.Column(name)
		cb, err := b.Column(name)
		if err != nil || len(ca) != len(cb) {
			return false
		}
		for i := range ca {
			if !reflect.DeepEqual(ca[i], cb[i]) {
				return false
			}
		}
	}
	return true
}
