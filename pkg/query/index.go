package query

import (
	stringpool "github.com/ajitpratap0/tabular/pkg/strings"
	"github.com/ajitpratap0/tabular/pkg/table"
)

// bucket holds one distinct column value and the ascending list of row
// numbers containing it.
type bucket struct {
	value     interface{}
	positions []table.Position
}

// Index maps a column's distinct values to the rows containing them. Rows
// holding the table's filler sentinel are excluded from every bucket.
//
// Buckets are keyed by the value's printed form so non-comparable cells
// (lists, maps) can be indexed too; the original value is kept alongside for
// predicate evaluation.
type Index struct {
	column  string
	buckets map[string]*bucket
}

// buildIndex scans the column top to bottom once; bucket position lists come
// out ascending by construction.
func buildIndex(t *table.Table, column string) (*Index, error) {
	values, err := t.Column(column)
	if err != nil {
		return nil, err
	}

	idx := &Index{
		column:  column,
		buckets: make(map[string]*bucket),
	}
	for i, v := range values {
		if t.IsFiller(v) {
			continue
		}
		key := bucketKey(v)
		b, ok := idx.buckets[key]
		if !ok {
			b = &bucket{value: v}
			idx.buckets[key] = b
		}
		b.positions = append(b.positions, table.Position(i+1))
	}
	return idx, nil
}

// bucketKey renders a cell value into a deterministic map key.
func bucketKey(v interface{}) string {
	return stringpool.Sprintf("%T/%#v", v, v)
}

// Column returns the name of the indexed column.
func (idx *Index) Column() string {
	return idx.column
}

// Distinct returns the number of distinct indexed values.
func (idx *Index) Distinct() int {
	return len(idx.buckets)
}

// Positions returns the ascending row numbers holding the given value, or
// false when the value does not occur in the column.
func (idx *Index) Positions(value interface{}) ([]table.Position, bool) {
	b, ok := idx.buckets[bucketKey(value)]
	if !ok {
		return nil, false
	}
	out := make([]table.Position, len(b.positions))
	copy(out, b.positions)
	return out, true
}
