package table

import (
	"fmt"
	"sort"

	"github.com/ajitpratap0/tabular/pkg/errors"
	"github.com/ajitpratap0/tabular/pkg/pool"
)

// RowsMode selects how a rowset is interpreted. Exactly one mode must be set;
// combining them (or passing zero) is a contradictory request.
type RowsMode int

const (
	// MapRows treats each row as a key-to-value mapping; the header is the
	// set of distinct keys ordered by descending frequency, ties broken by
	// ascending key name.
	MapRows RowsMode = 1 << iota
	// ListRows treats each row as a list of values, optionally taking the
	// first row as the header.
	ListRows
)

// RejectedSink collects the input the ingestion strategies drop. Pass one via
// WithRejected to capture rejects instead of discarding them silently.
type RejectedSink struct {
	// Rows receives non-map rows dropped by MapRows mode, in input order.
	Rows []interface{}
	// Cells receives the truncated tails of over-long ListRows rows, keyed
	// by the row's 0-based index in the input sequence.
	Cells map[int][]interface{}
}

// WithRejected captures dropped rows and truncated cells in sink.
func WithRejected(sink *RejectedSink) Option {
	return func(o *options) {
		o.rejected = sink
	}
}

// WithFirstRowHeader makes ListRows mode take the first row as the header;
// its length fixes the column count.
func WithFirstRowHeader() Option {
	return func(o *options) {
		o.firstRowHeader = true
	}
}

// FromRows builds a table from a rowset: a sequence whose elements each
// represent one full row, either as a map or as a list. The rowset is
// normalized into a flat value sequence and handed to the canonical
// constructor.
func FromRows(rows []interface{}, mode RowsMode, opts ...Option) (*Table, error) {
	o := newOptions(opts)

	switch mode {
	case MapRows:
		return fromMapRows(rows, o)
	case ListRows:
		return fromListRows(rows, o)
	default:
		return nil, errors.New(errors.ErrorTypeContradictoryFlags, "exactly one rowset mode must be selected").
			WithDetail("mode", int(mode))
	}
}

// fromMapRows implements the map-rows strategy: key frequency ranking for the
// header, filler for absent keys, non-map rows rejected.
func fromMapRows(rows []interface{}, o options) (*Table, error) {
	retained := make([]map[string]interface{}, 0, len(rows))
	freq := make(map[string]int)

	for _, r := range rows {
		m, ok := r.(map[string]interface{})
		if !ok {
			if o.rejected != nil {
				o.rejected.Rows = append(o.rejected.Rows, r)
			}
			continue
		}
		retained = append(retained, m)
		for key := range m {
			freq[key]++
		}
	}

	if len(retained) == 0 {
		return nil, errors.New(errors.ErrorTypeEmptyData, "rowset contains no map rows")
	}

	header := make([]string, 0, len(freq))
	for key := range freq {
		header = append(header, key)
	}
	// Most populated column first; ties resolve alphabetically so the header
	// order is reproducible.
	sort.SliceStable(header, func(i, j int) bool {
		if freq[header[i]] != freq[header[j]] {
			return freq[header[i]] > freq[header[j]]
		}
		return header[i] < header[j]
	})

	flat := pool.GetCells()
	defer func() { pool.PutCells(flat) }()
	for _, m := range retained {
		for _, key := range header {
			if v, ok := m[key]; ok {
				flat = append(flat, v)
			} else {
				flat = append(flat, o.filler)
			}
		}
	}

	return build(header, flat, o.filler)
}

// fromListRows implements the list-rows strategy: header from the first row
// or synthesized to the widest row, over-long rows truncated, short rows
// padded.
func fromListRows(rows []interface{}, o options) (*Table, error) {
	listed := make([][]interface{}, len(rows))
	for i, r := range rows {
		listed[i] = asList(r)
	}

	var header []string
	data := listed
	dataOffset := 0
	if o.firstRowHeader {
		if len(listed) == 0 {
			return nil, errors.New(errors.ErrorTypeEmptyData, "rowset has no header row")
		}
		first := flatten(listed[0])
		header = make([]string, len(first))
		for i, v := range first {
			header[i] = fmt.Sprint(v)
		}
		data = listed[1:]
		dataOffset = 1
	} else {
		widest := 0
		for _, row := range listed {
			if len(row) > widest {
				widest = len(row)
			}
		}
		header = Names(widest)
	}

	columns := len(header)
	flat := pool.GetCells()
	defer func() { pool.PutCells(flat) }()
	for i, row := range data {
		if len(row) > columns {
			if o.rejected != nil {
				if o.rejected.Cells == nil {
					o.rejected.Cells = make(map[int][]interface{})
				}
				tail := make([]interface{}, len(row)-columns)
				copy(tail, row[columns:])
				o.rejected.Cells[i+dataOffset] = tail
			}
			row = row[:columns]
		}
		flat = append(flat, row...)
		for pad := len(row); pad < columns; pad++ {
			flat = append(flat, o.filler)
		}
	}

	return build(header, flat, o.filler)
}

// asList views a row as a list: lists pass through, anything else becomes a
// single-cell row.
func asList(r interface{}) []interface{} {
	if l, ok := r.([]interface{}); ok {
		return l
	}
	return []interface{}{r}
}

// flatten expands nested lists depth-first; the header row is flattened
// before its entries are counted.
func flatten(row []interface{}) []interface{} {
	out := make([]interface{}, 0, len(row))
	for _, v := range row {
		if nested, ok := v.([]interface{}); ok {
			out = append(out, flatten(nested)...)
		} else {
			out = append(out, v)
		}
	}
	return out
}
