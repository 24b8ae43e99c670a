package table

import (
	"go.uber.org/zap"

	"github.com/ajitpratap0/tabular/pkg/errors"
	"github.com/ajitpratap0/tabular/pkg/logger"
)

// Take builds a new table from the rows named by positions, in the exact
// order and multiplicity given: duplicates are preserved and no sorting or
// deduplication happens.
//
// Maximal runs of strictly consecutive ascending positions are copied from
// the backing buffer in one operation each; a repeat, a gap, or a decrease
// closes the current run. The result is byte-for-byte identical to copying
// each requested row individually, so the compaction is purely a performance
// optimization. Worst case (no two consecutive requests adjacent) degrades to
// one copy per row, never worse than the naive baseline.
func (t *Table) Take(positions []Position) (*Table, error) {
	if len(positions) == 0 {
		return nil, errors.New(errors.ErrorTypeEmptyRowList, "no rows requested")
	}
	for _, p := range positions {
		if !p.Valid() {
			return nil, errors.New(errors.ErrorTypeOutOfBounds, "position below valid range").
				WithDetail("position", int(p))
		}
		if int(p) > t.rows {
			return nil, errors.New(errors.ErrorTypeRowOutOfRange, "position past last row").
				WithDetail("position", int(p)).
				WithDetail("rows", t.rows)
		}
	}

	out := make([]interface{}, 0, len(positions)*t.columns)
	runs := 0

	start := positions[0]
	prev := positions[0]
	for _, p := range positions[1:] {
		if p == prev+1 {
			prev = p
			continue
		}
		out = append(out, t.data[(int(start)-1)*t.columns:int(prev)*t.columns]...)
		runs++
		start, prev = p, p
	}
	out = append(out, t.data[(int(start)-1)*t.columns:int(prev)*t.columns]...)
	runs++

	logger.Debug("take compacted",
		zap.Int("requested", len(positions)),
		zap.Int("runs", runs))

	return build(t.Header(), out, t.filler)
}

// Clone rebuilds the table through the full constructor, equivalent to taking
// rows 1..rows in order. Invariants are re-validated; the result shares no
// buffer with the original.
func (t *Table) Clone() (*Table, error) {
	positions := make([]Position, t.rows)
	for i := range positions {
		positions[i] = Position(i + 1)
	}
	return t.Take(positions)
}
