package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/tabular/pkg/errors"
)

func TestNew_PadsIncompleteLastRow(t *testing.T) {
	tbl, err := New(
		[]string{"A", "B", "C"},
		[]interface{}{1, 2, 3, 4, 5, 6, 7},
	)
	require.NoError(t, err)

	assert.Equal(t, 3, tbl.Columns())
	assert.Equal(t, 3, tbl.Rows())
	assert.Equal(t, 9, tbl.Elems())

	last, err := tbl.Row(3)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{7, NoValue, NoValue}, last)
}

func TestNew_ExactFit(t *testing.T) {
	tbl, err := New(
		[]string{"x", "y"},
		[]interface{}{1, 2, 3, 4},
	)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Rows())

	for r := 1; r <= 2; r++ {
		row, err := tbl.Row(Position(r))
		require.NoError(t, err)
		for _, v := range row {
			assert.False(t, tbl.IsFiller(v))
		}
	}
}

func TestNew_ConstructionErrors(t *testing.T) {
	tests := []struct {
		name    string
		header  []string
		data    []interface{}
		errType errors.ErrorType
	}{
		{
			name:    "empty header",
			header:  nil,
			data:    []interface{}{1},
			errType: errors.ErrorTypeEmptyHeader,
		},
		{
			name:    "empty data",
			header:  []string{"A"},
			data:    nil,
			errType: errors.ErrorTypeEmptyData,
		},
		{
			name:    "duplicate header entry",
			header:  []string{"A", "B", "A"},
			data:    []interface{}{1, 2, 3},
			errType: errors.ErrorTypeDuplicateHeader,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.header, tt.data)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, tt.errType),
				"expected %s, got %s", tt.errType, errors.TypeOf(err))
		})
	}
}

func TestNew_CopiesCallerSlices(t *testing.T) {
	header := []string{"A", "B"}
	data := []interface{}{1, 2, 3, 4}

	tbl, err := New(header, data)
	require.NoError(t, err)

	header[0] = "mutated"
	data[0] = "mutated"

	assert.Equal(t, []string{"A", "B"}, tbl.Header())
	cell, err := tbl.Cell("A", 1)
	require.NoError(t, err)
	assert.Equal(t, 1, cell)
}

func TestNewWithCount_SynthesizesHeader(t *testing.T) {
	tbl, err := NewWithCount([]interface{}{1, 2, 3, 4, 5, 6}, 3)
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, tbl.Header())
	assert.Equal(t, 2, tbl.Rows())
}

func TestWithFiller_OverridesSentinel(t *testing.T) {
	tbl, err := New(
		[]string{"A", "B"},
		[]interface{}{1, 2, 3},
		WithFiller("?"),
	)
	require.NoError(t, err)

	cell, err := tbl.Cell("B", 2)
	require.NoError(t, err)
	assert.Equal(t, "?", cell)
	assert.True(t, tbl.IsFiller("?"))
	assert.False(t, tbl.IsFiller(NoValue))
	assert.Equal(t, "?", tbl.Filler())
}

func TestCell(t *testing.T) {
	tbl, err := New(
		[]string{"name", "color"},
		[]interface{}{"Eggplant", "aubergine", "Egg", "white"},
	)
	require.NoError(t, err)

	t.Run("valid lookups", func(t *testing.T) {
		cell, err := tbl.Cell("name", 1)
		require.NoError(t, err)
		assert.Equal(t, "Eggplant", cell)

		cell, err = tbl.Cell("color", 2)
		require.NoError(t, err)
		assert.Equal(t, "white", cell)
	})

	t.Run("unknown column", func(t *testing.T) {
		_, err := tbl.Cell("flavor", 1)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeUnknownColumn))
	})

	t.Run("row below range", func(t *testing.T) {
		_, err := tbl.Cell("name", 0)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeOutOfBounds))
	})

	t.Run("row past end", func(t *testing.T) {
		_, err := tbl.Cell("name", 3)
		require.Error(t, err)
		assert.True(t, errors.IsType(err, errors.ErrorTypeOutOfBounds))
	})
}

func TestRowAndColumn(t *testing.T) {
	tbl, err := New(
		[]string{"A", "B", "C"},
		[]interface{}{1, 2, 3, 4, 5, 6},
	)
	require.NoError(t, err)

	row, err := tbl.Row(2)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{4, 5, 6}, row)

	col, err := tbl.Column("B")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{2, 5}, col)

	_, err = tbl.Row(3)
	assert.True(t, errors.IsType(err, errors.ErrorTypeOutOfBounds))

	_, err = tbl.Column("Z")
	assert.True(t, errors.IsType(err, errors.ErrorTypeUnknownColumn))
}

func TestRow_ReturnsCopy(t *testing.T) {
	tbl, err := New([]string{"A", "B"}, []interface{}{1, 2})
	require.NoError(t, err)

	row, err := tbl.Row(1)
	require.NoError(t, err)
	row[0] = "mutated"

	again, err := tbl.Row(1)
	require.NoError(t, err)
	assert.Equal(t, 1, again[0])
}

func TestHashRow(t *testing.T) {
	tbl, err := New(
		[]string{"name", "color"},
		[]interface{}{"Eggplant", "aubergine"},
	)
	require.NoError(t, err)

	hash, err := tbl.HashRow(1)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{
		"name":  "Eggplant",
		"color": "aubergine",
	}, hash)
}

func TestAt(t *testing.T) {
	tbl, err := New(
		[]string{"A", "B"},
		[]interface{}{1, 2, 3, 4},
	)
	require.NoError(t, err)

	t.Run("zero returns header", func(t *testing.T) {
		v, err := tbl.At(0)
		require.NoError(t, err)
		assert.Equal(t, []string{"A", "B"}, v)
	})

	t.Run("positive returns hash row", func(t *testing.T) {
		v, err := tbl.At(2)
		require.NoError(t, err)
		assert.Equal(t, map[string]interface{}{"A": 3, "B": 4}, v)
	})

	t.Run("out of range", func(t *testing.T) {
		_, err := tbl.At(3)
		assert.True(t, errors.IsType(err, errors.ErrorTypeOutOfBounds))

		_, err = tbl.At(-1)
		assert.True(t, errors.IsType(err, errors.ErrorTypeOutOfBounds))
	})
}

func TestShapedArray(t *testing.T) {
	tbl, err := New(
		[]string{"A", "B"},
		[]interface{}{1, 2, 3},
	)
	require.NoError(t, err)

	shaped := tbl.ShapedArray()
	assert.Equal(t, [][]interface{}{
		{1, 2},
		{3, NoValue},
	}, shaped)
}

func TestColumnNumber(t *testing.T) {
	tbl, err := New([]string{"A", "B", "C"}, []interface{}{1, 2, 3})
	require.NoError(t, err)

	n, ok := tbl.ColumnNumber("B")
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	_, ok = tbl.ColumnNumber("Z")
	assert.False(t, ok)
}

func TestPosition_Valid(t *testing.T) {
	assert.False(t, Position(-1).Valid())
	assert.False(t, Position(0).Valid())
	assert.True(t, Position(1).Valid())
	assert.True(t, Position(1000).Valid())
}

func TestEqual(t *testing.T) {
	mk := func(t *testing.T) *Table {
		tbl, err := New([]string{"A", "B"}, []interface{}{1, "two", 3})
		require.NoError(t, err)
		return tbl
	}

	t.Run("reflexive and symmetric", func(t *testing.T) {
		a := mk(t)
		b := mk(t)
		assert.True(t, Equal(a, a))
		assert.True(t, Equal(a, b))
		assert.True(t, Equal(b, a))
	})

	t.Run("cross strategy", func(t *testing.T) {
		a := mk(t)
		b, err := NewWithCount([]interface{}{1, "two", 3}, 2)
		require.NoError(t, err)
		assert.True(t, Equal(a, b))
	})

	t.Run("header order matters", func(t *testing.T) {
		a := mk(t)
		b, err := New([]string{"B", "A"}, []interface{}{1, "two", 3})
		require.NoError(t, err)
		assert.False(t, Equal(a, b))
	})

	t.Run("cell difference", func(t *testing.T) {
		a := mk(t)
		b, err := New([]string{"A", "B"}, []interface{}{1, "two", 4})
		require.NoError(t, err)
		assert.False(t, Equal(a, b))
	})

	t.Run("row count difference", func(t *testing.T) {
		a := mk(t)
		b, err := New([]string{"A", "B"}, []interface{}{1, "two"})
		require.NoError(t, err)
		assert.False(t, Equal(a, b))
	})

	t.Run("nil handling", func(t *testing.T) {
		a := mk(t)
		assert.False(t, Equal(a, nil))
		assert.False(t, Equal(nil, a))
		assert.True(t, Equal(nil, nil))
	})
}
