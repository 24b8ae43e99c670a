package load

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/tabular/pkg/errors"
	"github.com/ajitpratap0/tabular/pkg/table"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestCSV_FirstRowHeader(t *testing.T) {
	path := writeFile(t, "fruit.csv", "name,color\nEggplant,aubergine\nEgg,white\n")

	tbl, err := File(path, Options{FirstRowHeader: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "color"}, tbl.Header())
	assert.Equal(t, 2, tbl.Rows())

	cell, err := tbl.Cell("color", 1)
	require.NoError(t, err)
	assert.Equal(t, "aubergine", cell)
}

func TestCSV_SynthesizedHeader(t *testing.T) {
	path := writeFile(t, "plain.csv", "1,2,3\n4,5\n")

	tbl, err := File(path, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C"}, tbl.Header())

	cell, err := tbl.Cell("C", 2)
	require.NoError(t, err)
	assert.True(t, tbl.IsFiller(cell))
}

func TestJSON_MapRows(t *testing.T) {
	path := writeFile(t, "fruit.json",
		`[{"name":"Eggplant","color":"aubergine"},{"name":"Egg","color":"white"}]`)

	tbl, err := File(path, Options{})
	require.NoError(t, err)

	assert.Equal(t, []string{"color", "name"}, tbl.Header())
	assert.Equal(t, 2, tbl.Rows())
}

func TestJSON_RejectedRowsCaptured(t *testing.T) {
	path := writeFile(t, "mixed.json", `[{"a":1},"stray",{"a":2}]`)

	var sink table.RejectedSink
	tbl, err := File(path, Options{Rejected: &sink})
	require.NoError(t, err)

	assert.Equal(t, 2, tbl.Rows())
	assert.Equal(t, []interface{}{"stray"}, sink.Rows)
}

func TestFile_UnsupportedExtension(t *testing.T) {
	path := writeFile(t, "table.xml", "<rows/>")

	_, err := File(path, Options{})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestFile_MissingFile(t *testing.T) {
	_, err := File(filepath.Join(t.TempDir(), "absent.csv"), Options{})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeConfig))
}

func TestCSV_MalformedQuoting(t *testing.T) {
	path := writeFile(t, "bad.csv", "a,b\n\"unterminated\n")

	_, err := File(path, Options{})
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeData))
}
