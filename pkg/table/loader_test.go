package table_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapcheck/pkg/table"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t, "id,name,score\n1,Alice,9.5\n2,Bob,NA\n3,,7\n")

	tbl, err := table.LoadCSV(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"id", "name", "score"}, tbl.ColumnNames())
	assert.Equal(t, 3, tbl.RowCount())

	id, ok := tbl.Column("id")
	require.True(t, ok)
	assert.Equal(t, table.KindInt, id.Type())

	name, ok := tbl.Column("name")
	require.True(t, ok)
	assert.Equal(t, 1, name.MissingCount())

	score, ok := tbl.Column("score")
	require.True(t, ok)
	assert.Equal(t, table.KindFloat, score.Type())
	assert.True(t, score.Values[1].IsMissing())
}

func TestLoadCSV_MissingFile(t *testing.T) {
	_, err := table.LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)

	var loadErr *table.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "cannot open file", loadErr.Reason)
}

func TestLoadCSV_EmptyFile(t *testing.T) {
	_, err := table.LoadCSV(writeCSV(t, ""))
	require.Error(t, err)

	var loadErr *table.LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, "file is empty", loadErr.Reason)
}

func TestLoadCSV_RaggedRow(t *testing.T) {
	_, err := table.LoadCSV(writeCSV(t, "a,b\n1,2\n3\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "malformed row 3")
}

func TestLoadCSV_DuplicateHeader(t *testing.T) {
	_, err := table.LoadCSV(writeCSV(t, "a,a\n1,2\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid table")
	assert.Contains(t, err.Error(), `duplicate column name "a"`)
}

func TestLoadCSV_HeaderOnly(t *testing.T) {
	tbl, err := table.LoadCSV(writeCSV(t, "a,b\n"))
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.RowCount())
	assert.Equal(t, []string{"a", "b"}, tbl.ColumnNames())
}
