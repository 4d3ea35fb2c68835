package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapcheck/pkg/table"
)

func col(name string, cells ...string) *table.Column {
	c := &table.Column{Name: name}
	for _, cell := range cells {
		c.Values = append(c.Values, table.ParseValue(cell))
	}
	return c
}

func TestNew_Validation(t *testing.T) {
	tests := []struct {
		name    string
		cols    []*table.Column
		wantErr string
	}{
		{
			name: "valid",
			cols: []*table.Column{col("a", "1", "2"), col("b", "x", "y")},
		},
		{
			name:    "duplicate names",
			cols:    []*table.Column{col("a", "1"), col("a", "2")},
			wantErr: `duplicate column name "a"`,
		},
		{
			name:    "empty name",
			cols:    []*table.Column{col("", "1")},
			wantErr: "empty name",
		},
		{
			name:    "ragged lengths",
			cols:    []*table.Column{col("a", "1", "2"), col("b", "x")},
			wantErr: `column "b" has 1 rows, expected 2`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl, err := table.New(tt.cols)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, len(tt.cols), len(tbl.Columns()))
		})
	}
}

func TestTable_ColumnLookup(t *testing.T) {
	tbl, err := table.New([]*table.Column{col("id", "1", "2"), col("name", "a", "b")})
	require.NoError(t, err)

	c, ok := tbl.Column("name")
	require.True(t, ok)
	assert.Equal(t, "name", c.Name)

	_, ok = tbl.Column("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"id", "name"}, tbl.ColumnNames())
	assert.Equal(t, 2, tbl.RowCount())
}

func TestColumn_Type(t *testing.T) {
	tests := []struct {
		name  string
		cells []string
		want  table.Kind
	}{
		{name: "all ints", cells: []string{"1", "2", "3"}, want: table.KindInt},
		{name: "int float mix widens", cells: []string{"1", "2.5"}, want: table.KindFloat},
		{name: "ints with missing", cells: []string{"1", "", "3"}, want: table.KindInt},
		{name: "mixed kinds", cells: []string{"1", "abc"}, want: table.KindString},
		{name: "all missing", cells: []string{"", "NA"}, want: table.KindMissing},
		{name: "booleans", cells: []string{"true", "false"}, want: table.KindBool},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, col("c", tt.cells...).Type())
		})
	}
}

func TestColumn_MissingCount(t *testing.T) {
	c := col("c", "1", "", "NA", "4")
	assert.Equal(t, 2, c.MissingCount())
	assert.Equal(t, 4, c.Len())
}
