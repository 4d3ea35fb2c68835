package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapcheck/pkg/check"
)

func TestCheckUniqueness(t *testing.T) {
	tests := []struct {
		name      string
		cells     []string
		wantFail  bool
		wantCount int
		wantDups  []check.DuplicateValue
	}{
		{
			name:  "all unique",
			cells: []string{"1", "2", "3"},
		},
		{
			name:      "one duplicated value",
			cells:     []string{"1", "1", "2"},
			wantFail:  true,
			wantCount: 1,
			wantDups:  []check.DuplicateValue{{Value: "1", Rows: []int{0, 1}}},
		},
		{
			name:      "triplicate counts extra occurrences",
			cells:     []string{"x", "x", "x"},
			wantFail:  true,
			wantCount: 2,
			wantDups:  []check.DuplicateValue{{Value: "x", Rows: []int{0, 1, 2}}},
		},
		{
			name:  "missing values are ignored",
			cells: []string{"", "", "1"},
		},
		{
			name:      "int and float compare numerically",
			cells:     []string{"1", "1.0"},
			wantFail:  true,
			wantCount: 1,
			wantDups:  []check.DuplicateValue{{Value: "1", Rows: []int{0, 1}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := mustTable(t, col("c", tt.cells...))
			res, err := check.CheckUniqueness(tbl, "c", check.DefaultOptions())
			require.NoError(t, err)

			if tt.wantFail {
				assert.Equal(t, check.StatusFail, res.Status)
			} else {
				assert.Equal(t, check.StatusPass, res.Status)
				assert.Equal(t, "No duplicate values found.", res.Message)
			}
			require.NotNil(t, res.Details)
			assert.Equal(t, tt.wantCount, res.Details.DuplicateCount)
			assert.Equal(t, tt.wantDups, res.Details.DuplicateValues)
		})
	}
}

func TestCheckUniqueness_PermutationInvariantCount(t *testing.T) {
	a := mustTable(t, col("c", "1", "2", "1", "3"))
	b := mustTable(t, col("c", "3", "1", "1", "2"))

	resA, err := check.CheckUniqueness(a, "c", check.DefaultOptions())
	require.NoError(t, err)
	resB, err := check.CheckUniqueness(b, "c", check.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, resA.Status, resB.Status)
	assert.Equal(t, resA.Details.DuplicateCount, resB.Details.DuplicateCount)
}

func TestCheckUniqueness_AbsentColumn(t *testing.T) {
	tbl := mustTable(t, col("c", "1"))
	_, err := check.CheckUniqueness(tbl, "other", check.DefaultOptions())
	require.ErrorIs(t, err, check.ErrColumnNotFound)
}
