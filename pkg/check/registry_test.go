package check_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/leapstack-labs/leapcheck/pkg/check"
)

func TestRegistry_AllKindsRegistered(t *testing.T) {
	kinds := []check.Kind{
		check.Completeness,
		check.Uniqueness,
		check.DataType,
		check.AccuracyRange,
		check.DateOrder,
		check.RegexMatch,
		check.FixedDateRange,
	}

	for _, kind := range kinds {
		def, ok := check.Lookup(kind)
		require.True(t, ok, "kind %s not registered", kind)
		assert.Equal(t, kind, def.Kind)
		assert.NotEmpty(t, def.Description)
		assert.NotEmpty(t, def.Fields)
	}

	assert.Equal(t, len(kinds), check.Count())
}

func TestRegistry_AllSorted(t *testing.T) {
	defs := check.All()
	require.Equal(t, check.Count(), len(defs))
	for i := 1; i < len(defs); i++ {
		assert.Less(t, string(defs[i-1].Kind), string(defs[i].Kind))
	}
}

func TestRegistry_LookupUnknown(t *testing.T) {
	_, ok := check.Lookup(check.Kind("nope"))
	assert.False(t, ok)
}
