package slickhash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainCapacity(t *testing.T) {
	var c Capacity = PlainCapacity(1000)
	assert.Equal(t, uint64(1000), c.Capacity())
}

func TestWithMargin(t *testing.T) {
	var c Capacity = WithMargin{Base: 1000, Epsilon: 0.1}
	assert.Equal(t, uint64(1100), c.Capacity())
}

func TestInsertionInsertedAndOccupied(t *testing.T) {
	v := uint64(42)

	ins := Inserted(&v)
	assert.True(t, ins.WasInserted())
	assert.Equal(t, uint64(42), *ins.Value())

	occ := Occupied(&v)
	assert.False(t, occ.WasInserted())
	assert.Equal(t, uint64(42), *occ.Value())
}

func TestBulkInsertAppliesEveryPair(t *testing.T) {
	s := New(100)
	pairs := []KeyValue[uint64, uint64]{
		{Key: 1, Value: 10},
		{Key: 2, Value: 20},
		{Key: 3, Value: 30},
	}

	BulkInsert[uint64, uint64](s, pairs)

	for _, p := range pairs {
		v, ok := s.Get(p.Key)
		require.True(t, ok)
		assert.Equal(t, p.Value, *v)
	}
}

func TestSlickHashSatisfiesCompleteHashTable(t *testing.T) {
	var table CompleteHashTable[uint64, uint64] = New(100)
	assert.Equal(t, "SlickHash", table.Name())
	assert.True(t, table.SupportsRemove())
}
