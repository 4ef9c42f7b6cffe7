package purefn_test

import (
	"sync"
	"testing"

	"github.com/on-the-ground/fnkit/purefn"
	"github.com/stretchr/testify/assert"
)

func TestTable_BasicUsage(t *testing.T) {
	table := purefn.NewTable[string](1)

	table.Store([]purefn.TableKey{"a", "b", "c"}, "final")

	val, ok := table.Load([]purefn.TableKey{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "final", val)

	_, ok = table.Load([]purefn.TableKey{"a", "b", "x"})
	assert.False(t, ok)

	table.Store([]purefn.TableKey{"a", "b", "c"}, "updated")
	val, ok = table.Load([]purefn.TableKey{"a", "b", "c"})
	assert.True(t, ok)
	assert.Equal(t, "updated", val)
}

func TestTable_Rotation(t *testing.T) {
	table := purefn.NewTable[int](2)

	table.Store([]purefn.TableKey{1}, 1)
	table.Store([]purefn.TableKey{2}, 2)
	assert.Equal(t, 2, table.Len())

	// head is full: rotate, keep {1, 2} as the previous generation
	table.Store([]purefn.TableKey{3}, 3)
	assert.Equal(t, 1, table.Len())
	for _, k := range []int{1, 2, 3} {
		v, ok := table.Load([]purefn.TableKey{k})
		assert.True(t, ok)
		assert.Equal(t, k, v)
	}

	// second rotation drops {1, 2}
	table.Store([]purefn.TableKey{4}, 4)
	table.Store([]purefn.TableKey{5}, 5)
	_, ok := table.Load([]purefn.TableKey{1})
	assert.False(t, ok)
	_, ok = table.Load([]purefn.TableKey{3})
	assert.True(t, ok)
}

func TestTable_OverwriteDoesNotGrow(t *testing.T) {
	table := purefn.NewTable[int](4)
	table.Store([]purefn.TableKey{"k"}, 1)
	table.Store([]purefn.TableKey{"k"}, 2)
	assert.Equal(t, 1, table.Len())
}

func TestTable_LoadDoesNotCreatePaths(t *testing.T) {
	table := purefn.NewTable[int](4)
	_, ok := table.Load([]purefn.TableKey{"a", "b"})
	assert.False(t, ok)
	assert.Equal(t, 0, table.Len())
}

func TestTable_MixedPathLengths(t *testing.T) {
	table := purefn.NewTable[int](8)
	table.Store([]purefn.TableKey{"a"}, 1)
	table.Store([]purefn.TableKey{"a", "b"}, 2)

	v, ok := table.Load([]purefn.TableKey{"a", "b"})
	assert.True(t, ok)
	assert.Equal(t, 2, v)

	_, ok = table.Load([]purefn.TableKey{"a"})
	assert.False(t, ok)
}

func TestTable_ConcurrentAccess(t *testing.T) {
	table := purefn.NewTable[int](16)
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				table.Store([]purefn.TableKey{i, j}, i*j)
				table.Load([]purefn.TableKey{i, j})
			}
		}(i)
	}
	wg.Wait()
	assert.LessOrEqual(t, table.Len(), 16)
}

func TestTable_EmptyKeysPanics(t *testing.T) {
	table := purefn.NewTable[int](2)
	assert.Panics(t, func() {
		table.Load([]purefn.TableKey{})
	})
	assert.Panics(t, func() {
		table.Store(nil, 1)
	})
}

func TestNewTable_ZeroSizePanics(t *testing.T) {
	assert.Panics(t, func() {
		purefn.NewTable[int](0)
	})
}
