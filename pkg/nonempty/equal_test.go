package nonempty_test

import (
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valuekit/pkg/nonempty"
)

func TestWrappers_NotComparable(t *testing.T) {
	t.Parallel()

	types := []reflect.Type{
		reflect.TypeFor[nonempty.Slice[int]](),
		reflect.TypeFor[nonempty.Map[string, int]](),
		reflect.TypeFor[nonempty.Set[int]](),
		reflect.TypeFor[nonempty.Deque[int]](),
		reflect.TypeFor[nonempty.SortedMap[string, int]](),
		reflect.TypeFor[nonempty.SortedSet[int]](),
	}
	for _, typ := range types {
		assert.False(t, typ.Comparable(), typ.String())
	}
}

func TestDeque_Equal(t *testing.T) {
	t.Parallel()

	a := nonempty.DequeOf(1, 2, 3)
	assert.True(t, a.Equal(nonempty.DequeOf(1, 2, 3)))
	assert.False(t, a.Equal(nonempty.DequeOf(3, 2, 1)))
	assert.False(t, a.Equal(nonempty.DequeOf(1, 2)))

	var zero nonempty.Deque[int]
	assert.False(t, a.Equal(zero))
	assert.True(t, zero.Equal(nonempty.Deque[int]{}))

	nested := nonempty.DequeOf([]string{"a"}, []string{"b"})
	assert.True(t, nested.Equal(nonempty.DequeOf([]string{"a"}, []string{"b"})))
	assert.False(t, nested.Equal(nonempty.DequeOf([]string{"a"}, []string{"c"})))
}

func TestSortedMap_Equal(t *testing.T) {
	t.Parallel()

	a, err := nonempty.SortedMapOf(map[string]int{"x": 1, "y": 2})
	require.NoError(t, err)
	same, err := nonempty.SortedMapOf(map[string]int{"y": 2, "x": 1})
	require.NoError(t, err)
	otherValue, err := nonempty.SortedMapOf(map[string]int{"x": 1, "y": 3})
	require.NoError(t, err)
	otherKey, err := nonempty.SortedMapOf(map[string]int{"x": 1, "z": 2})
	require.NoError(t, err)

	assert.True(t, a.Equal(same))
	assert.False(t, a.Equal(otherValue))
	assert.False(t, a.Equal(otherKey))

	var zero nonempty.SortedMap[string, int]
	assert.False(t, a.Equal(zero))
	assert.True(t, zero.Equal(nonempty.SortedMap[string, int]{}))
}

func TestEqual_ComparesContents(t *testing.T) {
	t.Parallel()

	t.Run("equal methods", func(t *testing.T) {
		t.Parallel()

		assert.True(t, nonempty.SetOf(1).Equal(nonempty.SetOf(1)))
		assert.True(t, nonempty.DequeOf(1).Equal(nonempty.DequeOf(1)))
		assert.True(t, nonempty.SortedSetOf(1).Equal(nonempty.SortedSetOf(1)))
	})

	t.Run("go-cmp uses them", func(t *testing.T) {
		t.Parallel()

		m1, err := nonempty.SortedMapOf(map[int]string{1: "a"})
		require.NoError(t, err)
		m2, err := nonempty.SortedMapOf(map[int]string{1: "a"})
		require.NoError(t, err)

		assert.True(t, cmp.Equal(nonempty.SetOf(1, 2), nonempty.SetOf(2, 1)))
		assert.True(t, cmp.Equal(nonempty.DequeOf(1, 2), nonempty.DequeOf(1, 2)))
		assert.True(t, cmp.Equal(nonempty.SortedSetOf(2, 1), nonempty.SortedSetOf(1, 2)))
		assert.True(t, cmp.Equal(m1, m2))
		assert.False(t, cmp.Equal(nonempty.DequeOf(1, 2), nonempty.DequeOf(2, 1)))
	})
}
