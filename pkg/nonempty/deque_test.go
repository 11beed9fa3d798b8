package nonempty_test

import (
	"slices"
	"testing"

	"github.com/gammazero/deque"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valuekit/pkg/constraint"
	"github.com/dmitrymomot/valuekit/pkg/nonempty"
)

func TestNewDeque(t *testing.T) {
	t.Parallel()

	t.Run("accepts a populated deque", func(t *testing.T) {
		t.Parallel()

		var d deque.Deque[string]
		d.PushBack("middle")
		d.PushFront("head")
		d.PushBack("tail")

		q, err := nonempty.NewDeque(&d)
		require.NoError(t, err)
		assert.Equal(t, 3, q.Len())
		assert.Equal(t, "head", q.Front())
		assert.Equal(t, "tail", q.Back())
		assert.Equal(t, "middle", q.At(1))
		assert.Same(t, &d, q.Value())
	})

	t.Run("rejects empty and nil", func(t *testing.T) {
		t.Parallel()

		_, err := nonempty.NewDeque(new(deque.Deque[int]))
		assert.Equal(t, constraint.Empty(constraint.SubjectCollection), err)

		_, err = nonempty.NewDeque[int](nil)
		assert.ErrorIs(t, err, constraint.ErrEmpty)
	})
}

func TestDequeOf(t *testing.T) {
	t.Parallel()

	q := nonempty.DequeOf(1, 2, 3)
	if diff := cmp.Diff([]int{1, 2, 3}, slices.Collect(q.All())); diff != "" {
		t.Errorf("All() mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 1, q.Front())
	assert.Equal(t, 3, q.Back())
}

func TestEqualDeques(t *testing.T) {
	t.Parallel()

	a := nonempty.DequeOf("a", "b")
	assert.True(t, nonempty.EqualDeques(a, nonempty.DequeOf("a", "b")))
	assert.False(t, nonempty.EqualDeques(a, nonempty.DequeOf("b", "a")))
	assert.False(t, nonempty.EqualDeques(a, nonempty.DequeOf("a")))
}

func TestDeque_ZeroAndUnchecked(t *testing.T) {
	t.Parallel()

	var zero nonempty.Deque[int]
	assert.Equal(t, 0, zero.Len())
	assert.Empty(t, slices.Collect(zero.All()))
	assert.ErrorIs(t, zero.Validate(), constraint.ErrEmpty)

	q := nonempty.UncheckedDeque(new(deque.Deque[int]))
	assert.ErrorIs(t, q.Validate(), constraint.ErrEmpty)
}
