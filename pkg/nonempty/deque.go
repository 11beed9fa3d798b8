package nonempty

import (
	"iter"
	"log/slog"
	"reflect"

	"github.com/gammazero/deque"
)

// Deque is a double-ended queue with at least one element.
// The zero value holds no deque and is not constructed.
type Deque[T any] struct {
	_ [0]func()
	d *deque.Deque[T]
}

// NewDeque wraps d after checking that it has an element. A nil deque is
// empty.
func NewDeque[T any](d *deque.Deque[T]) (Deque[T], error) {
	if err := checkDeque(d); err != nil {
		return Deque[T]{}, err
	}
	return Deque[T]{d: d}, nil
}

// DequeOf builds a Deque holding its arguments front to back.
func DequeOf[T any](first T, rest ...T) Deque[T] {
	d := new(deque.Deque[T])
	d.PushBack(first)
	for _, elem := range rest {
		d.PushBack(elem)
	}
	return Deque[T]{d: d}
}

// UncheckedDeque wraps d without checking it. The caller must guarantee that d
// is not nil and not empty.
func UncheckedDeque[T any](d *deque.Deque[T]) Deque[T] {
	return Deque[T]{d: d}
}

func checkDeque[T any](d *deque.Deque[T]) error {
	if d == nil {
		return Check[T](nil)
	}
	return Check(d.Iter())
}

// Value returns the wrapped deque.
func (v Deque[T]) Value() *deque.Deque[T] { return v.d }

// Validate re-runs the emptiness check.
func (v Deque[T]) Validate() error {
	return checkDeque(v.d)
}

func (v Deque[T]) Len() int {
	if v.d == nil {
		return 0
	}
	return v.d.Len()
}

// Front returns the element at the front.
func (v Deque[T]) Front() T { return v.d.Front() }

// Back returns the element at the back.
func (v Deque[T]) Back() T { return v.d.Back() }

// At returns the i-th element counting from the front. It panics when i is
// out of range.
func (v Deque[T]) At(i int) T { return v.d.At(i) }

// All iterates from front to back.
func (v Deque[T]) All() iter.Seq[T] {
	if v.d == nil {
		return func(func(T) bool) {}
	}
	return v.d.Iter()
}

// Equal reports whether both deques hold the same elements front to back.
// Elements are compared with reflect.DeepEqual; EqualDeques uses == instead.
func (v Deque[T]) Equal(other Deque[T]) bool {
	if v.Len() != other.Len() {
		return false
	}
	for i := range v.Len() {
		if !reflect.DeepEqual(v.d.At(i), other.d.At(i)) {
			return false
		}
	}
	return true
}

func (v Deque[T]) slice() []T {
	if v.d == nil {
		return nil
	}
	return v.d.AppendToSlice(make([]T, 0, v.d.Len()))
}

func (v Deque[T]) LogValue() slog.Value {
	return slog.AnyValue(v.slice())
}

func (v Deque[T]) typeName() string {
	return reflect.TypeOf(v).String()
}
