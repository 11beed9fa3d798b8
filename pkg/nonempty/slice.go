package nonempty

import (
	"iter"
	"log/slog"
	"reflect"
	"slices"
)

// Slice is a slice with at least one element.
// The zero value holds nil and is not constructed.
type Slice[T any] struct {
	s []T
}

// NewSlice wraps s after checking that it has an element.
func NewSlice[T any](s []T) (Slice[T], error) {
	if err := Check(slices.Values(s)); err != nil {
		return Slice[T]{}, err
	}
	return Slice[T]{s: s}, nil
}

// SliceOf builds a Slice from its elements. It cannot fail.
func SliceOf[T any](first T, rest ...T) Slice[T] {
	s := make([]T, 0, len(rest)+1)
	s = append(s, first)
	return Slice[T]{s: append(s, rest...)}
}

// UncheckedSlice wraps s without checking it. The caller must guarantee that
// s is not empty.
func UncheckedSlice[T any](s []T) Slice[T] {
	return Slice[T]{s: s}
}

// Value returns the wrapped slice.
func (v Slice[T]) Value() []T { return v.s }

// Validate re-runs the emptiness check.
func (v Slice[T]) Validate() error {
	return Check(slices.Values(v.s))
}

func (v Slice[T]) Len() int { return len(v.s) }

// First returns the first element.
func (v Slice[T]) First() T { return v.s[0] }

// Last returns the last element.
func (v Slice[T]) Last() T { return v.s[len(v.s)-1] }

// All iterates over index/element pairs in order.
func (v Slice[T]) All() iter.Seq2[int, T] { return slices.All(v.s) }

func (v Slice[T]) LogValue() slog.Value {
	return slog.AnyValue(v.s)
}

func (v Slice[T]) typeName() string {
	return reflect.TypeOf(v).String()
}
