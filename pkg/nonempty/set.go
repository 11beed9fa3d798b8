package nonempty

import (
	"iter"
	"log/slog"
	"reflect"

	mapset "github.com/deckarep/golang-set/v2"
)

// Set is a hashed set of unique elements with at least one member.
// The zero value holds no set and is not constructed.
type Set[T comparable] struct {
	_   [0]func()
	set mapset.Set[T]
}

// NewSet wraps set after checking that it has a member. A nil set is empty.
func NewSet[T comparable](set mapset.Set[T]) (Set[T], error) {
	if err := checkSet(set); err != nil {
		return Set[T]{}, err
	}
	return Set[T]{set: set}, nil
}

// SetOf builds a thread-safe Set from its members. Duplicates collapse.
func SetOf[T comparable](first T, rest ...T) Set[T] {
	set := mapset.NewSetWithSize[T](len(rest) + 1)
	set.Add(first)
	set.Append(rest...)
	return Set[T]{set: set}
}

// UncheckedSet wraps set without checking it. The caller must guarantee that
// set is not nil and not empty.
func UncheckedSet[T comparable](set mapset.Set[T]) Set[T] {
	return Set[T]{set: set}
}

func checkSet[T comparable](set mapset.Set[T]) error {
	if set == nil {
		return Check[T](nil)
	}
	return Check(iter.Seq[T](mapset.Elements(set)))
}

// Value returns the wrapped set.
func (v Set[T]) Value() mapset.Set[T] { return v.set }

// Validate re-runs the emptiness check.
func (v Set[T]) Validate() error {
	return checkSet(v.set)
}

func (v Set[T]) Len() int {
	if v.set == nil {
		return 0
	}
	return v.set.Cardinality()
}

func (v Set[T]) Contains(elem T) bool {
	return v.set != nil && v.set.ContainsOne(elem)
}

// All iterates over the members in unspecified order.
func (v Set[T]) All() iter.Seq[T] {
	if v.set == nil {
		return func(func(T) bool) {}
	}
	return mapset.Elements(v.set)
}

// Equal reports whether both sets hold the same members.
func (v Set[T]) Equal(other Set[T]) bool {
	if v.set == nil || other.set == nil {
		return v.set == nil && other.set == nil
	}
	return v.set.Equal(other.set)
}

// slice copies the members out, for codecs that have no notion of a set.
func (v Set[T]) slice() []T {
	if v.set == nil {
		return nil
	}
	return v.set.ToSlice()
}

func (v Set[T]) LogValue() slog.Value {
	return slog.AnyValue(v.slice())
}

func (v Set[T]) typeName() string {
	return reflect.TypeOf(v).String()
}
