package nonempty

import (
	"iter"
	"log/slog"
	"maps"
	"reflect"
)

// Map is a map with at least one entry.
// The zero value holds a nil map and is not constructed.
type Map[K comparable, V any] struct {
	m map[K]V
}

// NewMap wraps m after checking that it has an entry.
func NewMap[K comparable, V any](m map[K]V) (Map[K, V], error) {
	if err := Check(maps.Keys(m)); err != nil {
		return Map[K, V]{}, err
	}
	return Map[K, V]{m: m}, nil
}

// UncheckedMap wraps m without checking it. The caller must guarantee that m
// is not empty.
func UncheckedMap[K comparable, V any](m map[K]V) Map[K, V] {
	return Map[K, V]{m: m}
}

// Value returns the wrapped map.
func (v Map[K, V]) Value() map[K]V { return v.m }

// Validate re-runs the emptiness check.
func (v Map[K, V]) Validate() error {
	return Check(maps.Keys(v.m))
}

func (v Map[K, V]) Len() int { return len(v.m) }

// Get looks up key.
func (v Map[K, V]) Get(key K) (V, bool) {
	val, ok := v.m[key]
	return val, ok
}

// All iterates over the entries in unspecified order.
func (v Map[K, V]) All() iter.Seq2[K, V] { return maps.All(v.m) }

func (v Map[K, V]) LogValue() slog.Value {
	return slog.AnyValue(v.m)
}

func (v Map[K, V]) typeName() string {
	return reflect.TypeOf(v).String()
}
