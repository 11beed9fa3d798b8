package nonempty

import (
	"cmp"
	"iter"
	"log/slog"
	"reflect"

	"github.com/tidwall/btree"
)

// SortedMap is an ordered map with at least one entry. Keys iterate in
// ascending order.
// The zero value holds no tree and is not constructed.
type SortedMap[K cmp.Ordered, V any] struct {
	_ [0]func()
	m *btree.Map[K, V]
}

// NewSortedMap wraps m after checking that it has an entry. A nil map is
// empty.
func NewSortedMap[K cmp.Ordered, V any](m *btree.Map[K, V]) (SortedMap[K, V], error) {
	if err := checkSortedMap(m); err != nil {
		return SortedMap[K, V]{}, err
	}
	return SortedMap[K, V]{m: m}, nil
}

// SortedMapOf builds a SortedMap from a populated map[K]V.
func SortedMapOf[K cmp.Ordered, V any](entries map[K]V) (SortedMap[K, V], error) {
	m := new(btree.Map[K, V])
	for k, val := range entries {
		m.Set(k, val)
	}
	return NewSortedMap(m)
}

// UncheckedSortedMap wraps m without checking it. The caller must guarantee
// that m is not nil and not empty.
func UncheckedSortedMap[K cmp.Ordered, V any](m *btree.Map[K, V]) SortedMap[K, V] {
	return SortedMap[K, V]{m: m}
}

func checkSortedMap[K cmp.Ordered, V any](m *btree.Map[K, V]) error {
	if m == nil {
		return Check[K](nil)
	}
	return Check(scanKeys(m))
}

func scanKeys[K cmp.Ordered, V any](m *btree.Map[K, V]) iter.Seq[K] {
	return func(yield func(K) bool) {
		m.Scan(func(k K, _ V) bool { return yield(k) })
	}
}

// Value returns the wrapped tree.
func (v SortedMap[K, V]) Value() *btree.Map[K, V] { return v.m }

// Validate re-runs the emptiness check.
func (v SortedMap[K, V]) Validate() error {
	return checkSortedMap(v.m)
}

func (v SortedMap[K, V]) Len() int {
	if v.m == nil {
		return 0
	}
	return v.m.Len()
}

// Get looks up key.
func (v SortedMap[K, V]) Get(key K) (V, bool) {
	if v.m == nil {
		var zero V
		return zero, false
	}
	return v.m.Get(key)
}

// Min returns the entry with the smallest key.
func (v SortedMap[K, V]) Min() (K, V) {
	k, val, _ := v.m.Min()
	return k, val
}

// Max returns the entry with the largest key.
func (v SortedMap[K, V]) Max() (K, V) {
	k, val, _ := v.m.Max()
	return k, val
}

// All iterates over the entries in ascending key order.
func (v SortedMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if v.m != nil {
			v.m.Scan(yield)
		}
	}
}

// Equal reports whether both maps hold the same entries. Values are compared
// with reflect.DeepEqual.
func (v SortedMap[K, V]) Equal(other SortedMap[K, V]) bool {
	if v.Len() != other.Len() {
		return false
	}
	next, stop := iter.Pull2(other.All())
	defer stop()
	for k, val := range v.All() {
		key, oval, ok := next()
		if !ok || key != k || !reflect.DeepEqual(val, oval) {
			return false
		}
	}
	return true
}

func (v SortedMap[K, V]) entries() map[K]V {
	if v.m == nil {
		return nil
	}
	out := make(map[K]V, v.m.Len())
	for k, val := range v.All() {
		out[k] = val
	}
	return out
}

func (v SortedMap[K, V]) LogValue() slog.Value {
	return slog.AnyValue(v.entries())
}

func (v SortedMap[K, V]) typeName() string {
	return reflect.TypeOf(v).String()
}

// SortedSet is an ordered set of unique elements with at least one member.
// Members iterate in ascending order.
// The zero value holds no tree and is not constructed.
type SortedSet[T cmp.Ordered] struct {
	_   [0]func()
	set *btree.Set[T]
}

// NewSortedSet wraps set after checking that it has a member. A nil set is
// empty.
func NewSortedSet[T cmp.Ordered](set *btree.Set[T]) (SortedSet[T], error) {
	if err := checkSortedSet(set); err != nil {
		return SortedSet[T]{}, err
	}
	return SortedSet[T]{set: set}, nil
}

// SortedSetOf builds a SortedSet from its members. Duplicates collapse.
func SortedSetOf[T cmp.Ordered](first T, rest ...T) SortedSet[T] {
	set := new(btree.Set[T])
	set.Insert(first)
	for _, elem := range rest {
		set.Insert(elem)
	}
	return SortedSet[T]{set: set}
}

// UncheckedSortedSet wraps set without checking it. The caller must guarantee
// that set is not nil and not empty.
func UncheckedSortedSet[T cmp.Ordered](set *btree.Set[T]) SortedSet[T] {
	return SortedSet[T]{set: set}
}

func checkSortedSet[T cmp.Ordered](set *btree.Set[T]) error {
	if set == nil {
		return Check[T](nil)
	}
	return Check(iter.Seq[T](set.Scan))
}

// Value returns the wrapped tree.
func (v SortedSet[T]) Value() *btree.Set[T] { return v.set }

// Validate re-runs the emptiness check.
func (v SortedSet[T]) Validate() error {
	return checkSortedSet(v.set)
}

func (v SortedSet[T]) Len() int {
	if v.set == nil {
		return 0
	}
	return v.set.Len()
}

func (v SortedSet[T]) Contains(elem T) bool {
	return v.set != nil && v.set.Contains(elem)
}

// Min returns the smallest member.
func (v SortedSet[T]) Min() T {
	elem, _ := v.set.Min()
	return elem
}

// Max returns the largest member.
func (v SortedSet[T]) Max() T {
	elem, _ := v.set.Max()
	return elem
}

// All iterates over the members in ascending order.
func (v SortedSet[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		if v.set != nil {
			v.set.Scan(yield)
		}
	}
}

// Equal reports whether both sets hold the same members.
func (v SortedSet[T]) Equal(other SortedSet[T]) bool {
	if v.Len() != other.Len() {
		return false
	}
	next, stop := iter.Pull(other.All())
	defer stop()
	for elem := range v.All() {
		got, ok := next()
		if !ok || got != elem {
			return false
		}
	}
	return true
}

func (v SortedSet[T]) slice() []T {
	if v.set == nil {
		return nil
	}
	return v.set.Keys()
}

func (v SortedSet[T]) LogValue() slog.Value {
	return slog.AnyValue(v.slice())
}

func (v SortedSet[T]) typeName() string {
	return reflect.TypeOf(v).String()
}
