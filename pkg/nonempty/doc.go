// Package nonempty provides collections that always hold at least one
// element.
//
// Six wrappers cover the common container shapes:
//
//   - Slice[T] over []T
//   - Map[K, V] over map[K]V
//   - Set[T] over mapset.Set[T] (github.com/deckarep/golang-set/v2)
//   - Deque[T] over *deque.Deque[T] (github.com/gammazero/deque)
//   - SortedMap[K, V] over *btree.Map[K, V] (github.com/tidwall/btree)
//   - SortedSet[T] over *btree.Set[T] (github.com/tidwall/btree)
//
// All of them are validated by the same predicate, Check, which only asks
// whether an iter.Seq yields anything. Adding a wrapper for another container
// means adapting it to iter.Seq, not writing a new rule.
//
// The wrappers take ownership of the container they are given and do not copy
// it. None of them exposes a removal operation, but Value returns the inner
// container, and emptying it through that reference breaks the guarantee.
//
// The wrappers cannot be compared with ==. Use the Equal methods or the
// Equal... functions, which compare contents.
//
// # Usage
//
//	ids, err := nonempty.NewSlice(requested)
//	if err != nil {
//	    return err // collection is empty
//	}
//	first := ids.First() // never panics
//
//	tags := nonempty.SetOf("go", "generics")
//
// # Serialization
//
// Every wrapper encodes as its inner container in JSON, YAML and BSON. Sets
// and deques become arrays, sorted sets in ascending order, and sorted maps
// become objects with keys in ascending order. Redis (go-redis) stores every wrapper as its JSON encoding.
// Decoding an empty container or an explicit null fails with a
// *constraint.DecodeError.
package nonempty
