package nonempty

import (
	"encoding"
	"encoding/json"

	"github.com/redis/go-redis/v9"
)

// Collections are stored in Redis as their JSON encoding.

var (
	_ encoding.BinaryMarshaler   = Slice[string]{}
	_ encoding.BinaryUnmarshaler = (*Slice[string])(nil)
	_ redis.Scanner              = (*Slice[string])(nil)
	_ redis.Scanner              = (*Map[string, string])(nil)
	_ redis.Scanner              = (*Set[string])(nil)
	_ redis.Scanner              = (*Deque[string])(nil)
	_ redis.Scanner              = (*SortedMap[string, string])(nil)
	_ redis.Scanner              = (*SortedSet[string])(nil)
)

func (v Slice[T]) MarshalBinary() ([]byte, error) { return v.MarshalJSON() }

func (v *Slice[T]) UnmarshalBinary(data []byte) error {
	var s []T
	err := json.Unmarshal(data, &s)
	return v.decode("redis", s, err)
}

func (v *Slice[T]) ScanRedis(s string) error { return v.UnmarshalBinary([]byte(s)) }

func (v Map[K, V]) MarshalBinary() ([]byte, error) { return v.MarshalJSON() }

func (v *Map[K, V]) UnmarshalBinary(data []byte) error {
	var m map[K]V
	err := json.Unmarshal(data, &m)
	return v.decode("redis", m, err)
}

func (v *Map[K, V]) ScanRedis(s string) error { return v.UnmarshalBinary([]byte(s)) }

func (v Set[T]) MarshalBinary() ([]byte, error) { return v.MarshalJSON() }

func (v *Set[T]) UnmarshalBinary(data []byte) error {
	var elems []T
	err := json.Unmarshal(data, &elems)
	return v.decode("redis", elems, err)
}

func (v *Set[T]) ScanRedis(s string) error { return v.UnmarshalBinary([]byte(s)) }

func (v Deque[T]) MarshalBinary() ([]byte, error) { return v.MarshalJSON() }

func (v *Deque[T]) UnmarshalBinary(data []byte) error {
	var elems []T
	err := json.Unmarshal(data, &elems)
	return v.decode("redis", elems, err)
}

func (v *Deque[T]) ScanRedis(s string) error { return v.UnmarshalBinary([]byte(s)) }

func (v SortedMap[K, V]) MarshalBinary() ([]byte, error) { return v.MarshalJSON() }

func (v *SortedMap[K, V]) UnmarshalBinary(data []byte) error {
	var entries map[K]V
	err := json.Unmarshal(data, &entries)
	return v.decode("redis", entries, err)
}

func (v *SortedMap[K, V]) ScanRedis(s string) error { return v.UnmarshalBinary([]byte(s)) }

func (v SortedSet[T]) MarshalBinary() ([]byte, error) { return v.MarshalJSON() }

func (v *SortedSet[T]) UnmarshalBinary(data []byte) error {
	var elems []T
	err := json.Unmarshal(data, &elems)
	return v.decode("redis", elems, err)
}

func (v *SortedSet[T]) ScanRedis(s string) error { return v.UnmarshalBinary([]byte(s)) }
