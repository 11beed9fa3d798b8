package nonempty

import (
	"bytes"
	"cmp"
	"encoding"
	"encoding/json"
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/gammazero/deque"
	"github.com/tidwall/btree"

	"github.com/dmitrymomot/valuekit/pkg/constraint"
)

var jsonNull = []byte("null")

func isJSONNull(data []byte) bool {
	return bytes.Equal(bytes.TrimSpace(data), jsonNull)
}

// The decode helpers run the constructor on a freshly decoded container and
// store it. Every codec goes through them.

func (v *Slice[T]) decode(format string, s []T, err error) error {
	if err == nil {
		err = Check(slices.Values(s))
	}
	if err != nil {
		return constraint.Decode(format, v.typeName(), err)
	}
	v.s = s
	return nil
}

func (v *Map[K, V]) decode(format string, m map[K]V, err error) error {
	if err == nil {
		err = Check(maps.Keys(m))
	}
	if err != nil {
		return constraint.Decode(format, v.typeName(), err)
	}
	v.m = m
	return nil
}

func (v *Set[T]) decode(format string, elems []T, err error) error {
	if err == nil {
		err = Check(slices.Values(elems))
	}
	if err != nil {
		return constraint.Decode(format, v.typeName(), err)
	}
	v.set = mapset.NewSet(elems...)
	return nil
}

func (v *Deque[T]) decode(format string, elems []T, err error) error {
	if err == nil {
		err = Check(slices.Values(elems))
	}
	if err != nil {
		return constraint.Decode(format, v.typeName(), err)
	}
	d := new(deque.Deque[T])
	for _, elem := range elems {
		d.PushBack(elem)
	}
	v.d = d
	return nil
}

func (v *SortedMap[K, V]) decode(format string, entries map[K]V, err error) error {
	if err == nil {
		err = Check(maps.Keys(entries))
	}
	if err != nil {
		return constraint.Decode(format, v.typeName(), err)
	}
	m := new(btree.Map[K, V])
	for k, val := range entries {
		m.Set(k, val)
	}
	v.m = m
	return nil
}

func (v *SortedSet[T]) decode(format string, elems []T, err error) error {
	if err == nil {
		err = Check(slices.Values(elems))
	}
	if err != nil {
		return constraint.Decode(format, v.typeName(), err)
	}
	set := new(btree.Set[T])
	for _, elem := range elems {
		set.Insert(elem)
	}
	v.set = set
	return nil
}

func (v Slice[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.s)
}

func (v *Slice[T]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return constraint.Decode("json", v.typeName(), constraint.ErrNull)
	}
	var s []T
	err := json.Unmarshal(data, &s)
	return v.decode("json", s, err)
}

func (v Map[K, V]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.m)
}

func (v *Map[K, V]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return constraint.Decode("json", v.typeName(), constraint.ErrNull)
	}
	var m map[K]V
	err := json.Unmarshal(data, &m)
	return v.decode("json", m, err)
}

// MarshalJSON encodes the members as an array in unspecified order.
func (v Set[T]) MarshalJSON() ([]byte, error) {
	if v.set == nil {
		return jsonNull, nil
	}
	return v.set.MarshalJSON()
}

func (v *Set[T]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return constraint.Decode("json", v.typeName(), constraint.ErrNull)
	}
	var elems []T
	err := json.Unmarshal(data, &elems)
	return v.decode("json", elems, err)
}

// MarshalJSON encodes the elements as an array, front first.
func (v Deque[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.slice())
}

func (v *Deque[T]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return constraint.Decode("json", v.typeName(), constraint.ErrNull)
	}
	var elems []T
	err := json.Unmarshal(data, &elems)
	return v.decode("json", elems, err)
}

// MarshalJSON encodes the entries as an object with keys in ascending order.
func (v SortedMap[K, V]) MarshalJSON() ([]byte, error) {
	if v.m == nil {
		return jsonNull, nil
	}

	var buf bytes.Buffer
	buf.WriteByte('{')
	for k, val := range v.All() {
		key, err := entryKey(k)
		if err != nil {
			return nil, err
		}
		name, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		data, err := json.Marshal(val)
		if err != nil {
			return nil, err
		}
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		buf.Write(name)
		buf.WriteByte(':')
		buf.Write(data)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// entryKey renders a map key as a document field name, following the rules
// shared by encoding/json and bson: string kinds as they are, then text
// marshalers, then integers in base 10.
func entryKey[K cmp.Ordered](k K) (string, error) {
	rv := reflect.ValueOf(k)
	if rv.Kind() == reflect.String {
		return rv.String(), nil
	}
	if tm, ok := any(k).(encoding.TextMarshaler); ok {
		text, err := tm.MarshalText()
		return string(text), err
	}
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	}
	return "", fmt.Errorf("unsupported map key type: %s", rv.Type())
}

func (v *SortedMap[K, V]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return constraint.Decode("json", v.typeName(), constraint.ErrNull)
	}
	var entries map[K]V
	err := json.Unmarshal(data, &entries)
	return v.decode("json", entries, err)
}

// MarshalJSON encodes the members as an ascending array.
func (v SortedSet[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.slice())
}

func (v *SortedSet[T]) UnmarshalJSON(data []byte) error {
	if isJSONNull(data) {
		return constraint.Decode("json", v.typeName(), constraint.ErrNull)
	}
	var elems []T
	err := json.Unmarshal(data, &elems)
	return v.decode("json", elems, err)
}
