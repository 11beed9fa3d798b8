package nonempty

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/valuekit/pkg/constraint"
)

func marshalBSON(v any) (byte, []byte, error) {
	t, data, err := bson.MarshalValue(v)
	return byte(t), data, err
}

func isBSONNull(typ byte) bool {
	return bson.Type(typ) == bson.TypeNull
}

func (v Slice[T]) MarshalBSONValue() (byte, []byte, error) {
	return marshalBSON(v.s)
}

func (v *Slice[T]) UnmarshalBSONValue(typ byte, data []byte) error {
	if isBSONNull(typ) {
		return constraint.Decode("bson", v.typeName(), constraint.ErrNull)
	}
	var s []T
	err := bson.UnmarshalValue(bson.Type(typ), data, &s)
	return v.decode("bson", s, err)
}

func (v Map[K, V]) MarshalBSONValue() (byte, []byte, error) {
	return marshalBSON(v.m)
}

func (v *Map[K, V]) UnmarshalBSONValue(typ byte, data []byte) error {
	if isBSONNull(typ) {
		return constraint.Decode("bson", v.typeName(), constraint.ErrNull)
	}
	var m map[K]V
	err := bson.UnmarshalValue(bson.Type(typ), data, &m)
	return v.decode("bson", m, err)
}

func (v Set[T]) MarshalBSONValue() (byte, []byte, error) {
	return marshalBSON(v.slice())
}

func (v *Set[T]) UnmarshalBSONValue(typ byte, data []byte) error {
	if isBSONNull(typ) {
		return constraint.Decode("bson", v.typeName(), constraint.ErrNull)
	}
	var elems []T
	err := bson.UnmarshalValue(bson.Type(typ), data, &elems)
	return v.decode("bson", elems, err)
}

func (v Deque[T]) MarshalBSONValue() (byte, []byte, error) {
	return marshalBSON(v.slice())
}

func (v *Deque[T]) UnmarshalBSONValue(typ byte, data []byte) error {
	if isBSONNull(typ) {
		return constraint.Decode("bson", v.typeName(), constraint.ErrNull)
	}
	var elems []T
	err := bson.UnmarshalValue(bson.Type(typ), data, &elems)
	return v.decode("bson", elems, err)
}

// MarshalBSONValue encodes the entries as an embedded document with fields in
// ascending key order.
func (v SortedMap[K, V]) MarshalBSONValue() (byte, []byte, error) {
	if v.m == nil {
		return marshalBSON(map[K]V(nil))
	}
	doc := make(bson.D, 0, v.m.Len())
	for k, val := range v.All() {
		key, err := entryKey(k)
		if err != nil {
			return 0, nil, err
		}
		doc = append(doc, bson.E{Key: key, Value: val})
	}
	return marshalBSON(doc)
}

func (v *SortedMap[K, V]) UnmarshalBSONValue(typ byte, data []byte) error {
	if isBSONNull(typ) {
		return constraint.Decode("bson", v.typeName(), constraint.ErrNull)
	}
	var entries map[K]V
	err := bson.UnmarshalValue(bson.Type(typ), data, &entries)
	return v.decode("bson", entries, err)
}

func (v SortedSet[T]) MarshalBSONValue() (byte, []byte, error) {
	return marshalBSON(v.slice())
}

func (v *SortedSet[T]) UnmarshalBSONValue(typ byte, data []byte) error {
	if isBSONNull(typ) {
		return constraint.Decode("bson", v.typeName(), constraint.ErrNull)
	}
	var elems []T
	err := bson.UnmarshalValue(bson.Type(typ), data, &elems)
	return v.decode("bson", elems, err)
}
