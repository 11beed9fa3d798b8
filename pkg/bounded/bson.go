package bounded

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/valuekit/pkg/constraint"
)

func (n Number[T, R]) MarshalBSONValue() (byte, []byte, error) {
	t, data, err := bson.MarshalValue(n.v)
	return byte(t), data, err
}

func (n *Number[T, R]) UnmarshalBSONValue(typ byte, data []byte) error {
	if bson.Type(typ) == bson.TypeNull {
		return constraint.Decode("bson", n.typeName(), constraint.ErrNull)
	}
	var v T
	err := bson.UnmarshalValue(bson.Type(typ), data, &v)
	return n.decode("bson", v, err)
}
