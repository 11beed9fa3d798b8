package validated

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/dmitrymomot/valuekit/pkg/constraint"
)

func (v String[R]) MarshalBSONValue() (byte, []byte, error) {
	t, data, err := bson.MarshalValue(v.s)
	return byte(t), data, err
}

func (v *String[R]) UnmarshalBSONValue(typ byte, data []byte) error {
	if bson.Type(typ) == bson.TypeNull {
		return constraint.Decode("bson", v.typeName(), constraint.ErrNull)
	}
	var s string
	err := bson.UnmarshalValue(bson.Type(typ), data, &s)
	return v.decode("bson", s, err)
}
