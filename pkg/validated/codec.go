package validated

import (
	"bytes"
	"encoding/json"

	"github.com/dmitrymomot/valuekit/pkg/constraint"
)

var jsonNull = []byte("null")

func (v *String[R]) decode(format, s string, err error) error {
	if err == nil {
		var rule R
		err = rule.Validate(s)
	}
	if err != nil {
		return constraint.Decode(format, v.typeName(), err)
	}
	v.s = s
	return nil
}

func (v String[R]) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.s)
}

func (v *String[R]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return constraint.Decode("json", v.typeName(), constraint.ErrNull)
	}
	var s string
	err := json.Unmarshal(data, &s)
	return v.decode("json", s, err)
}

func (v String[R]) MarshalText() ([]byte, error) {
	return []byte(v.s), nil
}

func (v *String[R]) UnmarshalText(text []byte) error {
	return v.decode("text", string(text), nil)
}
