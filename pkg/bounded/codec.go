package bounded

import (
	"bytes"
	"encoding/json"

	"github.com/dmitrymomot/valuekit/pkg/constraint"
)

var jsonNull = []byte("null")

// decode runs the validating constructor on a freshly decoded value and stores
// the result. Every codec below goes through it.
func (n *Number[T, R]) decode(format string, v T, err error) error {
	if err == nil {
		err = check[R](v)
	}
	if err != nil {
		return constraint.Decode(format, n.typeName(), err)
	}
	n.v = v
	return nil
}

func (n Number[T, R]) MarshalJSON() ([]byte, error) {
	return json.Marshal(n.v)
}

func (n *Number[T, R]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return constraint.Decode("json", n.typeName(), constraint.ErrNull)
	}
	var v T
	err := json.Unmarshal(data, &v)
	return n.decode("json", v, err)
}

func (n Number[T, R]) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

// UnmarshalText parses text exactly as strconv does. Surrounding whitespace
// is rejected, not trimmed.
func (n *Number[T, R]) UnmarshalText(text []byte) error {
	v, err := parse[T](string(text))
	return n.decode("text", v, err)
}
