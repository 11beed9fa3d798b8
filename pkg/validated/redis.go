package validated

import (
	"encoding"

	"github.com/redis/go-redis/v9"
)

var (
	_ encoding.BinaryMarshaler   = NonBlankString{}
	_ encoding.BinaryUnmarshaler = (*NonBlankString)(nil)
	_ redis.Scanner              = (*NonBlankString)(nil)
)

// MarshalBinary writes the raw text, so a String can be passed straight to
// SET or HSET.
func (v String[R]) MarshalBinary() ([]byte, error) {
	return []byte(v.s), nil
}

// UnmarshalBinary reads a go-redis reply (StringCmd.Scan). The text is not
// trimmed.
func (v *String[R]) UnmarshalBinary(data []byte) error {
	return v.decode("redis", string(data), nil)
}

// ScanRedis reads a hash field (MapStringStringCmd.Scan).
func (v *String[R]) ScanRedis(s string) error {
	return v.decode("redis", s, nil)
}
