package bounded

import (
	"encoding"

	"github.com/redis/go-redis/v9"
)

var (
	_ encoding.BinaryMarshaler   = Percentage{}
	_ encoding.BinaryUnmarshaler = (*Percentage)(nil)
	_ redis.Scanner              = (*Percentage)(nil)
)

// MarshalBinary writes the number in its text form, the way go-redis writes
// plain numbers, so it can be passed straight to SET or HSET.
func (n Number[T, R]) MarshalBinary() ([]byte, error) {
	return n.MarshalText()
}

// UnmarshalBinary reads a go-redis reply (StringCmd.Scan). The reply must be
// exactly the number, with no surrounding whitespace.
func (n *Number[T, R]) UnmarshalBinary(data []byte) error {
	v, err := parse[T](string(data))
	return n.decode("redis", v, err)
}

// ScanRedis reads a hash field (MapStringStringCmd.Scan).
func (n *Number[T, R]) ScanRedis(s string) error {
	return n.UnmarshalBinary([]byte(s))
}
