package bounded_test

import (
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valuekit/pkg/bounded"
	"github.com/dmitrymomot/valuekit/pkg/constraint"
)

type redisLimits struct {
	Port  bounded.PortNumber  `redis:"port"`
	Ratio bounded.Probability `redis:"ratio"`
}

func TestRedis(t *testing.T) {
	t.Parallel()

	t.Run("marshals as text", func(t *testing.T) {
		t.Parallel()

		data, err := bounded.Must[bounded.Port](uint16(443)).MarshalBinary()
		require.NoError(t, err)
		assert.Equal(t, "443", string(data))
	})

	t.Run("scans a string reply", func(t *testing.T) {
		t.Parallel()

		var p bounded.Percentage
		require.NoError(t, redis.NewStringResult("42", nil).Scan(&p))
		assert.Equal(t, 42, p.Value())

		err := redis.NewStringResult("142", nil).Scan(&p)
		assert.ErrorIs(t, err, constraint.ErrTooHigh)

		var derr *constraint.DecodeError
		require.True(t, errors.As(err, &derr))
		assert.Equal(t, "redis", derr.Format)
		assert.Equal(t, 42, p.Value())
	})

	t.Run("rejects padded replies", func(t *testing.T) {
		t.Parallel()

		var p bounded.Percentage
		err := redis.NewStringResult(" 42", nil).Scan(&p)
		assert.ErrorIs(t, err, constraint.ErrDecode)
		assert.Equal(t, 0, p.Value())
	})

	t.Run("redis errors pass through", func(t *testing.T) {
		t.Parallel()

		var p bounded.Percentage
		assert.ErrorIs(t, redis.NewStringResult("", redis.Nil).Scan(&p), redis.Nil)
	})

	t.Run("scans hash fields", func(t *testing.T) {
		t.Parallel()

		var l redisLimits
		cmd := redis.NewMapStringStringResult(map[string]string{"port": "8080", "ratio": "0.25"}, nil)
		require.NoError(t, cmd.Scan(&l))
		assert.Equal(t, uint16(8080), l.Port.Value())
		assert.Equal(t, 0.25, l.Ratio.Value())

		cmd = redis.NewMapStringStringResult(map[string]string{"port": "0"}, nil)
		assert.ErrorIs(t, cmd.Scan(&l), constraint.ErrTooLow)
	})
}
