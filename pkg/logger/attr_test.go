package logger_test

import (
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valuekit/pkg/bounded"
	"github.com/dmitrymomot/valuekit/pkg/logger"
	"github.com/dmitrymomot/valuekit/pkg/validated"
)

type score struct{}

func (score) Min() int32 { return -10 }
func (score) Max() int32 { return 10 }

func groupMap(t *testing.T, attr slog.Attr) map[string]any {
	t.Helper()
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	out := make(map[string]any)
	for _, a := range attr.Value.Group() {
		out[a.Key] = a.Value.Any()
	}
	return out
}

func TestGroup(t *testing.T) {
	t.Parallel()

	attr := logger.Group("req", slog.String("id", "1"), slog.Int("n", 2))
	require.Equal(t, "req", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	t.Parallel()

	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)

	assert.True(t, logger.Errors(nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestField(t *testing.T) {
	t.Parallel()

	attr := logger.Field("name", validated.Must[validated.NonBlank]("Ada"))
	assert.Equal(t, "name", attr.Key)
	assert.Equal(t, "Ada", attr.Value.Resolve().String())
}

func TestViolation(t *testing.T) {
	t.Parallel()

	t.Run("range error", func(t *testing.T) {
		t.Parallel()

		_, err := bounded.New[score](int32(11))
		attr := logger.Violation(err)
		require.Equal(t, "violation", attr.Key)
		assert.Equal(t, map[string]any{
			"kind":    "TooHigh",
			"message": "11 is too high (range: -10..10)",
			"min":     int64(-10),
			"max":     int64(10),
			"value":   int64(11),
		}, groupMap(t, attr))
	})

	t.Run("wrapped blank error keeps context", func(t *testing.T) {
		t.Parallel()

		_, err := validated.NewNonBlank("  ")
		wrapped := fmt.Errorf("rename: %w", err)

		got := groupMap(t, logger.Violation(wrapped))
		assert.Equal(t, "Blank", got["kind"])
		assert.Equal(t, "string", got["subject"])
		assert.Equal(t, "  ", got["value"])
		assert.Equal(t, "rename: string is blank (content: `  `)", got["error"])
	})

	t.Run("no violation", func(t *testing.T) {
		t.Parallel()

		assert.True(t, logger.Violation(errors.New("plain")).Equal(slog.Attr{}))
		assert.True(t, logger.Violation(nil).Equal(slog.Attr{}))
	})
}
