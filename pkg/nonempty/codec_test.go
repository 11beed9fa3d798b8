package nonempty_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/valuekit/pkg/constraint"
	"github.com/dmitrymomot/valuekit/pkg/nonempty"
)

type order struct {
	Items  nonempty.Slice[string]    `json:"items" yaml:"items" bson:"items"`
	Prices nonempty.Map[string, int] `json:"prices" yaml:"prices" bson:"prices"`
	Tags   nonempty.Set[string]      `json:"tags" yaml:"tags" bson:"tags"`
	Steps  nonempty.Deque[int]       `json:"steps" yaml:"steps" bson:"steps"`
}

func validOrder() order {
	return order{
		Items:  nonempty.SliceOf("apple", "pear"),
		Prices: nonempty.UncheckedMap(map[string]int{"apple": 3}),
		Tags:   nonempty.SetOf("fresh"),
		Steps:  nonempty.DequeOf(1, 2, 3),
	}
}

func assertSameOrder(t *testing.T, want, got order) {
	t.Helper()
	assert.True(t, nonempty.EqualSlices(want.Items, got.Items), "items")
	assert.True(t, nonempty.EqualMaps(want.Prices, got.Prices), "prices")
	assert.True(t, want.Tags.Equal(got.Tags), "tags")
	assert.True(t, nonempty.EqualDeques(want.Steps, got.Steps), "steps")
}

func TestJSON(t *testing.T) {
	t.Parallel()

	t.Run("encodes as the inner container", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(validOrder())
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"items": ["apple", "pear"],
			"prices": {"apple": 3},
			"tags": ["fresh"],
			"steps": [1, 2, 3]
		}`, string(data))
	})

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		in := validOrder()
		data, err := json.Marshal(in)
		require.NoError(t, err)

		var out order
		require.NoError(t, json.Unmarshal(data, &out))
		assertSameOrder(t, in, out)
	})

	t.Run("rejects empty containers", func(t *testing.T) {
		t.Parallel()

		cases := map[string]string{
			"slice": `{"items": []}`,
			"map":   `{"prices": {}}`,
			"set":   `{"tags": []}`,
			"deque": `{"steps": []}`,
		}
		for name, doc := range cases {
			var out order
			err := json.Unmarshal([]byte(doc), &out)
			assert.ErrorIs(t, err, constraint.ErrEmpty, name)
			assert.ErrorIs(t, err, constraint.ErrDecode, name)
		}
	})

	t.Run("rejects null", func(t *testing.T) {
		t.Parallel()

		var s nonempty.Slice[int]
		assert.ErrorIs(t, json.Unmarshal([]byte("null"), &s), constraint.ErrNull)

		var m nonempty.Map[string, int]
		assert.ErrorIs(t, json.Unmarshal([]byte("null"), &m), constraint.ErrNull)
	})

	t.Run("set collapses duplicates", func(t *testing.T) {
		t.Parallel()

		var s nonempty.Set[int]
		require.NoError(t, json.Unmarshal([]byte("[1,1,1]"), &s))
		assert.Equal(t, 1, s.Len())
	})

	t.Run("failed decode keeps the previous value", func(t *testing.T) {
		t.Parallel()

		s := nonempty.SliceOf(1)
		require.Error(t, json.Unmarshal([]byte("[]"), &s))
		assert.Equal(t, []int{1}, s.Value())
	})
}

func TestYAML(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		in := validOrder()
		data, err := yaml.Marshal(in)
		require.NoError(t, err)

		var out order
		require.NoError(t, yaml.Unmarshal(data, &out))
		assertSameOrder(t, in, out)
	})

	t.Run("rejects empty containers", func(t *testing.T) {
		t.Parallel()

		for _, doc := range []string{"items: []\n", "prices: {}\n", "tags: []\n", "steps: []\n"} {
			var out order
			assert.ErrorIs(t, yaml.Unmarshal([]byte(doc), &out), constraint.ErrEmpty, doc)
		}
	})
}

func TestBSON(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()

		in := validOrder()
		data, err := bson.Marshal(in)
		require.NoError(t, err)

		var out order
		require.NoError(t, bson.Unmarshal(data, &out))
		assertSameOrder(t, in, out)
	})

	t.Run("rejects empty containers", func(t *testing.T) {
		t.Parallel()

		docs := []bson.D{
			{{Key: "items", Value: bson.A{}}},
			{{Key: "prices", Value: bson.D{}}},
			{{Key: "tags", Value: bson.A{}}},
			{{Key: "steps", Value: bson.A{}}},
		}
		for _, doc := range docs {
			data, err := bson.Marshal(doc)
			require.NoError(t, err)

			var out order
			assert.ErrorIs(t, bson.Unmarshal(data, &out), constraint.ErrEmpty)
		}
	})

	t.Run("rejects null", func(t *testing.T) {
		t.Parallel()

		data, err := bson.Marshal(bson.D{{Key: "items", Value: nil}})
		require.NoError(t, err)

		var out order
		assert.ErrorIs(t, bson.Unmarshal(data, &out), constraint.ErrNull)
	})
}
