package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/valuekit/pkg/constraint"
)

func TestContentError(t *testing.T) {
	t.Parallel()

	t.Run("empty string", func(t *testing.T) {
		err := constraint.Empty(constraint.SubjectString)
		assert.Equal(t, "string is empty", err.Error())
		assert.Equal(t, constraint.KindEmpty, err.Kind())
		assert.ErrorIs(t, err, constraint.ErrEmpty)
		assert.NotErrorIs(t, err, constraint.ErrBlank)
		assert.Equal(t, "constraint.empty", err.TranslationKey())
		assert.Equal(t, map[string]any{"subject": "string"}, err.TranslationValues())
	})

	t.Run("empty collection", func(t *testing.T) {
		err := constraint.Empty(constraint.SubjectCollection)
		assert.Equal(t, "collection is empty", err.Error())
		assert.Empty(t, err.Value)
	})

	t.Run("blank keeps original text", func(t *testing.T) {
		err := constraint.Blank(" \t")
		assert.Equal(t, "string is blank (content: ` \t`)", err.Error())
		assert.Equal(t, " \t", err.Value)
		assert.Equal(t, constraint.KindBlank, err.Kind())
		assert.ErrorIs(t, err, constraint.ErrBlank)
		assert.NotErrorIs(t, err, constraint.ErrEmpty)
		assert.Equal(t, map[string]any{"subject": "string", "value": " \t"}, err.TranslationValues())
	})
}

func TestKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TooLow", constraint.KindTooLow.String())
	assert.Equal(t, "TooHigh", constraint.KindTooHigh.String())
	assert.Equal(t, "Empty", constraint.KindEmpty.String())
	assert.Equal(t, "Blank", constraint.KindBlank.String())
	assert.Equal(t, "Unknown", constraint.KindUnknown.String())
	assert.Equal(t, "constraint.too_high", constraint.KindTooHigh.TranslationKey())
	assert.Equal(t, "constraint.invalid", constraint.KindUnknown.TranslationKey())
}
