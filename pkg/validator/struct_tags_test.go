package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/valuekit/pkg/bounded"
	"github.com/dmitrymomot/valuekit/pkg/nonempty"
	"github.com/dmitrymomot/valuekit/pkg/validated"
	"github.com/dmitrymomot/valuekit/pkg/validator"
)

type discountForm struct {
	Code    validated.NonBlankString `json:"code" validate:"required,max=8"`
	Percent bounded.Percentage       `json:"percent" validate:"required,lte=50"`
	Items   nonempty.Slice[string]   `json:"items" validate:"required,max=3"`
	Note    string                   `json:"note,omitempty" validate:"omitempty,max=5"`
}

var discountValidator = validator.NewStructValidator(
	validated.NonBlankString{},
	bounded.Percentage{},
	nonempty.Slice[string]{},
	"not a constrained value",
)

func validateDiscount(s any) error {
	return validator.ValidateStruct(discountValidator, s)
}

func validDiscount() discountForm {
	return discountForm{
		Code:    validated.Must[validated.NonBlank]("SAVE10"),
		Percent: bounded.Must[bounded.Percent](20),
		Items:   nonempty.SliceOf("book"),
	}
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	t.Run("accepts a valid struct", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, validateDiscount(validDiscount()))
	})

	t.Run("tags apply to the inner value", func(t *testing.T) {
		t.Parallel()

		form := validDiscount()
		form.Code = validated.Must[validated.NonBlank]("LONGCODE1")
		form.Percent = bounded.Must[bounded.Percent](80)
		form.Items = nonempty.SliceOf("a", "b", "c", "d")

		errs := validator.ExtractValidationErrors(validateDiscount(form))
		require.NotNil(t, errs)
		assert.Equal(t, []string{"code", "percent", "items"}, errs.Fields())

		percent := errs.GetErrors("percent")
		require.Len(t, percent, 1)
		assert.Equal(t, "validation.lte", percent[0].TranslationKey)
		assert.Equal(t, "50", percent[0].TranslationValues["param"])
		assert.Equal(t, "percent", percent[0].TranslationValues["field"])
	})

	t.Run("zero wrappers fail required", func(t *testing.T) {
		t.Parallel()

		errs := validator.ExtractValidationErrors(validateDiscount(discountForm{}))
		require.NotNil(t, errs)
		assert.Equal(t, []string{"code", "percent", "items"}, errs.Fields())
		for _, e := range errs {
			assert.Equal(t, "validation.required", e.TranslationKey, e.Field)
		}
	})

	t.Run("plain fields still validate", func(t *testing.T) {
		t.Parallel()

		form := validDiscount()
		form.Note = "too long"

		errs := validator.ExtractValidationErrors(validateDiscount(form))
		require.NotNil(t, errs)
		assert.True(t, errs.Has("note"))
		assert.Equal(t, "validation.max", errs.GetErrors("note")[0].TranslationKey)
	})

	t.Run("misuse errors pass through", func(t *testing.T) {
		t.Parallel()

		err := validateDiscount(nil)
		require.Error(t, err)
		assert.False(t, validator.IsValidationError(err))
	})
}

func TestFromStructErrors_NotFieldErrors(t *testing.T) {
	t.Parallel()

	errs, ok := validator.FromStructErrors(assert.AnError)
	assert.False(t, ok)
	assert.Nil(t, errs)
}
