package validator

import (
	"maps"

	"github.com/dmitrymomot/valuekit/pkg/bounded"
	"github.com/dmitrymomot/valuekit/pkg/constraint"
	"github.com/dmitrymomot/valuekit/pkg/nonempty"
	"github.com/dmitrymomot/valuekit/pkg/validated"
)

const invalidKey = "validation.invalid"

// FromError converts the first constraint.Violation in err's chain into a
// field-level error. It reports false when err carries no violation.
func FromError(field string, err error) (ValidationError, bool) {
	v, ok := constraint.AsViolation(err)
	if !ok {
		return ValidationError{}, false
	}

	values := map[string]any{"field": field}
	maps.Copy(values, v.TranslationValues())

	return ValidationError{
		Field:             field,
		Message:           v.Error(),
		TranslationKey:    v.TranslationKey(),
		TranslationValues: values,
	}, true
}

// Collect records err under field. Errors without constraint metadata, such
// as those from custom validated.Rule types, are recorded with the generic
// "validation.invalid" key. A nil err records nothing.
func Collect(field string, err error, errs *ValidationErrors) {
	if err == nil {
		return
	}
	if verr, ok := FromError(field, err); ok {
		errs.Add(verr)
		return
	}
	errs.Add(ValidationError{
		Field:             field,
		Message:           err.Error(),
		TranslationKey:    invalidKey,
		TranslationValues: map[string]any{"field": field},
	})
}

func ruleFor(field string, err error) Rule {
	var verr ValidationError
	if err != nil {
		var errs ValidationErrors
		Collect(field, err, &errs)
		verr = errs[0]
	}
	return Rule{
		Check: func() bool { return err == nil },
		Error: verr,
	}
}

// Bounded checks raw input against the range marker R, using the same gate as
// bounded.New.
func Bounded[R bounded.Range[T], T constraint.Number](field string, value T) Rule {
	_, err := bounded.New[R](value)
	return ruleFor(field, err)
}

// NonEmpty checks that value is not "".
func NonEmpty(field, value string) Rule {
	_, err := validated.NewNonEmpty(value)
	return ruleFor(field, err)
}

// NonBlank checks that value has a non-whitespace character.
func NonBlank(field, value string) Rule {
	_, err := validated.NewNonBlank(value)
	return ruleFor(field, err)
}

// Matches checks value against an arbitrary validated.Rule marker.
func Matches[R validated.Rule](field, value string) Rule {
	_, err := validated.New[R](value)
	return ruleFor(field, err)
}

func NonEmptySlice[T any](field string, value []T) Rule {
	_, err := nonempty.NewSlice(value)
	return ruleFor(field, err)
}

func NonEmptyMap[K comparable, V any](field string, value map[K]V) Rule {
	_, err := nonempty.NewMap(value)
	return ruleFor(field, err)
}

// Constructed re-validates an already typed value, for structs whose
// constrained fields may have been left at their zero value by a partial
// decode.
func Constructed(field string, value interface{ Validate() error }) Rule {
	return ruleFor(field, value.Validate())
}
