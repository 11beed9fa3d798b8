package validator

import (
	"errors"
	"log/slog"
	"reflect"
	"strings"

	playground "github.com/go-playground/validator/v10"
)

const tagKeyPrefix = "validation."

type constrainedValue interface {
	Validate() error
	slog.LogValuer
}

// NewStructValidator returns a go-playground validator that understands the
// constrained types given as samples (see RegisterValueTypes). Field names in
// errors come from json tags.
func NewStructValidator(samples ...any) *playground.Validate {
	v := playground.New(playground.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	RegisterValueTypes(v, samples...)
	return v
}

// RegisterValueTypes teaches v to look through constrained values. A
// constructed value is checked as its inner value (numbers as int64, uint64
// or float64, collections as slices or maps), so tags such as lte or max
// apply to it. A value left at an unconstructed zero state is checked as nil
// and fails its first tag, typically required. Samples that are not
// constrained values are ignored.
func RegisterValueTypes(v *playground.Validate, samples ...any) {
	types := make([]any, 0, len(samples))
	for _, sample := range samples {
		if _, ok := sample.(constrainedValue); ok {
			types = append(types, sample)
		}
	}
	if len(types) > 0 {
		v.RegisterCustomTypeFunc(innerValue, types...)
	}
}

func innerValue(field reflect.Value) any {
	cv, ok := field.Interface().(constrainedValue)
	if !ok || cv.Validate() != nil {
		return nil
	}
	return cv.LogValue().Any()
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" || name == "" {
		return fld.Name
	}
	return name
}

// FromStructErrors converts go-playground field errors in err's chain into
// ValidationErrors keyed "validation.<tag>", with the field name and the tag
// parameter (when present) as translation values.
func FromStructErrors(err error) (ValidationErrors, bool) {
	var fieldErrs playground.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil, false
	}

	errs := make(ValidationErrors, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		values := map[string]any{"field": fe.Field()}
		if fe.Param() != "" {
			values["param"] = fe.Param()
		}
		errs.Add(ValidationError{
			Field:             fe.Field(),
			Message:           fe.Error(),
			TranslationKey:    tagKeyPrefix + fe.Tag(),
			TranslationValues: values,
		})
	}
	return errs, true
}

// ValidateStruct runs v on s and returns the failures as ValidationErrors.
// Misuse errors from the validator itself, such as passing a nil pointer,
// are returned unchanged.
func ValidateStruct(v *playground.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	if errs, ok := FromStructErrors(err); ok {
		return errs.Err()
	}
	return err
}
