package constraint

import "errors"

var (
	// ErrOutOfRange matches every RangeError regardless of its kind.
	ErrOutOfRange = errors.New("value out of range")

	// ErrTooLow matches range errors where the value is below the minimum.
	ErrTooLow = errors.New("value is too low")

	// ErrTooHigh matches range errors where the value is above the maximum.
	ErrTooHigh = errors.New("value is too high")

	// ErrEmpty matches content errors for empty strings and collections.
	ErrEmpty = errors.New("value is empty")

	// ErrBlank matches content errors for whitespace-only strings.
	ErrBlank = errors.New("value is blank")

	// ErrDecode matches every DecodeError.
	ErrDecode = errors.New("failed to decode constrained value")

	// ErrNull is returned by decoders given an explicit null. A constrained
	// value has no valid absent state.
	ErrNull = errors.New("null is not a valid constrained value")

	// ErrOverflow is returned by decoders when the decoded number does not fit
	// the target type.
	ErrOverflow = errors.New("number overflows target type")
)

// Violation is implemented by the errors constructors return when they reject
// input. It exposes the same translation metadata as validator.ValidationError.
type Violation interface {
	error
	Kind() Kind
	TranslationKey() string
	TranslationValues() map[string]any
}

// AsViolation finds the first Violation in err's chain.
func AsViolation(err error) (Violation, bool) {
	if err == nil {
		return nil, false
	}
	var v Violation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}

// KindOf reports the kind of the first Violation in err's chain.
func KindOf(err error) (Kind, bool) {
	v, ok := AsViolation(err)
	if !ok {
		return KindUnknown, false
	}
	return v.Kind(), true
}
