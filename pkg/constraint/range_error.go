package constraint

import "fmt"

// RangeError is returned when a number falls outside an inclusive range.
type RangeError[T Number] struct {
	kind  Kind
	Min   T
	Max   T
	Value T
}

// TooLow builds the error for value < min.
func TooLow[T Number](min, max, value T) *RangeError[T] {
	return &RangeError[T]{kind: KindTooLow, Min: min, Max: max, Value: value}
}

// TooHigh builds the error for value > max.
func TooHigh[T Number](min, max, value T) *RangeError[T] {
	return &RangeError[T]{kind: KindTooHigh, Min: min, Max: max, Value: value}
}

func (e *RangeError[T]) Kind() Kind { return e.kind }

func (e *RangeError[T]) Error() string {
	direction := "high"
	if e.kind == KindTooLow {
		direction = "low"
	}
	return fmt.Sprintf("%s is too %s (range: %s..%s)",
		FormatNumber(e.Value), direction, FormatNumber(e.Min), FormatNumber(e.Max))
}

// Is matches ErrOutOfRange and the sentinel of the error's kind.
func (e *RangeError[T]) Is(target error) bool {
	return target == ErrOutOfRange || target == e.kind.sentinel()
}

func (e *RangeError[T]) TranslationKey() string {
	return e.kind.TranslationKey()
}

func (e *RangeError[T]) TranslationValues() map[string]any {
	return map[string]any{
		"min":   e.Min,
		"max":   e.Max,
		"value": e.Value,
	}
}
