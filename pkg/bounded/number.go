package bounded

import (
	"cmp"
	"fmt"
	"log/slog"
	"reflect"

	"github.com/dmitrymomot/valuekit/pkg/constraint"
)

// Number is a value of type T that lies inside the range defined by R.
// The zero value is not constructed and holds T's zero value, which is only
// valid when R includes it.
type Number[T constraint.Number, R Range[T]] struct {
	v T
}

// New returns v wrapped in a Number, or a *constraint.RangeError when v lies
// outside R's range. NaN never satisfies the lower bound.
func New[R Range[T], T constraint.Number](v T) (Number[T, R], error) {
	if err := check[R](v); err != nil {
		return Number[T, R]{}, err
	}
	return Number[T, R]{v: v}, nil
}

// Must works like New but panics when v lies outside the range.
// Intended for package-level values whose validity is known upfront.
func Must[R Range[T], T constraint.Number](v T) Number[T, R] {
	n, err := New[R](v)
	if err != nil {
		panic(fmt.Sprintf("bounded: %v", err))
	}
	return n
}

// Unchecked wraps v without validating it.
//
// The caller must have established R.Min() <= v <= R.Max() by other means,
// for example because v was read from storage that only this package writes.
// Passing an out-of-range value yields a Number that reports itself as valid
// while breaking its invariant.
func Unchecked[R Range[T], T constraint.Number](v T) Number[T, R] {
	return Number[T, R]{v: v}
}

func check[R Range[T], T constraint.Number](v T) error {
	var r R
	lo, hi := r.Min(), r.Max()
	if !(v >= lo) {
		return constraint.TooLow(lo, hi, v)
	}
	if v > hi {
		return constraint.TooHigh(lo, hi, v)
	}
	return nil
}

// Value returns the wrapped number. The range is not tracked for the result.
func (n Number[T, R]) Value() T { return n.v }

// Min returns the inclusive lower bound of R.
func (Number[T, R]) Min() T {
	var r R
	return r.Min()
}

// Max returns the inclusive upper bound of R.
func (Number[T, R]) Max() T {
	var r R
	return r.Max()
}

// Validate re-runs the range check. It only fails for zero values and values
// built with Unchecked.
func (n Number[T, R]) Validate() error {
	return check[R](n.v)
}

// Compare orders two numbers of the same bounded type by their values.
func (n Number[T, R]) Compare(other Number[T, R]) int {
	return cmp.Compare(n.v, other.v)
}

// Equal reports whether both numbers hold the same value.
func (n Number[T, R]) Equal(other Number[T, R]) bool {
	return n.v == other.v
}

func (n Number[T, R]) String() string {
	return constraint.FormatNumber(n.v)
}

// Format lets verbs like %d, %x or %.2f apply to the wrapped value. %v and %s
// print String with the same width and flags.
func (n Number[T, R]) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		if verb == 'v' && f.Flag('#') {
			fmt.Fprintf(f, "%T(%s)", n, n.String())
			return
		}
		fmt.Fprintf(f, fmt.FormatString(f, verb), n.String())
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), n.v)
	}
}

// LogValue makes slog record the wrapped number instead of the struct.
func (n Number[T, R]) LogValue() slog.Value {
	return slog.AnyValue(n.v)
}

func (n Number[T, R]) typeName() string {
	return reflect.TypeOf(n).String()
}
