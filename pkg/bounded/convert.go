package bounded

import (
	"math"
	"reflect"
	"strconv"

	"github.com/dmitrymomot/valuekit/pkg/constraint"
)

func isFloat[T constraint.Number]() bool {
	k := reflect.TypeFor[T]().Kind()
	return k == reflect.Float32 || k == reflect.Float64
}

// fromInt64 converts n to T, failing when T cannot represent n exactly.
func fromInt64[T constraint.Number](n int64) (T, error) {
	v := T(n)
	if int64(v) != n || (v < 0) != (n < 0) {
		return v, constraint.ErrOverflow
	}
	return v, nil
}

// toInt64 converts v to int64, failing for fractions and out-of-range values.
func toInt64[T constraint.Number](v T) (int64, error) {
	if isFloat[T]() {
		f := float64(v)
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, constraint.ErrOverflow
		}
		return int64(f), nil
	}
	n := int64(v)
	if T(n) != v || (n < 0) != (v < 0) {
		return 0, constraint.ErrOverflow
	}
	return n, nil
}

// fromFloat64 converts f to T. Integer targets only accept whole numbers that
// fit; float targets accept any value, float32 rounding included.
func fromFloat64[T constraint.Number](f float64) (T, error) {
	if isFloat[T]() {
		return T(f), nil
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, constraint.ErrOverflow
	}
	v := T(f)
	if float64(v) != f {
		return v, constraint.ErrOverflow
	}
	return v, nil
}

// parse reads T from its natural textual form.
func parse[T constraint.Number](s string) (T, error) {
	t := reflect.TypeFor[T]()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 10, t.Bits())
		return T(n), err
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, t.Bits())
		return T(f), err
	default:
		n, err := strconv.ParseUint(s, 10, t.Bits())
		return T(n), err
	}
}
