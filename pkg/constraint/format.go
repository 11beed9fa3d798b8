package constraint

import (
	"reflect"
	"strconv"
)

// FormatNumber renders v in its natural textual form: base-10 integers and the
// shortest decimal representation of floats, without exponent or separators.
func FormatNumber[T Number](v T) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64)
	default:
		return strconv.FormatUint(rv.Uint(), 10)
	}
}
