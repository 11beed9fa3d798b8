package constraint

import "fmt"

// DecodeError is returned by the codec adapters (JSON, text, YAML, BSON, pgx)
// when decoding fails, either because the payload is malformed or because the
// decoded value was rejected by the validating constructor. Err keeps the
// original cause, so errors.Is and errors.As see through it.
type DecodeError struct {
	Format string
	Type   string
	Err    error
}

// Decode wraps err into a DecodeError. A nil err yields nil.
func Decode(format, typeName string, err error) error {
	if err == nil {
		return nil
	}
	return &DecodeError{Format: format, Type: typeName, Err: err}
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s into %s: %v", e.Format, e.Type, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

func (e *DecodeError) Is(target error) bool {
	return target == ErrDecode
}
