// Package constraint defines the shared error taxonomy and numeric type
// constraints used by the constrained value packages (bounded, validated and
// nonempty).
//
// A constrained value is a wrapper type whose constructor refuses any input
// that breaks the wrapper's invariant. When a constructor refuses input it
// returns one of the error types from this package:
//
//   - RangeError    – a number fell outside an inclusive range (TooLow, TooHigh)
//   - ContentError  – a string or collection had no usable content (Empty, Blank)
//   - DecodeError   – a codec decoded a value that the constructor then refused
//
// Every error carries a machine-distinguishable Kind plus enough context (the
// bounds and the offending value, or the offending text) to build a
// human-readable message without re-deriving anything at the call site.
//
// # Error Handling
//
// All error types implement Is, so callers can match broad categories with
// errors.Is:
//
//	if errors.Is(err, constraint.ErrOutOfRange) {
//	    // either too low or too high
//	}
//	if errors.Is(err, constraint.ErrTooHigh) {
//	    // only too high
//	}
//
// Structured details are available through errors.As:
//
//	var rerr *constraint.RangeError[int]
//	if errors.As(err, &rerr) {
//	    fmt.Println(rerr.Min, rerr.Max, rerr.Value)
//	}
//
// DecodeError unwraps to the validation failure, so the same checks work on
// errors returned from json.Unmarshal, yaml.Unmarshal, bson.Unmarshal or a pgx
// scan. KindOf extracts the Kind from any error chain.
//
// Both RangeError and ContentError implement Violation, which exposes a
// translation key and translation values in the same shape as
// validator.ValidationError.
package constraint
