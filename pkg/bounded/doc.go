// Package bounded provides numbers that are guaranteed to lie inside an
// inclusive range for their whole lifetime.
//
// A bounded number is a Number[T, R] where T is the primitive type (any integer
// or float) and R is a zero-size marker type whose Min and Max methods define
// the range. The marker is part of the type identity, so Number[int, Percent]
// and Number[int, Score] cannot be mixed up without unwrapping first.
//
// Go has no const generics, so the bounds are not compile-time parameters.
// They are results of methods on a stateless marker and are therefore
// "logically const": the same for every instance, checked at construction time
// rather than by the compiler. Markers must be value types (usually struct{});
// a nil pointer marker panics on the first bound lookup.
//
// # Usage
//
//	type Score struct{}
//
//	func (Score) Min() int32 { return -10 }
//	func (Score) Max() int32 { return 10 }
//
//	s, err := bounded.New[Score](int32(11))
//	// err: 11 is too high (range: -10..10)
//
//	s, err = bounded.New[Score](int32(-10))
//	s.Value() // -10
//
// New infers T from its argument. Untyped constants default to int, so pass a
// typed value (or spell out both type arguments) when the marker works on a
// different width.
//
// Values outside the range are always rejected; they are never clamped.
// Unchecked skips validation for call sites that already proved the bound,
// such as reading values back from storage written by this package.
//
// # Serialization
//
// Number encodes exactly like T in JSON, text, YAML, BSON, Redis (via
// go-redis) and Postgres (via pgx). Decoding parses T first, then runs New; a rejected value surfaces as a
// *constraint.DecodeError wrapping the *constraint.RangeError, so decoding and
// direct construction share one gate. Explicit nulls are rejected. Fields
// missing from the input keep their zero value, which may violate the range;
// call Validate after decoding partial documents.
package bounded
