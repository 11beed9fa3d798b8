// Package validator turns constraint failures into field-level,
// translation-friendly validation errors.
//
// The constrained value packages (bounded, validated, nonempty) report a
// single typed error per rejected value. Request handlers usually need
// something else: every failing field at once, keyed by field name, with a
// translation key and parameters. This package bridges the two.
//
// # Rules
//
// A Rule is a Check func plus the ValidationError reported when it returns
// false. Apply evaluates rules and aggregates the failures into
// ValidationErrors, which implements error. The constraint-backed rules run
// the real constructors, so a form rejected here is rejected for exactly the
// same reason a decoder or a direct New call would reject it:
//
//	err := validator.Apply(
//	    validator.NonBlank("name", form.Name),
//	    validator.Bounded[bounded.Percent]("discount", form.Discount),
//	    validator.NonEmptySlice("items", form.Items),
//	)
//
// # Converting errors
//
// FromError maps any constraint.Violation in an error chain (including one
// wrapped in a constraint.DecodeError) onto a ValidationError. Translation
// keys come from the violation kind ("constraint.too_high",
// "constraint.blank", ...) and the parameters include the bounds, the
// offending value and the field name. Collect does the same for code that
// calls constructors directly and falls back to "validation.invalid" for
// errors without constraint metadata.
//
// # Struct tags
//
// NewStructValidator builds a github.com/go-playground/validator/v10 instance
// that sees through the constrained types it is given, so ordinary tags run
// against the inner value and "required" rejects wrappers that were never
// constructed:
//
//	v := validator.NewStructValidator(bounded.Percentage{}, validated.NonBlankString{})
//	err := validator.ValidateStruct(v, form) // ValidationErrors keyed "validation.<tag>"
//
// # Error Handling
//
// ValidationErrors matches ErrValidationFailed with errors.Is and can be
// recovered from a wrapped chain with ExtractValidationErrors. Individual
// field errors can be inspected with Has, Get, GetErrors, ForField and Fields.
package validator
