// Package validated provides strings that carry a content guarantee chosen at
// the type level.
//
// A String[R] wraps text accepted by the rule R, a zero-size marker type that
// implements Rule. The rule is part of the type identity: String[NonEmpty] and
// String[NonBlank] are different types, so a function that needs non-blank
// text cannot be handed a merely non-empty one by mistake.
//
// Three rules ship with the package:
//
//   - NonEmpty rejects "" with a constraint.ContentError of kind Empty.
//   - NonBlank rejects text that is empty after trimming whitespace with a
//     constraint.ContentError of kind Blank carrying the original text. The
//     empty string is blank too; NonBlank does not build on NonEmpty.
//   - UUID accepts the canonical UUID text form (github.com/google/uuid) and
//     rejects anything else with ErrNotUUID.
//
// Validation never transforms the payload: New stores the original text,
// surrounding whitespace included.
//
// # Usage
//
//	name, err := validated.NewNonBlank(input)
//	if err != nil {
//	    return err // string is blank (content: `   `)
//	}
//	greet(name) // func greet(name validated.NonBlankString)
//
// Custom rules are plain types:
//
//	type Slug struct{}
//
//	func (Slug) Validate(s string) error { ... }
//
//	type SlugString = validated.String[Slug]
//
// # Serialization
//
// String encodes as a bare string in JSON, text, YAML, BSON, Redis (via
// go-redis) and Postgres (via pgx). Decoding runs the rule again and fails with a
// *constraint.DecodeError that wraps the rule's error.
package validated
