package validated

import (
	"strings"

	"github.com/dmitrymomot/valuekit/pkg/constraint"
)

// Rule decides whether raw text is acceptable. Implementations must be
// stateless value types; the zero value is what String uses.
type Rule interface {
	Validate(s string) error
}

// NonEmpty accepts any text with at least one character.
type NonEmpty struct{}

func (NonEmpty) Validate(s string) error {
	if s == "" {
		return constraint.Empty(constraint.SubjectString)
	}
	return nil
}

// NonBlank accepts text with at least one non-whitespace character.
type NonBlank struct{}

func (NonBlank) Validate(s string) error {
	if strings.TrimSpace(s) == "" {
		return constraint.Blank(s)
	}
	return nil
}

type (
	NonEmptyString = String[NonEmpty]
	NonBlankString = String[NonBlank]
)

// NewNonEmpty is New[NonEmpty].
func NewNonEmpty(s string) (NonEmptyString, error) {
	return New[NonEmpty](s)
}

// NewNonBlank is New[NonBlank].
func NewNonBlank(s string) (NonBlankString, error) {
	return New[NonBlank](s)
}
