package nonempty

import (
	"iter"

	"github.com/dmitrymomot/valuekit/pkg/constraint"
)

// Check reports a constraint.ContentError of kind Empty when seq yields no
// elements. It stops after the first element.
func Check[T any](seq iter.Seq[T]) error {
	if seq != nil {
		for range seq {
			return nil
		}
	}
	return constraint.Empty(constraint.SubjectCollection)
}
