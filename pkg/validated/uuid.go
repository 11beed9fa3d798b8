package validated

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// ErrNotUUID is returned by the UUID rule.
var ErrNotUUID = errors.New("string is not a valid UUID")

// UUID accepts the canonical 36-character form, such as
// "f47ac10b-58cc-4372-a567-0e02b2c3d479". Braced, URN and hyphen-less forms
// are rejected so that stored text stays uniform.
type UUID struct{}

func (UUID) Validate(s string) error {
	if len(s) != 36 {
		return ErrNotUUID
	}
	if err := uuid.Validate(s); err != nil {
		return fmt.Errorf("%w: %w", ErrNotUUID, err)
	}
	return nil
}

type UUIDString = String[UUID]

// NewUUID is New[UUID].
func NewUUID(s string) (UUIDString, error) {
	return New[UUID](s)
}

// ParseUUID returns the parsed form of a constructed UUIDString. It panics
// on an unconstructed value.
func ParseUUID(v UUIDString) uuid.UUID {
	return uuid.MustParse(v.Value())
}
