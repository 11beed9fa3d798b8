package validated

import (
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dmitrymomot/valuekit/pkg/constraint"
)

// TextValue implements pgtype.TextValuer.
func (v String[R]) TextValue() (pgtype.Text, error) {
	return pgtype.Text{String: v.s, Valid: true}, nil
}

// ScanText implements pgtype.TextScanner. NULL is rejected.
func (v *String[R]) ScanText(src pgtype.Text) error {
	if !src.Valid {
		return constraint.Decode("postgres", v.typeName(), constraint.ErrNull)
	}
	return v.decode("postgres", src.String, nil)
}
