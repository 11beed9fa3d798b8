package bounded

import (
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/dmitrymomot/valuekit/pkg/constraint"
)

// Int64Value implements pgtype.Int64Valuer for integer columns.
func (n Number[T, R]) Int64Value() (pgtype.Int8, error) {
	v, err := toInt64(n.v)
	if err != nil {
		return pgtype.Int8{}, err
	}
	return pgtype.Int8{Int64: v, Valid: true}, nil
}

// ScanInt64 implements pgtype.Int64Scanner. NULL is rejected.
func (n *Number[T, R]) ScanInt64(src pgtype.Int8) error {
	if !src.Valid {
		return constraint.Decode("postgres", n.typeName(), constraint.ErrNull)
	}
	v, err := fromInt64[T](src.Int64)
	return n.decode("postgres", v, err)
}

// Float64Value implements pgtype.Float64Valuer for float columns.
func (n Number[T, R]) Float64Value() (pgtype.Float8, error) {
	return pgtype.Float8{Float64: float64(n.v), Valid: true}, nil
}

// ScanFloat64 implements pgtype.Float64Scanner. NULL is rejected.
func (n *Number[T, R]) ScanFloat64(src pgtype.Float8) error {
	if !src.Valid {
		return constraint.Decode("postgres", n.typeName(), constraint.ErrNull)
	}
	v, err := fromFloat64[T](src.Float64)
	return n.decode("postgres", v, err)
}
