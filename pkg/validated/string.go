package validated

import (
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"unicode/utf8"
)

// String is text accepted by the rule R.
// The zero value holds "" and is not constructed.
type String[R Rule] struct {
	s string
}

// New validates s with R and wraps it unchanged.
func New[R Rule](s string) (String[R], error) {
	var rule R
	if err := rule.Validate(s); err != nil {
		return String[R]{}, err
	}
	return String[R]{s: s}, nil
}

// Must works like New but panics when R rejects s.
func Must[R Rule](s string) String[R] {
	v, err := New[R](s)
	if err != nil {
		panic(fmt.Sprintf("validated: %v", err))
	}
	return v
}

// Unchecked wraps s without running R.
//
// The caller must already know that R accepts s. Passing text that R would
// reject yields a String that reports itself as valid while breaking its
// invariant.
func Unchecked[R Rule](s string) String[R] {
	return String[R]{s: s}
}

// Value returns the wrapped text exactly as it was given.
func (v String[R]) Value() string { return v.s }

// Validate re-runs R. It only fails for zero values and values built with
// Unchecked.
func (v String[R]) Validate() error {
	var rule R
	return rule.Validate(v.s)
}

func (v String[R]) String() string { return v.s }

// Len returns the number of characters (runes) in the text.
func (v String[R]) Len() int { return utf8.RuneCountInString(v.s) }

func (v String[R]) Equal(other String[R]) bool { return v.s == other.s }

func (v String[R]) Compare(other String[R]) int { return strings.Compare(v.s, other.s) }

// LogValue makes slog record the text instead of the struct.
func (v String[R]) LogValue() slog.Value {
	return slog.StringValue(v.s)
}

func (v String[R]) typeName() string {
	return reflect.TypeOf(v).String()
}
