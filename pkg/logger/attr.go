package logger

import (
	"log/slog"
	"maps"
	"slices"
	"strconv"

	"github.com/dmitrymomot/valuekit/pkg/constraint"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records a named input field. Constrained values log as their inner
// value through slog.LogValuer.
func Field(name string, value any) slog.Attr {
	return slog.Any(name, value)
}

// Violation describes the constraint violation in err's chain under the key
// "violation": its kind, message and translation values (bounds and offending
// value for range errors, subject and content for content errors). When the
// chain adds context, the full error text is kept under "error". If err
// carries no violation, it returns an empty Attr.
func Violation(err error) slog.Attr {
	v, ok := constraint.AsViolation(err)
	if !ok {
		return slog.Attr{}
	}

	values := v.TranslationValues()
	attrs := make([]slog.Attr, 0, len(values)+3)
	attrs = append(attrs,
		slog.String("kind", v.Kind().String()),
		slog.String("message", v.Error()),
	)
	for _, key := range slices.Sorted(maps.Keys(values)) {
		attrs = append(attrs, slog.Any(key, values[key]))
	}
	if msg := err.Error(); msg != v.Error() {
		attrs = append(attrs, slog.String("error", msg))
	}
	return slog.Attr{Key: "violation", Value: slog.GroupValue(attrs...)}
}
