package validator

import (
	"errors"
	"iter"
	"slices"
	"strings"
)

// ValidationError is a single field-level failure with translation metadata.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
}

// ValidationErrors collects failures across fields. It implements error and
// matches ErrValidationFailed.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var b strings.Builder
	b.WriteString("validation failed: ")
	for i, e := range ve {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Field)
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// ForField iterates over the failures recorded for field, in insertion order.
func (ve ValidationErrors) ForField(field string) iter.Seq[ValidationError] {
	return func(yield func(ValidationError) bool) {
		for _, e := range ve {
			if e.Field == field && !yield(e) {
				return
			}
		}
	}
}

func (ve ValidationErrors) Has(field string) bool {
	return slices.ContainsFunc(ve, func(e ValidationError) bool { return e.Field == field })
}

// Get returns the messages recorded for field.
func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for e := range ve.ForField(field) {
		messages = append(messages, e.Message)
	}
	return messages
}

func (ve ValidationErrors) GetErrors(field string) []ValidationError {
	return slices.Collect(ve.ForField(field))
}

// Fields lists the failing fields in first-seen order.
func (ve ValidationErrors) Fields() []string {
	var fields []string
	for _, e := range ve {
		if !slices.Contains(fields, e.Field) {
			fields = append(fields, e.Field)
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Err returns ve as an error, or nil when nothing was collected.
func (ve ValidationErrors) Err() error {
	if ve.IsEmpty() {
		return nil
	}
	return ve
}

// Rule pairs a check with the error reported when it fails.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply runs every rule and returns the collected failures, or nil.
func Apply(rules ...Rule) error {
	var errs ValidationErrors
	for _, rule := range rules {
		if !rule.Check() {
			errs.Add(rule.Error)
		}
	}
	return errs.Err()
}

// ExtractValidationErrors returns the ValidationErrors in err's chain, if any.
func ExtractValidationErrors(err error) ValidationErrors {
	errs, _ := asValidationErrors(err)
	return errs
}

func IsValidationError(err error) bool {
	_, ok := asValidationErrors(err)
	return ok
}

func asValidationErrors(err error) (ValidationErrors, bool) {
	var errs ValidationErrors
	if err == nil || !errors.As(err, &errs) {
		return nil, false
	}
	return errs, true
}
