package constraint

import "fmt"

const (
	// SubjectString names string values in content error messages.
	SubjectString = "string"
	// SubjectCollection names collections in content error messages.
	SubjectCollection = "collection"
)

// ContentError is returned when a string or collection has no usable content.
// Value holds the original text for Blank errors and is empty otherwise.
type ContentError struct {
	kind    Kind
	Subject string
	Value   string
}

// Empty builds the error for a string or collection without elements.
func Empty(subject string) *ContentError {
	return &ContentError{kind: KindEmpty, Subject: subject}
}

// Blank builds the error for whitespace-only text, keeping the text for
// diagnostics.
func Blank(text string) *ContentError {
	return &ContentError{kind: KindBlank, Subject: SubjectString, Value: text}
}

func (e *ContentError) Kind() Kind { return e.kind }

func (e *ContentError) Error() string {
	if e.kind == KindBlank {
		return fmt.Sprintf("%s is blank (content: `%s`)", e.Subject, e.Value)
	}
	return e.Subject + " is empty"
}

func (e *ContentError) Is(target error) bool {
	return target == e.kind.sentinel()
}

func (e *ContentError) TranslationKey() string {
	return e.kind.TranslationKey()
}

func (e *ContentError) TranslationValues() map[string]any {
	values := map[string]any{"subject": e.Subject}
	if e.kind == KindBlank {
		values["value"] = e.Value
	}
	return values
}
