package constraint

// Kind identifies why a constructor rejected its input.
type Kind uint8

const (
	// KindUnknown is never produced by a constructor.
	KindUnknown Kind = iota
	// KindTooLow reports a number below the inclusive minimum.
	KindTooLow
	// KindTooHigh reports a number above the inclusive maximum.
	KindTooHigh
	// KindEmpty reports a string or collection without any element.
	KindEmpty
	// KindBlank reports a string made only of whitespace.
	KindBlank
)

func (k Kind) String() string {
	switch k {
	case KindTooLow:
		return "TooLow"
	case KindTooHigh:
		return "TooHigh"
	case KindEmpty:
		return "Empty"
	case KindBlank:
		return "Blank"
	default:
		return "Unknown"
	}
}

// TranslationKey returns the i18n key used for violations of this kind.
func (k Kind) TranslationKey() string {
	switch k {
	case KindTooLow:
		return "constraint.too_low"
	case KindTooHigh:
		return "constraint.too_high"
	case KindEmpty:
		return "constraint.empty"
	case KindBlank:
		return "constraint.blank"
	default:
		return "constraint.invalid"
	}
}

// sentinel maps a kind onto its errors.Is target.
func (k Kind) sentinel() error {
	switch k {
	case KindTooLow:
		return ErrTooLow
	case KindTooHigh:
		return ErrTooHigh
	case KindEmpty:
		return ErrEmpty
	case KindBlank:
		return ErrBlank
	default:
		return nil
	}
}
