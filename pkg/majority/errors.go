package majority

import "errors"

var (
	// ErrNullInput is returned when the collection is absent (nil slice or nil sequence).
	ErrNullInput = errors.New("Invalid value: collection is null.")

	// ErrEmptyInput is returned when the collection is present but holds no elements.
	ErrEmptyInput = errors.New("Invalid value: collection is empty.")

	// ErrNoMajority is returned when validation finds that no element occupies
	// strictly more than half of the positions.
	ErrNoMajority = errors.New("No majority element exists in the provided collection")
)

// Kind classifies a finder error.
type Kind uint8

const (
	KindNone Kind = iota
	KindNullInput
	KindEmptyInput
	KindNoMajority
)

func (k Kind) String() string {
	switch k {
	case KindNullInput:
		return "null_input"
	case KindEmptyInput:
		return "empty_input"
	case KindNoMajority:
		return "no_majority"
	default:
		return ""
	}
}

// KindOf reports which finder error err wraps.
// It returns KindNone for nil and for errors not produced by this package.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrNullInput):
		return KindNullInput
	case errors.Is(err, ErrEmptyInput):
		return KindEmptyInput
	case errors.Is(err, ErrNoMajority):
		return KindNoMajority
	default:
		return KindNone
	}
}
