package base64

import (
	"errors"
	"strconv"
)

// ErrInvalidInput matches every *InvalidInputError when used
// with errors.Is.
var ErrInvalidInput = errors.New("base64: invalid input")

// Reason describes why an input was rejected.
type Reason int

const (
	// BadLength means the input length is not a multiple of 4.
	BadLength Reason = iota + 1
	// BadPadding means a padding character appeared anywhere
	// other than the last one or two positions of the input.
	BadPadding
	// BadCharacter means the input contains a character outside
	// of the alphabet.
	BadCharacter
	// NonCanonical means the unused bits of the final group are
	// not zero. Only reported by StrictCodec.
	NonCanonical
)

func (r Reason) String() string {
	switch r {
	case BadLength:
		return "length is not a multiple of 4"
	case BadPadding:
		return "misplaced padding"
	case BadCharacter:
		return "bad character"
	case NonCanonical:
		return "non-zero trailing bits"
	default:
		return "Reason(" + strconv.Itoa(int(r)) + ")"
	}
}

// InvalidInputError is returned by Decode when the input is not
// valid padded Base64.
type InvalidInputError struct {
	Reason Reason
}

var _ error = (*InvalidInputError)(nil)

func (e *InvalidInputError) Error() string {
	return ErrInvalidInput.Error() + ": " + e.Reason.String()
}

// Is reports whether target is ErrInvalidInput.
func (e *InvalidInputError) Is(target error) bool {
	return target == ErrInvalidInput
}
