package cli

import (
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"

	"github.com/subtlecodec/b64/base64"
)

const (
	// ErrInvalidInput is the exit code for input that is not
	// valid Base64.
	ErrInvalidInput = 65
	// ErrGeneric is the exit code for every other failure.
	ErrGeneric = 99
)

// exit is replaced in tests.
var exit = os.Exit

// ExitCode maps the error returned by Run to a process exit code.
// Errors from flag parsing keep their flags.ErrorType; a help
// request exits with 0.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var flagsErr *flags.Error
	if errors.As(err, &flagsErr) {
		switch flagsErr.Type {
		case flags.ErrHelp:
			return 0
		case flags.ErrUnknown:
			return ErrGeneric
		}
		return int(flagsErr.Type)
	}
	if errors.Is(err, base64.ErrInvalidInput) {
		return ErrInvalidInput
	}
	return ErrGeneric
}

// MustErrorNilOrExit returns if err is nil. Otherwise it exits
// the process with ExitCode(err).
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}
	exit(ExitCode(err))
}
