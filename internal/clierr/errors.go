package clierr

import (
	"errors"
	"os"
)

// Static sentinel errors for the CLI layer, one per concern, wrapped with
// %w at the call site so errors.Is/As still resolves them (SPEC_FULL
// §10.4, grounded on opnDossier's internal/converter/errors.go).
var (
	ErrUnknownDialect     = errors.New("unknown dialect")
	ErrUnknownOrderPolicy = errors.New("unknown order policy")
	ErrFixtureMismatch    = errors.New("fixture expectation mismatch")
	ErrMissingArgument    = errors.New("missing required argument")
	ErrInvalidFlagValue   = errors.New("invalid flag value")
)

// DetermineExitCode classifies err into one of the exit codes in
// exitcodes.go.
func DetermineExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	if errors.Is(err, ErrUnknownDialect) || errors.Is(err, ErrUnknownOrderPolicy) ||
		errors.Is(err, ErrMissingArgument) || errors.Is(err, ErrInvalidFlagValue) {
		return ExitArgError
	}

	if errors.Is(err, ErrFixtureMismatch) {
		return ExitGeneralError
	}

	var pathErr *os.PathError
	if errors.As(err, &pathErr) || os.IsNotExist(err) || os.IsPermission(err) {
		return ExitIOError
	}

	return ExitGeneralError
}
