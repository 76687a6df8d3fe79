package clierr

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineExitCode_Success(t *testing.T) {
	assert.Equal(t, ExitSuccess, DetermineExitCode(nil))
}

func TestDetermineExitCode_UnknownDialect(t *testing.T) {
	err := fmt.Errorf("--dialect foo: %w", ErrUnknownDialect)
	assert.Equal(t, ExitArgError, DetermineExitCode(err))
}

func TestDetermineExitCode_MissingArgument(t *testing.T) {
	assert.Equal(t, ExitArgError, DetermineExitCode(ErrMissingArgument))
}

func TestDetermineExitCode_FixtureMismatch(t *testing.T) {
	err := fmt.Errorf("%w: has_changes", ErrFixtureMismatch)
	assert.Equal(t, ExitGeneralError, DetermineExitCode(err))
}

func TestDetermineExitCode_IOError(t *testing.T) {
	_, err := os.Open("/no/such/path/netform-does-not-exist")
	assert.Equal(t, ExitIOError, DetermineExitCode(err))
}

func TestDetermineExitCode_General(t *testing.T) {
	assert.Equal(t, ExitGeneralError, DetermineExitCode(errors.New("boom")))
}
