package locaties_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	locaties "github.com/Dexagod/interreg-static-test"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := locaties.Errorf(locaties.ENOTFOUND, "listing %q not found", "test")

	assert.Equal(t, locaties.ENOTFOUND, locaties.ErrorCode(err))
	assert.Equal(t, "listing \"test\" not found", locaties.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, locaties.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, locaties.ErrorMessage(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, locaties.EINTERNAL, locaties.ErrorCode(assert.AnError))
	assert.Equal(t, "Internal error.", locaties.ErrorMessage(assert.AnError))
}
