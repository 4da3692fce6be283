package startpage_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/startpage"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := startpage.Errorf(startpage.EINVALID, "index %d out of range", 7)

	assert.Equal(t, startpage.EINVALID, startpage.ErrorCode(err))
	assert.Equal(t, "index 7 out of range", startpage.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, startpage.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, startpage.ErrorMessage(nil))
}

func TestErrorCode_Wrapped(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("saving: %w", startpage.Errorf(startpage.ENOTFOUND, "missing"))

	assert.Equal(t, startpage.ENOTFOUND, startpage.ErrorCode(err))
	assert.Equal(t, "missing", startpage.ErrorMessage(err))
}

func TestErrorCode_OtherError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk on fire")

	assert.Equal(t, startpage.EINTERNAL, startpage.ErrorCode(err))
	assert.Equal(t, "Internal error", startpage.ErrorMessage(err))
}
