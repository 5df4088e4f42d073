package apierr

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"exusiai.dev/shufflestat/internal/core/coreerr"
)

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_REQUEST", "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	if e.Message == "changed" {
		t.Errorf("Expected immutable error with message not equal to 'changed', got '%s'", e.Message)
	}
	if changedE.Message != "changed" {
		t.Errorf("Expected immutable error with message equal to 'changed', got '%s'", changedE.Message)
	}
}

func TestNewInvalidViolationsDoesNotLeak(t *testing.T) {
	e := NewInvalidViolations([]string{"k"})
	assert.NotNil(t, e.Extras)
	assert.Nil(t, ErrInvalidReq.Extras)
}

func TestFromCore(t *testing.T) {
	assert.Nil(t, FromCore(nil))

	invalid := FromCore(errors.Wrap(coreerr.ErrInvalidParameter, "k must be positive, got 0"))
	if assert.IsType(t, &Error{}, invalid) {
		assert.Equal(t, CodeInvalidRequest, invalid.(*Error).ErrorCode)
		assert.Contains(t, invalid.(*Error).Message, "k must be positive")
	}

	empty := FromCore(errors.Wrap(coreerr.ErrEmptyInput, "nothing to export"))
	if assert.IsType(t, &Error{}, empty) {
		assert.Equal(t, CodeEmptyInput, empty.(*Error).ErrorCode)
		assert.Equal(t, 400, empty.(*Error).StatusCode)
	}

	other := errors.New("boom")
	assert.Equal(t, other, FromCore(other))
}
