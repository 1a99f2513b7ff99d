package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWrapKeepsCause(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	err := Wrap(CodeSessionError, "failed to save session", cause)

	require.True(t, IsCode(err, CodeSessionError))
	require.ErrorIs(t, err, cause)
	require.Equal(t, "failed to save session: dial tcp: refused", err.Error())
	require.Equal(t, "failed to save session", MessageOf(err))
}

func TestWrapDoesNotRepeatMatchingMessage(t *testing.T) {
	cause := errors.New("name is required")
	err := Wrap(CodeInvalidInput, cause.Error(), cause)

	require.Equal(t, "name is required", err.Error())
}

func TestCodeOfThroughFmtWrap(t *testing.T) {
	err := fmt.Errorf("reading: %w", Wrap(CodeInvalidSession, "session expired", nil))

	require.Equal(t, CodeInvalidSession, CodeOf(err))
	require.Equal(t, "", CodeOf(errors.New("plain")))
	require.Equal(t, "plain", MessageOf(errors.New("plain")))
	require.Equal(t, "", MessageOf(nil))
}
