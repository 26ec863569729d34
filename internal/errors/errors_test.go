package errors_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wcerrors "github.com/mrz1836/worldclock/internal/errors"
)

// testError is a custom error type used to test default branches
// in UserMessage and Actionable without matching any sentinel.
type testError struct {
	msg string
}

func (e testError) Error() string {
	return e.msg
}

func allSentinels() []struct {
	name string
	err  error
} {
	return []struct {
		name string
		err  error
	}{
		{"ErrUnknownTimezone", wcerrors.ErrUnknownTimezone},
		{"ErrInvalidTimezone", wcerrors.ErrInvalidTimezone},
		{"ErrDisplayRefresh", wcerrors.ErrDisplayRefresh},
		{"ErrConfigNil", wcerrors.ErrConfigNil},
		{"ErrConfigInvalidClock", wcerrors.ErrConfigInvalidClock},
		{"ErrConfigInvalidModal", wcerrors.ErrConfigInvalidModal},
		{"ErrConfigInvalidNotifications", wcerrors.ErrConfigInvalidNotifications},
		{"ErrConfigInvalidZones", wcerrors.ErrConfigInvalidZones},
		{"ErrConfigNotFound", wcerrors.ErrConfigNotFound},
		{"ErrInvalidOutputFormat", wcerrors.ErrInvalidOutputFormat},
		{"ErrInteractiveRequired", wcerrors.ErrInteractiveRequired},
		{"ErrNoZonesMatched", wcerrors.ErrNoZonesMatched},
		{"ErrMenuCanceled", wcerrors.ErrMenuCanceled},
		{"ErrFlagConflict", wcerrors.ErrFlagConflict},
	}
}

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := allSentinels()
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i == j {
				continue
			}
			assert.NotErrorIs(t, a.err, b.err, "%s should not match %s", a.name, b.name)
		}
	}
}

func TestWrap_PreservesErrorChain(t *testing.T) {
	for _, tc := range allSentinels() {
		t.Run(tc.name, func(t *testing.T) {
			wrapped := wcerrors.Wrap(tc.err, "context message")

			require.Error(t, wrapped)
			require.ErrorIs(t, wrapped, tc.err)
			assert.Equal(t, "context message: "+tc.err.Error(), wrapped.Error())
		})
	}
}

func TestWrap_NilError(t *testing.T) {
	assert.NoError(t, wcerrors.Wrap(nil, "should not appear"))
	assert.NoError(t, wcerrors.Wrapf(nil, "should not appear %d", 1))
}

func TestWrapf_MessageFormat(t *testing.T) {
	wrapped := wcerrors.Wrapf(wcerrors.ErrUnknownTimezone, "load %s", "Mars/Olympus")

	require.ErrorIs(t, wrapped, wcerrors.ErrUnknownTimezone)
	assert.Equal(t, "load Mars/Olympus: unknown timezone", wrapped.Error())
}

func TestUserMessage_AllSentinels(t *testing.T) {
	for _, tc := range allSentinels() {
		t.Run(tc.name, func(t *testing.T) {
			msg := wcerrors.UserMessage(tc.err)
			assert.NotEmpty(t, msg)
			assert.NotEqual(t, tc.err.Error(), msg, "sentinel should have a friendly message")
		})
	}
}

func TestUserMessage_WrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", wcerrors.Wrap(wcerrors.ErrDisplayRefresh, "tick"))
	assert.Equal(t, wcerrors.UserMessage(wcerrors.ErrDisplayRefresh), wcerrors.UserMessage(wrapped))
}

func TestUserMessage_NilAndUnknown(t *testing.T) {
	assert.Empty(t, wcerrors.UserMessage(nil))
	assert.Equal(t, "something odd", wcerrors.UserMessage(testError{msg: "something odd"}))
}

func TestActionable(t *testing.T) {
	msg, action := wcerrors.Actionable(wcerrors.Wrap(wcerrors.ErrInvalidTimezone, "commit"))
	assert.Contains(t, msg, "Region/City")
	assert.Contains(t, action, "Asia/Tokyo")

	msg, action = wcerrors.Actionable(nil)
	assert.Empty(t, msg)
	assert.Empty(t, action)

	msg, action = wcerrors.Actionable(testError{msg: "custom"})
	assert.Equal(t, "custom", msg)
	assert.Empty(t, action)

	_, action = wcerrors.Actionable(wcerrors.ErrNoZonesMatched)
	assert.Empty(t, action)
}

func TestExitCode2Error(t *testing.T) {
	base := wcerrors.ErrInvalidOutputFormat
	exitErr := wcerrors.NewExitCode2Error(base)

	assert.Equal(t, base.Error(), exitErr.Error())
	assert.Equal(t, base, exitErr.Unwrap())
	require.ErrorIs(t, exitErr, base)
	assert.True(t, wcerrors.IsExitCode2Error(fmt.Errorf("wrapped: %w", exitErr)))
	assert.False(t, wcerrors.IsExitCode2Error(base))
	assert.False(t, wcerrors.IsExitCode2Error(nil))
}
