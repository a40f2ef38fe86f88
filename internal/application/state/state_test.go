package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionState_String(t *testing.T) {
	tests := []struct {
		state    SessionState
		expected string
	}{
		{StateLoading, "Loading"},
		{StateRunning, "Running"},
		{StatePassed, "Passed"},
		{StateFailed, "Failed"},
		{StateQuit, "Quit"},
		{SessionState(99), "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.state.String())
		})
	}
}

func TestSessionStateConstants(t *testing.T) {
	// Verify the iota ordering
	assert.Equal(t, SessionState(0), StateLoading)
	assert.Equal(t, SessionState(1), StateRunning)
	assert.Equal(t, SessionState(2), StatePassed)
	assert.Equal(t, SessionState(3), StateFailed)
	assert.Equal(t, SessionState(4), StateQuit)
}

func TestSessionState_Terminal(t *testing.T) {
	assert.False(t, StateLoading.Terminal())
	assert.False(t, StateRunning.Terminal())
	assert.True(t, StatePassed.Terminal())
	assert.True(t, StateFailed.Terminal())
	assert.True(t, StateQuit.Terminal())
}

func TestOutcome_RoundTrip(t *testing.T) {
	for _, o := range []Outcome{Continue, Passed, Failed, Quit} {
		t.Run(o.String(), func(t *testing.T) {
			assert.Equal(t, o, o.State().Outcome())
		})
	}
	assert.Equal(t, "Unknown", Outcome(42).String())
	assert.Equal(t, Continue, StateLoading.Outcome())
}
