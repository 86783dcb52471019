// FILE: lixenwraith/bwdebug/timer_test.go
package bwdebug

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimers(t *testing.T) {
	timers := NewTimers()
	clock := time.Unix(1000, 0)
	timers.now = func() time.Time { return clock }

	timers.Start("a")
	timers.Start("b")
	assert.Equal(t, []string{"a", "b"}, timers.Running())

	clock = clock.Add(1500 * time.Microsecond)
	elapsed, ok := timers.Stop("a")
	require.True(t, ok)
	assert.Equal(t, 1500*time.Microsecond, elapsed)
	assert.Equal(t, []string{"b"}, timers.Running())

	_, ok = timers.Stop("a")
	assert.False(t, ok, "a stopped timer is removed")

	timers.Reset()
	assert.Empty(t, timers.Running())
	_, ok = timers.Stop("b")
	assert.False(t, ok)
}

func TestTimerMessages(t *testing.T) {
	assert.Equal(t, "timer load: 1.500 ms", timerMessage("load", 1500*time.Microsecond))
	assert.Equal(t, "timer load: 0.000 ms", timerMessage("load", 0))
	assert.Equal(t, "timer x: error - timer was never started", timerErrorMessage("x"))
}

func TestLoggerTimers(t *testing.T) {
	logger, tmpDir := createTestLogger(t)

	logger.TimerStart("x")
	logger.TimerEnd("x")
	logger.TimerEnd("y")

	content := readOutput(t, tmpDir, "output.log")
	assert.Regexp(t, regexp.MustCompile(`(?m)^timer x: \d+\.\d{3} ms$`), content)
	assert.Contains(t, content, "timer y: error - timer was never started\n")
	assert.Empty(t, logger.Timers().Running())
}
