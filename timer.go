// FILE: lixenwraith/bwdebug/timer.go
package bwdebug

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Timers is a registry of named start times. Each Logger owns one for its lifetime;
// the package-level functions use the default logger's registry. Reset clears it.
type Timers struct {
	mu     sync.Mutex
	starts map[string]time.Time
	now    func() time.Time
}

// NewTimers creates an empty timer registry
func NewTimers() *Timers {
	return &Timers{
		starts: make(map[string]time.Time),
		now:    time.Now,
	}
}

// Start records the current time under label, restarting it if already running
func (t *Timers) Start(label string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.starts[label] = t.now()
}

// Stop removes label and returns the time elapsed since its start.
// ok is false when the label was never started.
func (t *Timers) Stop(label string) (elapsed time.Duration, ok bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	start, ok := t.starts[label]
	if !ok {
		return 0, false
	}
	delete(t.starts, label)

	elapsed = t.now().Sub(start)
	if elapsed < 0 {
		elapsed = 0
	}
	return elapsed, true
}

// Running returns the labels of started timers, sorted
func (t *Timers) Running() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	labels := make([]string, 0, len(t.starts))
	for label := range t.starts {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

// Reset drops all running timers
func (t *Timers) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	clear(t.starts)
}

// timerMessage formats the elapsed time of a stopped timer in milliseconds
func timerMessage(label string, elapsed time.Duration) string {
	return fmt.Sprintf("timer %s: %.3f ms", label, float64(elapsed)/float64(time.Millisecond))
}

// timerErrorMessage formats the report for a timer that was never started
func timerErrorMessage(label string) string {
	return fmt.Sprintf("timer %s: error - timer was never started", label)
}

// TimerStart starts (or restarts) the named timer
func (l *Logger) TimerStart(label string) {
	l.timers.Start(label)
}

// TimerEnd stops the named timer and logs the elapsed milliseconds.
// An unknown label logs an error message instead.
func (l *Logger) TimerEnd(label string, opts ...Option) {
	l.timerEnd(label, 2, opts)
}

// timerEnd is shared by the method and package-level entry points
func (l *Logger) timerEnd(label string, skip int, opts []Option) {
	elapsed, ok := l.timers.Stop(label)
	if !ok {
		l.log(timerEntry(timerErrorMessage(label)), skip+1, opts)
		return
	}
	l.log(timerEntry(timerMessage(label, elapsed)), skip+1, opts)
}

// Timers returns the logger's timer registry
func (l *Logger) Timers() *Timers {
	return l.timers
}
