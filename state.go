// FILE: lixenwraith/bwdebug/state.go
package bwdebug

import (
	"encoding/json"
	"errors"
	"math"
	"os"
	"time"
)

var (
	// ErrStateMissing is reported when the state file does not exist yet
	ErrStateMissing = errors.New("state file missing")
	// ErrStateCorrupt is reported when the state file cannot be read or decoded
	ErrStateCorrupt = errors.New("state file unreadable")
)

// RunState is the cross-call state persisted in the JSON sidecar file.
// Concurrent processes race on it; the last writer wins.
type RunState struct {
	LastEventTime       float64 `json:"lastEventTime"` // seconds since epoch, 0 before the first event
	HeaderPrintedForRun bool    `json:"headerPrintedForRun"`
	RunID               string  `json:"runId,omitempty"`
}

// LastEvent returns LastEventTime as a time.Time, zero if no event was recorded
func (s *RunState) LastEvent() time.Time {
	if s.LastEventTime <= 0 {
		return time.Time{}
	}
	sec, frac := math.Modf(s.LastEventTime)
	return time.Unix(int64(sec), int64(frac*float64(time.Second)))
}

// touch records t as the last event time
func (s *RunState) touch(t time.Time) {
	s.LastEventTime = float64(t.UnixNano()) / float64(time.Second)
}

// LoadState reads the run state from path. It always returns a usable state: when the file
// is absent or cannot be decoded, the default state is returned and persisted, and the
// error describes what was recovered from.
func LoadState(path string) (*RunState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		var cause error
		if errors.Is(err, os.ErrNotExist) {
			cause = fmtErrorf("%w at '%s', creating default", ErrStateMissing, path)
		} else {
			cause = fmtErrorf("%w at '%s': %v", ErrStateCorrupt, path, err)
		}
		return resetState(path, cause)
	}

	state := &RunState{}
	if err := json.Unmarshal(data, state); err != nil {
		return resetState(path, fmtErrorf("%w at '%s': %v", ErrStateCorrupt, path, err))
	}
	if math.IsNaN(state.LastEventTime) || math.IsInf(state.LastEventTime, 0) || state.LastEventTime < 0 {
		return resetState(path, fmtErrorf("%w at '%s': invalid lastEventTime", ErrStateCorrupt, path))
	}
	return state, nil
}

// resetState persists and returns the default state along with the recovered cause
func resetState(path string, cause error) (*RunState, error) {
	state := &RunState{}
	if err := SaveState(path, state); err != nil {
		cause = combineErrors(cause, err)
	}
	return state, cause
}

// SaveState writes state to path as JSON under an exclusive lock
func SaveState(path string, state *RunState) error {
	if state == nil {
		state = &RunState{}
	}
	data, err := json.Marshal(state)
	if err != nil {
		return fmtErrorf("failed to encode state: %w", err)
	}
	if err := replaceFile(path, data); err != nil {
		return fmtErrorf("could not write state file: %w", err)
	}
	return nil
}
