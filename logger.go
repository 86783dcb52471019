// FILE: lixenwraith/bwdebug/logger.go
package bwdebug

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Logger appends formatted debug dumps to one of two files and tracks run boundaries
// through a JSON state file. All methods are safe for concurrent use within a process;
// across processes the state file is last-writer-wins.
type Logger struct {
	currentConfig atomic.Value // stores *Config
	internal      atomic.Value // stores *sink for internal diagnostics
	echo          atomic.Value // stores *sink for EchoStdout

	mu        sync.Mutex // serializes state read-modify-write and the append
	formatter *formatter
	timers    *Timers

	now      func() time.Time
	newRunID func() string
}

// NewLogger creates a new Logger instance with default settings
func NewLogger() *Logger {
	cfg := DefaultConfig()
	l := &Logger{
		formatter: newFormatter(cfg),
		timers:    NewTimers(),
		now:       time.Now,
		newRunID:  uuid.NewString,
	}

	l.currentConfig.Store(cfg)
	l.internal.Store(&sink{w: os.Stderr})
	l.echo.Store(&sink{w: os.Stdout})

	return l
}

// ApplyConfig applies a configuration to the logger. Out-of-range values are
// normalized rather than rejected.
func (l *Logger) ApplyConfig(cfg *Config) error {
	if cfg == nil {
		return fmtErrorf("configuration cannot be nil")
	}

	applied := cfg.Clone()
	applied.normalize()
	l.currentConfig.Store(applied)
	return nil
}

// LoadConfig loads configuration from a TOML file and applies key=value overrides on top
func (l *Logger) LoadConfig(path string, overrides []string) error {
	cfg, err := NewConfigFromFile(path)
	if err != nil {
		return err
	}

	if err := applyOverrideStrings(cfg, overrides); err != nil {
		return err
	}

	return l.ApplyConfig(cfg)
}

// GetConfig returns a copy of current configuration
func (l *Logger) GetConfig() *Config {
	return l.getConfig().Clone()
}

// SetInternalWriter redirects internal warnings and errors, nil discards them
func (l *Logger) SetInternalWriter(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	l.internal.Store(&sink{w: w})
}

// SetEchoWriter redirects the EchoStdout mirror, nil discards it
func (l *Logger) SetEchoWriter(w io.Writer) {
	if w == nil {
		w = io.Discard
	}
	l.echo.Store(&sink{w: w})
}

// Log formats an entry and appends it to the selected output file.
// It never panics and never fails the caller; problems are reported as internal errors.
func (l *Logger) Log(e Entry, opts ...Option) {
	l.log(e, 2, opts)
}

// Dump logs v as a value dump
func (l *Logger) Dump(v any, opts ...Option) {
	l.log(Value(v), 2, opts)
}

// Section logs a section header
func (l *Logger) Section(text string, opts ...Option) {
	l.log(Header(text), 2, opts)
}

// Here logs a section header naming the caller's directory, file, function and line
func (l *Logger) Here(opts ...Option) {
	l.log(Header(""), 2, opts)
}

// getConfig returns the current configuration
func (l *Logger) getConfig() *Config {
	return l.currentConfig.Load().(*Config)
}

// log handles the core logic. skip is the number of frames between log and the
// user's call site, counting the public entry point.
func (l *Logger) log(e Entry, skip int, opts []Option) {
	defer func() {
		if r := recover(); r != nil {
			l.internalLog("error - recovered from panic while logging: %v\n", r)
		}
	}()

	cfg := l.getConfig()
	o := resolveOptions(cfg, opts)
	skip += o.skip

	var vctx valueContext
	switch e.kind {
	case kindValue:
		if cfg.ShowCaller {
			caller := callerFrame(skip)
			vctx.caller = &caller
		}
		if cfg.ShowMemory {
			vctx.memory = memoryUsage()
		}
		vctx.label = o.label
	case kindHeader:
		if strings.TrimSpace(strings.TrimPrefix(e.text, cfg.HeaderMarker)) == "" {
			e.text = hereHeader(callerFrame(skip), cfg.HeaderDelimiter)
		}
	}
	if o.includeTrace {
		vctx.trace, vctx.truncated = getTrace(cfg.TraceDepth, skip)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	path := cfg.streamPath(o.stream)

	// A missing state file is the normal first run
	state, err := LoadState(cfg.StateFile)
	if err != nil && !errors.Is(err, ErrStateMissing) {
		l.internalLog("warning - %v\n", err)
	}

	f := l.formatter
	f.cfg = cfg
	f.reset()

	// Run boundary: first event ever, or idle for at least the timeout
	last := state.LastEvent()
	elapsed := now.Sub(last)
	timeout := time.Duration(cfg.RunTimeoutS * float64(time.Second))
	if last.IsZero() || (timeout > 0 && elapsed >= timeout) {
		state.HeaderPrintedForRun = false
		state.RunID = l.newRunID()
		if cfg.BlankLinesBeforeRun > 0 && !fileIsEmpty(path) {
			if cfg.ShowIdleGap && !last.IsZero() {
				f.appendIdleGap(elapsed)
			}
			f.appendBlankLines(cfg.BlankLinesBeforeRun)
		}
	}
	state.touch(now)

	if cfg.RunHeader && !state.HeaderPrintedForRun {
		f.appendRunHeader(now, state.RunID)
		state.HeaderPrintedForRun = true
	}

	switch e.kind {
	case kindHeader:
		f.appendSection(e.text)
	case kindTimer:
		f.appendTimer(e.text)
		if len(vctx.trace) > 0 {
			f.appendUnit(CategoryTrace, formatTrace(vctx.trace, vctx.truncated))
		}
	default:
		f.appendValue(e.value, vctx)
	}
	f.appendBlankLines(cfg.BlankLinesBetween)

	// State is persisted even if the append below fails
	if err := SaveState(cfg.StateFile, state); err != nil {
		l.internalLog("error - %v\n", err)
	}

	out := f.bytes()
	if cfg.EchoStdout {
		if _, err := l.echo.Load().(*sink).w.Write(out); err != nil {
			l.internalLog("error - failed to echo to stdout: %v\n", err)
		}
	}
	if err := appendFile(path, out); err != nil {
		l.internalLog("error - %v\n", err)
	}
}

// internalLog handles writing internal diagnostics, if enabled.
func (l *Logger) internalLog(format string, args ...any) {
	cfg := l.getConfig()
	if !cfg.InternalErrorsToStderr {
		return
	}

	if !strings.HasPrefix(format, errPrefix) {
		format = errPrefix + format
	}

	fmt.Fprintf(l.internal.Load().(*sink).w, format, args...)
}
