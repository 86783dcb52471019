// FILE: lixenwraith/bwdebug/compat/fiber.go
package compat

import (
	"fmt"
	"os"
	"strings"

	"github.com/lixenwraith/bwdebug"
)

// FiberAdapter wraps bwdebug.Logger to match Fiber's CommonLogger method set (v2.54.x).
// Key-value variants dump the message and fields as one map.
type FiberAdapter struct {
	logger       *bwdebug.Logger
	label        string
	stream       bwdebug.Stream
	fatalHandler func(msg string) // Customizable fatal behavior
	panicHandler func(msg string) // Customizable panic behavior
}

// NewFiberAdapter creates a new Fiber-compatible logger adapter
func NewFiberAdapter(logger *bwdebug.Logger, opts ...FiberOption) *FiberAdapter {
	adapter := &FiberAdapter{
		logger: logger,
		label:  "fiber",
		fatalHandler: func(msg string) {
			os.Exit(1)
		},
		panicHandler: func(msg string) {
			panic(msg)
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FiberOption allows customizing adapter behavior
type FiberOption func(*FiberAdapter)

// WithFiberFatalHandler sets a custom fatal handler
func WithFiberFatalHandler(handler func(string)) FiberOption {
	return func(a *FiberAdapter) {
		a.fatalHandler = handler
	}
}

// WithFiberPanicHandler sets a custom panic handler
func WithFiberPanicHandler(handler func(string)) FiberOption {
	return func(a *FiberAdapter) {
		a.panicHandler = handler
	}
}

// WithFiberStream sets the stream messages are written to, zero keeps the logger default
func WithFiberStream(s bwdebug.Stream) FiberOption {
	return func(a *FiberAdapter) {
		a.stream = s
	}
}

// emit dumps v under the severity label. It is called directly by every public method
// so the caller skip in dump stays constant.
func (a *FiberAdapter) emit(v any, severity string) {
	opts := []bwdebug.Option{bwdebug.WithLabel(a.label + "." + severity), bwdebug.WithCallerSkip(2)}
	if a.stream != 0 {
		opts = append(opts, bwdebug.ToStream(a.stream))
	}
	a.logger.Dump(v, opts...)
}

// fields builds the map dumped by the key-value variants; a dangling key gets a nil value
func fields(msg string, keysAndValues []any) map[string]any {
	m := make(map[string]any, len(keysAndValues)/2+1)
	m["msg"] = msg
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprint(keysAndValues[i])
		if i+1 < len(keysAndValues) {
			m[key] = keysAndValues[i+1]
		} else {
			m[key] = nil
		}
	}
	return m
}

// --- Logger ---

func (a *FiberAdapter) Trace(v ...any) { a.emit(fmt.Sprint(v...), "trace") }
func (a *FiberAdapter) Debug(v ...any) { a.emit(fmt.Sprint(v...), "debug") }
func (a *FiberAdapter) Info(v ...any) { a.emit(fmt.Sprint(v...), "info") }
func (a *FiberAdapter) Warn(v ...any) { a.emit(fmt.Sprint(v...), "warn") }
func (a *FiberAdapter) Error(v ...any) { a.emit(fmt.Sprint(v...), "error") }

// Fatal dumps the message and triggers the fatal handler
func (a *FiberAdapter) Fatal(v ...any) {
	msg := fmt.Sprint(v...)
	a.emit(msg, "fatal")
	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

// Panic dumps the message and triggers the panic handler
func (a *FiberAdapter) Panic(v ...any) {
	msg := fmt.Sprint(v...)
	a.emit(msg, "panic")
	if a.panicHandler != nil {
		a.panicHandler(msg)
	}
}

// Write makes FiberAdapter an io.Writer for fiber's output redirection
func (a *FiberAdapter) Write(p []byte) (n int, err error) {
	a.emit(strings.TrimSuffix(string(p), "\n"), "info")
	return len(p), nil
}

// --- FormatLogger ---

func (a *FiberAdapter) Tracef(format string, v ...any) { a.emit(fmt.Sprintf(format, v...), "trace") }
func (a *FiberAdapter) Debugf(format string, v ...any) { a.emit(fmt.Sprintf(format, v...), "debug") }
func (a *FiberAdapter) Infof(format string, v ...any) { a.emit(fmt.Sprintf(format, v...), "info") }
func (a *FiberAdapter) Warnf(format string, v ...any) { a.emit(fmt.Sprintf(format, v...), "warn") }
func (a *FiberAdapter) Errorf(format string, v ...any) { a.emit(fmt.Sprintf(format, v...), "error") }

// Fatalf dumps the message and triggers the fatal handler
func (a *FiberAdapter) Fatalf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	a.emit(msg, "fatal")
	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

// Panicf dumps the message and triggers the panic handler
func (a *FiberAdapter) Panicf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	a.emit(msg, "panic")
	if a.panicHandler != nil {
		a.panicHandler(msg)
	}
}

// --- WithLogger ---

func (a *FiberAdapter) Tracew(msg string, kv ...any) { a.emit(fields(msg, kv), "trace") }
func (a *FiberAdapter) Debugw(msg string, kv ...any) { a.emit(fields(msg, kv), "debug") }
func (a *FiberAdapter) Infow(msg string, kv ...any) { a.emit(fields(msg, kv), "info") }
func (a *FiberAdapter) Warnw(msg string, kv ...any) { a.emit(fields(msg, kv), "warn") }
func (a *FiberAdapter) Errorw(msg string, kv ...any) { a.emit(fields(msg, kv), "error") }

// Fatalw dumps the fields and triggers the fatal handler
func (a *FiberAdapter) Fatalw(msg string, kv ...any) {
	a.emit(fields(msg, kv), "fatal")
	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}

// Panicw dumps the fields and triggers the panic handler
func (a *FiberAdapter) Panicw(msg string, kv ...any) {
	a.emit(fields(msg, kv), "panic")
	if a.panicHandler != nil {
		a.panicHandler(msg)
	}
}
