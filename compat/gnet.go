// FILE: lixenwraith/bwdebug/compat/gnet.go
package compat

import (
	"fmt"
	"os"

	"github.com/panjf2000/gnet/v2/pkg/logging"

	"github.com/lixenwraith/bwdebug"
)

var _ logging.Logger = (*GnetAdapter)(nil)

// GnetAdapter wraps bwdebug.Logger to implement gnet logging.Logger interface
type GnetAdapter struct {
	logger       *bwdebug.Logger
	label        string
	stream       bwdebug.Stream
	fatalHandler func(msg string) // Customizable fatal behavior
}

// NewGnetAdapter creates a new gnet-compatible logger adapter
func NewGnetAdapter(logger *bwdebug.Logger, opts ...GnetOption) *GnetAdapter {
	adapter := &GnetAdapter{
		logger: logger,
		label:  "gnet",
		fatalHandler: func(msg string) {
			os.Exit(1) // Default behavior matches gnet expectations
		},
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// GnetOption allows customizing adapter behavior
type GnetOption func(*GnetAdapter)

// WithFatalHandler sets a custom fatal handler
func WithFatalHandler(handler func(string)) GnetOption {
	return func(a *GnetAdapter) {
		a.fatalHandler = handler
	}
}

// WithGnetLabel sets the label printed above each message
func WithGnetLabel(label string) GnetOption {
	return func(a *GnetAdapter) {
		a.label = label
	}
}

// WithGnetStream sets the stream messages are written to, zero keeps the logger default
func WithGnetStream(s bwdebug.Stream) GnetOption {
	return func(a *GnetAdapter) {
		a.stream = s
	}
}

// Debugf dumps a debug message with printf-style formatting
func (a *GnetAdapter) Debugf(format string, args ...any) {
	dump(a.logger, fmt.Sprintf(format, args...), labelFor(a.label, SeverityDebug), a.stream)
}

// Infof dumps an info message with printf-style formatting
func (a *GnetAdapter) Infof(format string, args ...any) {
	dump(a.logger, fmt.Sprintf(format, args...), labelFor(a.label, SeverityInfo), a.stream)
}

// Warnf dumps a warning with printf-style formatting
func (a *GnetAdapter) Warnf(format string, args ...any) {
	dump(a.logger, fmt.Sprintf(format, args...), labelFor(a.label, SeverityWarn), a.stream)
}

// Errorf dumps an error with printf-style formatting
func (a *GnetAdapter) Errorf(format string, args ...any) {
	dump(a.logger, fmt.Sprintf(format, args...), labelFor(a.label, SeverityError), a.stream)
}

// Fatalf dumps the message and triggers the fatal handler. Writes are synchronous, nothing to flush.
func (a *GnetAdapter) Fatalf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	dump(a.logger, msg, a.label+".fatal", a.stream)

	if a.fatalHandler != nil {
		a.fatalHandler(msg)
	}
}
