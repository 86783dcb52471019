// FILE: lixenwraith/bwdebug/compat/fasthttp.go
package compat

import (
	"fmt"
	"strings"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/bwdebug"
)

var _ fasthttp.Logger = (*FastHTTPAdapter)(nil)

// Severity classifies a framework log line
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityDebug
	SeverityWarn
	SeverityError
)

// String returns the lowercase severity name used in labels
func (s Severity) String() string {
	switch s {
	case SeverityDebug:
		return "debug"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// FastHTTPAdapter wraps bwdebug.Logger to implement fasthttp Logger interface
type FastHTTPAdapter struct {
	logger           *bwdebug.Logger
	label            string
	stream           bwdebug.Stream
	errorStream      bwdebug.Stream
	severityDetector func(string) Severity // Function to detect severity from message
}

// NewFastHTTPAdapter creates a new fasthttp-compatible logger adapter
func NewFastHTTPAdapter(logger *bwdebug.Logger, opts ...FastHTTPOption) *FastHTTPAdapter {
	adapter := &FastHTTPAdapter{
		logger:           logger,
		label:            "fasthttp",
		severityDetector: DetectSeverity,
	}

	for _, opt := range opts {
		opt(adapter)
	}

	return adapter
}

// FastHTTPOption allows customizing adapter behavior
type FastHTTPOption func(*FastHTTPAdapter)

// WithFastHTTPLabel sets the label printed above each message
func WithFastHTTPLabel(label string) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.label = label
	}
}

// WithFastHTTPStream sets the stream messages are written to, zero keeps the logger default
func WithFastHTTPStream(s bwdebug.Stream) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.stream = s
	}
}

// WithErrorStream sends messages detected as errors to a separate stream
func WithErrorStream(s bwdebug.Stream) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.errorStream = s
	}
}

// WithSeverityDetector sets a custom function to detect severity from message content
func WithSeverityDetector(detector func(string) Severity) FastHTTPOption {
	return func(a *FastHTTPAdapter) {
		a.severityDetector = detector
	}
}

// Printf implements fasthttp's Logger interface
func (a *FastHTTPAdapter) Printf(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)

	severity := SeverityInfo
	if a.severityDetector != nil {
		severity = a.severityDetector(msg)
	}

	stream := a.stream
	if severity == SeverityError && a.errorStream != 0 {
		stream = a.errorStream
	}

	dump(a.logger, msg, labelFor(a.label, severity), stream)
}

// DetectSeverity attempts to detect severity from message content
func DetectSeverity(msg string) Severity {
	msgLower := strings.ToLower(msg)

	// Check for error indicators
	if strings.Contains(msgLower, "error") ||
		strings.Contains(msgLower, "failed") ||
		strings.Contains(msgLower, "fatal") ||
		strings.Contains(msgLower, "panic") {
		return SeverityError
	}

	// Check for warning indicators
	if strings.Contains(msgLower, "warn") ||
		strings.Contains(msgLower, "deprecated") {
		return SeverityWarn
	}

	// Check for debug indicators
	if strings.Contains(msgLower, "debug") ||
		strings.Contains(msgLower, "trace") {
		return SeverityDebug
	}

	return SeverityInfo
}

// labelFor joins the adapter label and the severity, e.g. "fasthttp.warn"
func labelFor(label string, severity Severity) string {
	if label == "" {
		return severity.String()
	}
	return label + "." + severity.String()
}

// dump writes one framework message. The caller skip points the caller line at the framework code.
func dump(logger *bwdebug.Logger, msg, label string, stream bwdebug.Stream) {
	opts := []bwdebug.Option{bwdebug.WithLabel(label), bwdebug.WithCallerSkip(2)}
	if stream != 0 {
		opts = append(opts, bwdebug.ToStream(stream))
	}
	logger.Dump(msg, opts...)
}
