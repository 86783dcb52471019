// FILE: lixenwraith/bwdebug/entry.go
package bwdebug

// entryKind tags what an Entry carries
type entryKind int

const (
	kindValue entryKind = iota
	kindHeader
	kindTimer
)

// Entry is one unit handed to Log: either a section header or a value to dump.
// Construct it with Header or Value; the zero Entry dumps nil.
type Entry struct {
	kind  entryKind
	text  string
	value any
}

// Header creates a section header entry. The text is split on the configured delimiter;
// a leading header marker, if present, is dropped.
func Header(text string) Entry {
	return Entry{kind: kindHeader, text: text}
}

// Value creates a value dump entry
func Value(v any) Entry {
	return Entry{kind: kindValue, value: v}
}

// timerEntry creates a timer message entry
func timerEntry(text string) Entry {
	return Entry{kind: kindTimer, text: text}
}

// IsHeader reports whether the entry is a section header
func (e Entry) IsHeader() bool {
	return e.kind == kindHeader
}

// options holds per-call settings
type options struct {
	label        string
	stream       Stream
	includeTrace bool
	skip         int // extra frames between the public entry point and the caller
}

// Option customizes a single Log call
type Option func(*options)

// WithLabel prefixes the dumped value with a label
func WithLabel(label string) Option {
	return func(o *options) {
		o.label = label
	}
}

// ToStream selects the output file (1 primary, 2 secondary)
func ToStream(s Stream) Option {
	return func(o *options) {
		o.stream = s
	}
}

// WithTrace appends the caller's stack trace to the entry
func WithTrace() Option {
	return func(o *options) {
		o.includeTrace = true
	}
}

// WithCallerSkip attributes the entry to a caller further up the stack, for wrappers
func WithCallerSkip(skip int) Option {
	return func(o *options) {
		o.skip += skip
	}
}

// resolveOptions applies opts over the configured defaults
func resolveOptions(cfg *Config, opts []Option) options {
	o := options{stream: Stream(cfg.DefaultStream)}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.stream != StreamPrimary && o.stream != StreamSecondary {
		o.stream = Stream(cfg.DefaultStream)
	}
	if o.skip < 0 {
		o.skip = 0
	}
	return o
}
