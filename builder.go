// FILE: lixenwraith/bwdebug/builder.go
package bwdebug

import "path/filepath"

// Builder provides a fluent API for building logger configurations.
// It wraps a Config instance and provides chainable methods for setting values.
type Builder struct {
	cfg *Config
	err error // Accumulate errors for deferred handling
}

// NewBuilder creates a new configuration builder with default values.
func NewBuilder() *Builder {
	return &Builder{
		cfg: DefaultConfig(),
	}
}

// Build creates a new Logger instance with the specified configuration.
func (b *Builder) Build() (*Logger, error) {
	if b.err != nil {
		return nil, b.err
	}

	logger := NewLogger()
	if err := logger.ApplyConfig(b.cfg); err != nil {
		return nil, err
	}

	return logger, nil
}

// PrimaryFile sets the output file for stream 1.
func (b *Builder) PrimaryFile(path string) *Builder {
	b.cfg.PrimaryFile = path
	return b
}

// SecondaryFile sets the output file for stream 2.
func (b *Builder) SecondaryFile(path string) *Builder {
	b.cfg.SecondaryFile = path
	return b
}

// StateFile sets the run state file.
func (b *Builder) StateFile(path string) *Builder {
	b.cfg.StateFile = path
	return b
}

// DefaultStream sets the stream used when a call does not pick one.
func (b *Builder) DefaultStream(s Stream) *Builder {
	if b.err != nil {
		return b
	}
	if s != StreamPrimary && s != StreamSecondary {
		b.err = fmtErrorf("invalid stream %d, must be 1 or 2", s)
		return b
	}
	b.cfg.DefaultStream = int64(s)
	return b
}

// OutputMethod sets the value representation: print, dump, export, json or yaml.
func (b *Builder) OutputMethod(method string) *Builder {
	if b.err != nil {
		return b
	}
	switch method {
	case MethodPrint, MethodDump, MethodExport, MethodJSON, MethodYAML:
		b.cfg.OutputMethod = method
	default:
		b.err = fmtErrorf("invalid output method '%s'", method)
	}
	return b
}

// StripTags toggles removal of markup from dump output.
func (b *Builder) StripTags(enable bool) *Builder {
	b.cfg.StripTags = enable
	return b
}

// TabHeaders toggles tab (true) or space (false) separation of section header parts.
func (b *Builder) TabHeaders(enable bool) *Builder {
	b.cfg.TabHeaders = enable
	return b
}

// HeaderDelimiter sets the separator that splits section header text.
func (b *Builder) HeaderDelimiter(delim string) *Builder {
	b.cfg.HeaderDelimiter = delim
	return b
}

// RunHeader toggles the run header line.
func (b *Builder) RunHeader(enable bool) *Builder {
	b.cfg.RunHeader = enable
	return b
}

// RunHeaderRandom toggles the random two-digit tag in run headers.
func (b *Builder) RunHeaderRandom(enable bool) *Builder {
	b.cfg.RunHeaderRandom = enable
	return b
}

// RunHeaderID toggles appending the run id to run headers.
func (b *Builder) RunHeaderID(enable bool) *Builder {
	b.cfg.RunHeaderID = enable
	return b
}

// TimestampFormat sets the Go time layout of the run header.
func (b *Builder) TimestampFormat(layout string) *Builder {
	b.cfg.TimestampFormat = layout
	return b
}

// BlankLinesBetween sets the number of blank lines after each entry.
func (b *Builder) BlankLinesBetween(n int64) *Builder {
	b.cfg.BlankLinesBetween = n
	return b
}

// BlankLinesBeforeRun sets the number of blank lines separating runs.
func (b *Builder) BlankLinesBeforeRun(n int64) *Builder {
	b.cfg.BlankLinesBeforeRun = n
	return b
}

// RunTimeoutS sets the idle seconds after which the next event starts a new run.
func (b *Builder) RunTimeoutS(seconds float64) *Builder {
	b.cfg.RunTimeoutS = seconds
	return b
}

// ShowIdleGap toggles the idle seconds marker before run separator lines.
func (b *Builder) ShowIdleGap(enable bool) *Builder {
	b.cfg.ShowIdleGap = enable
	return b
}

// Color toggles ANSI colors globally.
func (b *Builder) Color(enable bool) *Builder {
	b.cfg.Color = enable
	return b
}

// CategoryColor sets the toggle and escape code of one category.
func (b *Builder) CategoryColor(category string, enable bool, code string) *Builder {
	if b.err != nil {
		return b
	}
	fields := configFields(b.cfg)
	toggle, ok := fields["color_"+category]
	if !ok {
		b.err = fmtErrorf("unknown color category '%s'", category)
		return b
	}
	toggle.SetBool(enable)
	if code != "" {
		fields["color_"+category+"_code"].SetString(unescapeColorCode(code))
	}
	return b
}

// ShowCaller toggles the caller line before value dumps.
func (b *Builder) ShowCaller(enable bool) *Builder {
	b.cfg.ShowCaller = enable
	return b
}

// ShowMemory toggles the memory usage line before value dumps.
func (b *Builder) ShowMemory(enable bool) *Builder {
	b.cfg.ShowMemory = enable
	return b
}

// TraceDepth sets the number of frames rendered by WithTrace.
func (b *Builder) TraceDepth(depth int64) *Builder {
	b.cfg.TraceDepth = depth
	return b
}

// EchoStdout toggles mirroring output to stdout.
func (b *Builder) EchoStdout(enable bool) *Builder {
	b.cfg.EchoStdout = enable
	return b
}

// InternalErrorsToStderr toggles internal diagnostics.
func (b *Builder) InternalErrorsToStderr(enable bool) *Builder {
	b.cfg.InternalErrorsToStderr = enable
	return b
}

// Directory places the output and state files under dir with their default names.
func (b *Builder) Directory(dir string) *Builder {
	b.cfg.PrimaryFile = filepath.Join(dir, "output.log")
	b.cfg.SecondaryFile = filepath.Join(dir, "output2.log")
	b.cfg.StateFile = filepath.Join(dir, "state.json")
	return b
}
