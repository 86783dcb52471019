// FILE: lixenwraith/bwdebug/format.go
package bwdebug

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/dustin/go-humanize"
	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/bwdebug/sanitizer"
)

// spew markers that look like tags but must survive tag stripping
var spewMarkers = []string{"<nil>", "<max depth reached>", "<already shown>", "<invalid>"}

// dumper is the go-spew configuration for the verbose representation
var dumper = &spew.ConfigState{
	Indent:                  "    ",
	MaxDepth:                15,
	DisablePointerAddresses: true,
	SortKeys:                true,
}

// jsonPrettyOptions for the json representation
var jsonPrettyOptions = &pretty.Options{
	Width:    80,
	Prefix:   "",
	Indent:   "    ",
	SortKeys: true,
}

// valueContext carries the optional decorations of a value dump
type valueContext struct {
	caller    *Frame
	memory    string
	label     string
	trace     []Frame
	truncated int
}

// formatter builds the text of one log call. Every unit it appends ends in exactly one newline.
type formatter struct {
	cfg       *Config
	buf       []byte
	sanitizer *sanitizer.Sanitizer
	randIntN  func(int) int
}

// newFormatter creates a formatter for cfg
func newFormatter(cfg *Config) *formatter {
	return &formatter{
		cfg:       cfg,
		buf:       make([]byte, 0, 1024),
		sanitizer: sanitizer.New().Policy(sanitizer.PolicyTerminal),
		randIntN:  rand.IntN,
	}
}

// reset clears the buffer for reuse
func (f *formatter) reset() {
	f.buf = f.buf[:0]
}

// bytes returns the accumulated output
func (f *formatter) bytes() []byte {
	return f.buf
}

// appendUnit appends text as one unit colored by category: code, text, reset, newline
func (f *formatter) appendUnit(category, text string) {
	text = strings.TrimRight(text, "\r\n")
	code := f.cfg.colorFor(category)
	if code != "" {
		f.buf = append(f.buf, code...)
	}
	f.buf = append(f.buf, text...)
	if code != "" {
		f.buf = append(f.buf, colorReset...)
	}
	f.buf = append(f.buf, '\n')
}

// appendBlankLines appends n empty lines
func (f *formatter) appendBlankLines(n int64) {
	for i := int64(0); i < n; i++ {
		f.buf = append(f.buf, '\n')
	}
}

// appendIdleGap appends the ": <seconds>" marker that precedes run separator lines
func (f *formatter) appendIdleGap(elapsed time.Duration) {
	f.buf = append(f.buf, ": "...)
	f.buf = strconv.AppendInt(f.buf, int64(elapsed/time.Second), 10)
	f.buf = append(f.buf, '\n')
}

// appendRunHeader appends the run header, e.g. "-07-----14:02:51------------"
func (f *formatter) appendRunHeader(now time.Time, runID string) {
	var sb strings.Builder
	if f.cfg.RunHeaderRandom {
		fmt.Fprintf(&sb, "-%02d-----", f.randIntN(100))
	} else {
		sb.WriteString("--------")
	}
	sb.WriteString(now.Format(f.cfg.TimestampFormat))
	sb.WriteString("------------")
	if f.cfg.RunHeaderID && runID != "" {
		sb.WriteByte(' ')
		sb.WriteString(runID)
	}
	f.appendUnit(CategoryRunHeader, sb.String())
}

// sectionText splits a header on the delimiter and joins the parts with tabs or spaces
func (f *formatter) sectionText(text string) string {
	text = strings.TrimPrefix(text, f.cfg.HeaderMarker)
	text = strings.TrimRight(text, "\r\n")
	parts := strings.Split(text, f.cfg.HeaderDelimiter)

	sep := " "
	if f.cfg.TabHeaders {
		sep = "\t"
	}
	return strings.TrimRight(strings.Join(parts, sep), sep)
}

// appendSection appends a section header line
func (f *formatter) appendSection(text string) {
	f.appendUnit(CategorySection, f.clean(f.sectionText(text)))
}

// appendTimer appends a timer message
func (f *formatter) appendTimer(text string) {
	f.appendUnit(CategoryTimer, text)
}

// appendValue appends a value dump with its optional caller, memory, label and trace units
func (f *formatter) appendValue(v any, ctx valueContext) {
	if ctx.caller != nil {
		f.appendUnit(CategoryCaller, ctx.caller.String())
	}
	if ctx.memory != "" {
		f.appendUnit(CategoryMemory, ctx.memory)
	}
	if ctx.label != "" {
		f.appendUnit(CategoryLabel, f.clean(ctx.label)+":")
	}

	f.appendUnit(CategoryBody, f.render(v))

	if len(ctx.trace) > 0 {
		f.appendUnit(CategoryTrace, formatTrace(ctx.trace, ctx.truncated))
	}
}

// render serializes v using the configured output method
func (f *formatter) render(v any) string {
	var out string
	switch f.cfg.OutputMethod {
	case MethodDump:
		out = dumper.Sdump(v)
		if f.cfg.StripTags {
			out = sanitizer.StripTags(out, spewMarkers...)
		}
	case MethodExport:
		out = fmt.Sprintf("%#v", v)
	case MethodJSON:
		data, err := json.Marshal(v)
		if err != nil {
			out = fmt.Sprintf("(json: %v) %+v", err, v)
			break
		}
		out = string(pretty.PrettyOptions(data, jsonPrettyOptions))
	case MethodYAML:
		out = renderYAML(v)
	default:
		out = sprintr(v)
	}

	// An empty render still produces its own line
	if strings.TrimRight(out, "\r\n") == "" && f.cfg.OutputMethod == MethodPrint {
		out = `""`
	}
	return f.clean(out)
}

// renderYAML marshals v as YAML, falling back to %+v for values yaml cannot encode
func renderYAML(v any) (out string) {
	defer func() {
		if r := recover(); r != nil {
			out = fmt.Sprintf("(yaml: %v) %+v", r, v)
		}
	}()
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Sprintf("(yaml: %v) %+v", err, v)
	}
	return string(data)
}

// clean removes control sequences that would break color wrapping
func (f *formatter) clean(s string) string {
	if !f.cfg.SanitizeValues {
		return s
	}
	return f.sanitizer.Sanitize(s)
}

// formatTrace renders frames one per line, noting how many were cut off
func formatTrace(frames []Frame, truncated int) string {
	var sb strings.Builder
	for i, frame := range frames {
		if i > 0 {
			sb.WriteByte('\n')
		}
		fmt.Fprintf(&sb, "#%d %s", i, frame.String())
	}
	if truncated > 0 {
		fmt.Fprintf(&sb, "\n... %d more frames", truncated)
	}
	return sb.String()
}

// memoryUsage reports heap and total memory obtained from the OS
func memoryUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return fmt.Sprintf("mem: %s heap, %s sys", humanize.IBytes(m.HeapAlloc), humanize.IBytes(m.Sys))
}
