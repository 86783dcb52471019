// FILE: lixenwraith/bwdebug/utility.go
package bwdebug

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"
	"unicode/utf8"
)

const errPrefix = "bwdebug: "

// callerFrame resolves the frame skip levels above its caller.
func callerFrame(skip int) Frame {
	pc, file, line, ok := runtime.Caller(skip + 1) // +1 for callerFrame itself
	if !ok {
		return Frame{File: "(unknown)"}
	}
	f := Frame{File: file, Line: line}
	if fn := runtime.FuncForPC(pc); fn != nil {
		f.Package, f.Class, f.Function = splitFuncName(fn.Name())
	}
	return f
}

// getTrace returns up to depth frames starting skip levels above its caller,
// and the number of frames beyond depth that were cut off.
func getTrace(depth int64, skip int) ([]Frame, int) {
	if depth <= 0 {
		return nil, 0
	}
	if depth > maxTraceDepth {
		depth = maxTraceDepth
	}

	pc := make([]uintptr, 64)
	n := runtime.Callers(skip+2, pc) // +2 for runtime.Callers and getTrace
	if n == 0 {
		return nil, 0
	}

	frames := runtime.CallersFrames(pc[:n])
	var trace []Frame
	total := 0
	for {
		frame, more := frames.Next()
		// Stop at the runtime entry frames
		if strings.HasPrefix(frame.Function, "runtime.") {
			break
		}
		total++
		if len(trace) < int(depth) {
			pkg, class, fn := splitFuncName(frame.Function)
			trace = append(trace, Frame{
				File:     frame.File,
				Line:     frame.Line,
				Function: fn,
				Class:    class,
				Package:  pkg,
			})
		}
		if !more {
			break
		}
	}
	return trace, total - len(trace)
}

// splitFuncName splits a runtime function name such as
// "github.com/a/b.(*Type).Method.func1" into package, receiver type and function.
func splitFuncName(full string) (pkg, class, fn string) {
	dir, base := "", full
	if i := strings.LastIndex(full, "/"); i >= 0 {
		dir, base = full[:i+1], full[i+1:]
	}

	parts := strings.Split(base, ".")
	pkg = dir + parts[0]
	rest := parts[1:]
	if len(rest) == 0 {
		return pkg, "", parts[0]
	}

	if r := rest[0]; strings.HasPrefix(r, "(") || (len(rest) > 1 && !isAnonymous(rest[1]) && isTypeName(r)) {
		class = strings.TrimSuffix(strings.TrimPrefix(strings.TrimPrefix(r, "("), "*"), ")")
		rest = rest[1:]
	}

	fn = rest[0]
	if len(rest) > 1 && isAnonymous(rest[len(rest)-1]) {
		fn = fmt.Sprintf("(anonymous in %s)", rest[0])
	}
	return pkg, class, fn
}

// isAnonymous reports closure segments such as "func1" or "1"
func isAnonymous(seg string) bool {
	seg = strings.TrimPrefix(seg, "func")
	if seg == "" {
		return false
	}
	for _, r := range seg {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isTypeName reports value receiver segments, which runtime names without parentheses
func isTypeName(seg string) bool {
	r, _ := utf8.DecodeRuneInString(seg)
	return unicode.IsUpper(r)
}

// hereHeader builds the "dir#file#function():line" section header text for a frame
func hereHeader(f Frame, delimiter string) string {
	name := f.Function
	if f.Class != "" {
		name = f.Class + "::" + f.Function
	}
	return strings.Join([]string{
		filepath.Dir(f.File),
		filepath.Base(f.File),
		fmt.Sprintf("%s():%d", name, f.Line),
	}, delimiter)
}

// fmtErrorf wrapper
func fmtErrorf(format string, args ...any) error {
	if !strings.HasPrefix(format, errPrefix) {
		format = errPrefix + format
	}
	return fmt.Errorf(format, args...)
}

// combineErrors helper
func combineErrors(err1, err2 error) error {
	if err1 == nil {
		return err2
	}
	if err2 == nil {
		return err1
	}
	return fmt.Errorf("%w; %w", err1, err2)
}

// parseKeyValue splits a "key=value" string.
func parseKeyValue(arg string) (string, string, error) {
	parts := strings.SplitN(strings.TrimSpace(arg), "=", 2)
	if len(parts) != 2 {
		return "", "", fmtErrorf("invalid format in override string '%s', expected key=value", arg)
	}
	key := strings.TrimSpace(parts[0])
	value := strings.TrimSpace(parts[1])
	if key == "" {
		return "", "", fmtErrorf("key cannot be empty in override string '%s'", arg)
	}
	return key, value, nil
}

// ensureDir creates the parent directory of path
func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return fmtErrorf("failed to create directory '%s': %w", dir, err)
	}
	return nil
}
