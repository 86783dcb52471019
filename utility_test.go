// FILE: lixenwraith/bwdebug/utility_test.go
package bwdebug

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeyValue(t *testing.T) {
	tests := []struct {
		input     string
		wantKey   string
		wantValue string
		wantErr   bool
	}{
		{"key=value", "key", "value", false},
		{" key = value ", "key", "value", false},
		{"key=value=with=equals", "key", "value=with=equals", false},
		{"noequals", "", "", true},
		{"=value", "", "", true},
		{"key=", "key", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			key, value, err := parseKeyValue(tt.input)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantKey, key)
				assert.Equal(t, tt.wantValue, value)
			}
		})
	}
}

func TestFmtErrorf(t *testing.T) {
	err := fmtErrorf("test error: %s", "details")
	assert.Error(t, err)
	assert.Equal(t, "bwdebug: test error: details", err.Error())

	// Already prefixed
	err = fmtErrorf("bwdebug: already prefixed")
	assert.Equal(t, "bwdebug: already prefixed", err.Error())
}

func TestCombineErrors(t *testing.T) {
	errA := errors.New("a")
	errB := errors.New("b")

	assert.Nil(t, combineErrors(nil, nil))
	assert.Equal(t, errA, combineErrors(errA, nil))
	assert.Equal(t, errB, combineErrors(nil, errB))

	combined := combineErrors(errA, errB)
	assert.Equal(t, "a; b", combined.Error())
	assert.ErrorIs(t, combined, errA)
	assert.ErrorIs(t, combined, errB)
}

func TestSplitFuncName(t *testing.T) {
	tests := []struct {
		full      string
		wantPkg   string
		wantClass string
		wantFn    string
	}{
		{"main.main", "main", "", "main"},
		{"github.com/a/b.Run", "github.com/a/b", "", "Run"},
		{"github.com/a/b.(*Server).Serve", "github.com/a/b", "Server", "Serve"},
		{"github.com/a/b.Point.String", "github.com/a/b", "Point", "String"},
		{"github.com/a/b.Run.func1", "github.com/a/b", "", "(anonymous in Run)"},
		{"github.com/a/b.(*Server).Serve.func2.1", "github.com/a/b", "Server", "(anonymous in Serve)"},
		{"gopkg.in/yaml%2ev3.Marshal", "gopkg.in/yaml%2ev3", "", "Marshal"},
	}

	for _, tt := range tests {
		t.Run(tt.full, func(t *testing.T) {
			pkg, class, fn := splitFuncName(tt.full)
			assert.Equal(t, tt.wantPkg, pkg)
			assert.Equal(t, tt.wantClass, class)
			assert.Equal(t, tt.wantFn, fn)
		})
	}
}

func TestCallerFrame(t *testing.T) {
	f := callerFrame(0)

	assert.Equal(t, "utility_test.go", filepath.Base(f.File))
	assert.Equal(t, "TestCallerFrame", f.Function)
	assert.Equal(t, "github.com/lixenwraith/bwdebug", f.Package)
	assert.Empty(t, f.Class)
	assert.Greater(t, f.Line, 0)
	assert.True(t, strings.HasSuffix(f.String(), "TestCallerFrame"))
}

func TestFrameString(t *testing.T) {
	assert.Equal(t, "/src/main.go:7 run", Frame{File: "/src/main.go", Line: 7, Function: "run"}.String())
	assert.Equal(t, "/src/srv.go:12 Server::Serve",
		Frame{File: "/src/srv.go", Line: 12, Function: "Serve", Class: "Server"}.String())
}

func TestGetTrace(t *testing.T) {
	trace, truncated := getTrace(0, 0)
	assert.Empty(t, trace)
	assert.Zero(t, truncated)

	trace, truncated = getTrace(1, 0)
	require.Len(t, trace, 1)
	assert.Equal(t, "TestGetTrace", trace[0].Function)
	assert.GreaterOrEqual(t, truncated, 1, "the test runner frame is cut off")

	trace, _ = getTrace(100, 0)
	assert.LessOrEqual(t, len(trace), maxTraceDepth)
	for _, f := range trace {
		assert.False(t, strings.HasPrefix(f.Package, "runtime"))
	}
}

func TestHereHeader(t *testing.T) {
	f := Frame{File: "/src/app/main.go", Line: 42, Function: "run", Class: "Server"}
	assert.Equal(t, "/src/app#main.go#Server::run():42", hereHeader(f, "#"))

	f.Class = ""
	assert.Equal(t, "/src/app|main.go|run():42", hereHeader(f, "|"))
}
