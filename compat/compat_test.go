// FILE: lixenwraith/bwdebug/compat/compat_test.go
package compat

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/bwdebug"
)

// createTestCompatBuilder creates a standard setup for compatibility adapter tests.
// Output is plain: no colors, run headers, caller lines or blank separators.
func createTestCompatBuilder(t *testing.T) (*Builder, *bwdebug.Logger, string) {
	t.Helper()
	tmpDir := t.TempDir()
	appLogger, err := bwdebug.NewBuilder().
		Directory(tmpDir).
		Color(false).
		RunHeader(false).
		ShowCaller(false).
		BlankLinesBetween(0).
		BlankLinesBeforeRun(0).
		Build()
	require.NoError(t, err)

	builder := NewBuilder().WithLogger(appLogger)
	return builder, appLogger, tmpDir
}

// readLines returns the non-empty lines of a file
func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// TestCompatBuilder verifies the compatibility builder can be initialized correctly
func TestCompatBuilder(t *testing.T) {
	t.Run("with existing logger", func(t *testing.T) {
		builder, logger, _ := createTestCompatBuilder(t)

		gnetAdapter, err := builder.BuildGnet()
		require.NoError(t, err)
		assert.NotNil(t, gnetAdapter)
		assert.Equal(t, logger, gnetAdapter.logger)
	})

	t.Run("with config", func(t *testing.T) {
		cfg := bwdebug.DefaultConfig()
		cfg.PrimaryFile = filepath.Join(t.TempDir(), "out.log")

		builder := NewBuilder().WithConfig(cfg)
		fasthttpAdapter, err := builder.BuildFastHTTP()
		require.NoError(t, err)
		assert.NotNil(t, fasthttpAdapter)

		logger, err := builder.GetLogger()
		require.NoError(t, err)
		assert.Equal(t, cfg.PrimaryFile, logger.GetConfig().PrimaryFile)
		assert.Same(t, logger, fasthttpAdapter.logger, "builder should cache the created logger")
	})

	t.Run("without logger or config uses default", func(t *testing.T) {
		logger, err := NewBuilder().GetLogger()
		require.NoError(t, err)
		assert.Same(t, bwdebug.Default(), logger)
	})

	t.Run("nil logger is an error", func(t *testing.T) {
		_, err := NewBuilder().WithLogger(nil).BuildGnet()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot be nil")
	})
}

// TestGnetAdapter tests the gnet adapter's labels and message output
func TestGnetAdapter(t *testing.T) {
	builder, _, tmpDir := createTestCompatBuilder(t)

	var fatalMsg string
	adapter, err := builder.BuildGnet(WithFatalHandler(func(msg string) {
		fatalMsg = msg
	}))
	require.NoError(t, err)

	adapter.Debugf("gnet debug id=%d", 1)
	adapter.Infof("gnet info id=%d", 2)
	adapter.Warnf("gnet warn id=%d", 3)
	adapter.Errorf("gnet error id=%d", 4)
	adapter.Fatalf("gnet fatal id=%d", 5)

	lines := readLines(t, filepath.Join(tmpDir, "output.log"))
	expected := []string{
		"gnet.debug:", "gnet debug id=1",
		"gnet.info:", "gnet info id=2",
		"gnet.warn:", "gnet warn id=3",
		"gnet.error:", "gnet error id=4",
		"gnet.fatal:", "gnet fatal id=5",
	}
	assert.Equal(t, expected, lines)
	assert.Equal(t, "gnet fatal id=5", fatalMsg, "Custom fatal handler should have been called")
}

// TestGnetAdapterStream verifies the adapter writes to the selected stream
func TestGnetAdapterStream(t *testing.T) {
	builder, _, tmpDir := createTestCompatBuilder(t)

	adapter, err := builder.BuildGnet(WithGnetLabel("engine"), WithGnetStream(bwdebug.StreamSecondary))
	require.NoError(t, err)

	adapter.Infof("listening on %s", "tcp://:9000")

	assert.NoFileExists(t, filepath.Join(tmpDir, "output.log"))
	lines := readLines(t, filepath.Join(tmpDir, "output2.log"))
	assert.Equal(t, []string{"engine.info:", "listening on tcp://:9000"}, lines)
}

// TestFastHTTPAdapter tests the fasthttp adapter's output and severity detection
func TestFastHTTPAdapter(t *testing.T) {
	builder, _, tmpDir := createTestCompatBuilder(t)

	adapter, err := builder.BuildFastHTTP(WithErrorStream(bwdebug.StreamSecondary))
	require.NoError(t, err)

	testMessages := []string{
		"this is some informational message",
		"a debug message for the developers",
		"warning: something might be wrong",
		"an error occurred while processing",
	}
	for _, msg := range testMessages {
		adapter.Printf("%s", msg)
	}

	primary := readLines(t, filepath.Join(tmpDir, "output.log"))
	assert.Equal(t, []string{
		"fasthttp.info:", testMessages[0],
		"fasthttp.debug:", testMessages[1],
		"fasthttp.warn:", testMessages[2],
	}, primary)

	secondary := readLines(t, filepath.Join(tmpDir, "output2.log"))
	assert.Equal(t, []string{"fasthttp.error:", testMessages[3]}, secondary)
}

func TestDetectSeverity(t *testing.T) {
	tests := []struct {
		msg  string
		want Severity
	}{
		{"request served", SeverityInfo},
		{"FAILED to accept", SeverityError},
		{"panic recovered", SeverityError},
		{"deprecated option", SeverityWarn},
		{"trace id 7", SeverityDebug},
	}
	for _, tt := range tests {
		t.Run(tt.msg, func(t *testing.T) {
			assert.Equal(t, tt.want, DetectSeverity(tt.msg))
		})
	}

	assert.Equal(t, "warn", SeverityWarn.String())
	assert.Equal(t, "fasthttp.error", labelFor("fasthttp", SeverityError))
	assert.Equal(t, "info", labelFor("", SeverityInfo))
}

// TestFiberAdapter tests the Fiber adapter across its formatted methods and handlers
func TestFiberAdapter(t *testing.T) {
	builder, _, tmpDir := createTestCompatBuilder(t)

	var fatalCalled, panicCalled bool
	adapter, err := builder.BuildFiber(
		WithFiberFatalHandler(func(msg string) { fatalCalled = true }),
		WithFiberPanicHandler(func(msg string) { panicCalled = true }),
	)
	require.NoError(t, err)

	adapter.Tracef("fiber trace id=%d", 1)
	adapter.Infof("fiber info id=%d", 2)
	adapter.Error("fiber ", "error")
	adapter.Fatalf("fiber fatal id=%d", 3)
	adapter.Panicf("fiber panic id=%d", 4)
	_, err = adapter.Write([]byte("written\n"))
	require.NoError(t, err)

	lines := readLines(t, filepath.Join(tmpDir, "output.log"))
	assert.Equal(t, []string{
		"fiber.trace:", "fiber trace id=1",
		"fiber.info:", "fiber info id=2",
		"fiber.error:", "fiber error",
		"fiber.fatal:", "fiber fatal id=3",
		"fiber.panic:", "fiber panic id=4",
		"fiber.info:", "written",
	}, lines)
	assert.True(t, fatalCalled, "Custom fatal handler should have been called")
	assert.True(t, panicCalled, "Custom panic handler should have been called")
}

// TestFiberAdapterKeyValues tests that key-value variants dump one map per call
func TestFiberAdapterKeyValues(t *testing.T) {
	builder, _, tmpDir := createTestCompatBuilder(t)

	adapter, err := builder.BuildFiber(WithFiberStream(bwdebug.StreamSecondary))
	require.NoError(t, err)

	adapter.Infow("request served", "status", 200, "client_ip", "127.0.0.1")

	lines := readLines(t, filepath.Join(tmpDir, "output2.log"))
	assert.Equal(t, []string{
		"fiber.info:",
		"Map",
		"(",
		"    [client_ip] => 127.0.0.1",
		"    [msg] => request served",
		"    [status] => 200",
		")",
	}, lines)
}

func TestFields(t *testing.T) {
	m := fields("m", []any{"a", 1, 2, "two", "dangling"})
	assert.Equal(t, map[string]any{"msg": "m", "a": 1, "2": "two", "dangling": nil}, m)
}
