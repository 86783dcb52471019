// FILE: lixenwraith/bwdebug/builder_test.go
package bwdebug

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_Build(t *testing.T) {
	t.Run("successful build returns configured logger", func(t *testing.T) {
		tmpDir := t.TempDir()

		logger, err := NewBuilder().
			Directory(tmpDir).
			DefaultStream(StreamSecondary).
			OutputMethod(MethodJSON).
			TabHeaders(false).
			HeaderDelimiter("|").
			RunHeaderID(true).
			TimestampFormat("15:04").
			BlankLinesBetween(2).
			RunTimeoutS(1.5).
			ShowMemory(true).
			TraceDepth(3).
			EchoStdout(true).
			Build()

		require.NoError(t, err, "Builder.Build() should not return an error on valid config")
		require.NotNil(t, logger, "Builder.Build() should return a non-nil logger")

		cfg := logger.GetConfig()
		require.NotNil(t, cfg)

		assert.Equal(t, filepath.Join(tmpDir, "output.log"), cfg.PrimaryFile)
		assert.Equal(t, filepath.Join(tmpDir, "output2.log"), cfg.SecondaryFile)
		assert.Equal(t, filepath.Join(tmpDir, "state.json"), cfg.StateFile)
		assert.Equal(t, int64(2), cfg.DefaultStream)
		assert.Equal(t, MethodJSON, cfg.OutputMethod)
		assert.False(t, cfg.TabHeaders)
		assert.Equal(t, "|", cfg.HeaderDelimiter)
		assert.True(t, cfg.RunHeaderID)
		assert.Equal(t, "15:04", cfg.TimestampFormat)
		assert.Equal(t, int64(2), cfg.BlankLinesBetween)
		assert.Equal(t, 1.5, cfg.RunTimeoutS)
		assert.True(t, cfg.ShowMemory)
		assert.Equal(t, int64(3), cfg.TraceDepth)
		assert.True(t, cfg.EchoStdout)
	})

	t.Run("category colors", func(t *testing.T) {
		logger, err := NewBuilder().
			CategoryColor(CategoryBody, false, "").
			CategoryColor(CategoryLabel, true, `\e[35m`).
			Build()
		require.NoError(t, err)

		cfg := logger.GetConfig()
		assert.False(t, cfg.ColorBody)
		assert.Equal(t, ColorCyan, cfg.ColorBodyCode, "empty code keeps the default")
		assert.Equal(t, "\033[35m", cfg.ColorLabelCode)
	})

	t.Run("builder error accumulation", func(t *testing.T) {
		logger, err := NewBuilder().
			OutputMethod("xml").
			DefaultStream(Stream(3)). // Not evaluated after the first error
			Build()

		require.Error(t, err, "Build should fail with an invalid output method")
		assert.Contains(t, err.Error(), "invalid output method 'xml'")
		assert.Nil(t, logger, "A nil logger should be returned on build error")
	})

	t.Run("invalid stream", func(t *testing.T) {
		_, err := NewBuilder().DefaultStream(Stream(0)).Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid stream 0")
	})

	t.Run("unknown color category", func(t *testing.T) {
		_, err := NewBuilder().CategoryColor("rainbow", true, "").Build()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown color category 'rainbow'")
	})
}
