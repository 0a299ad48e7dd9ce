package logging_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/libris/pkg/logging"
)

func TestConfigFunctions(t *testing.T) {
	// Save and restore the original logger and level
	originalLogger := *logging.Default()
	originalLevel := zerolog.GlobalLevel()
	defer func() {
		logging.SetDefault(originalLogger)
		zerolog.SetGlobalLevel(originalLevel)
	}()

	t.Run("DefaultConfig returns sensible defaults", func(t *testing.T) {
		cfg := logging.DefaultConfig()
		assert.NotNil(t, cfg)
		assert.Equal(t, "info", cfg.Level)
		assert.Equal(t, "auto", cfg.Format)
		assert.False(t, cfg.AddCaller)
		assert.Equal(t, "stderr", cfg.Output)
	})

	t.Run("NewLoggerFromConfig writes to configured file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "libris.log")

		cfg := &logging.Config{
			Level:  "debug",
			Format: "json",
			Output: path,
		}

		logger := logging.NewLoggerFromConfig(cfg)
		logger.Info().Str("title", "The Hobbit").Msg("borrowed")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "borrowed")
		assert.Contains(t, string(content), "The Hobbit")
	})

	t.Run("InvalidLevelFallsBackToInfo", func(t *testing.T) {
		cfg := &logging.Config{Level: "loud", Format: "json"}
		logger := logging.NewLoggerFromConfig(cfg)
		assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())
	})
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.New(&buf)
	logger.Info().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestContext(t *testing.T) {
	t.Run("RoundTrip", func(t *testing.T) {
		var buf bytes.Buffer
		logger := logging.New(&buf)

		ctx := logging.WithLogger(context.Background(), &logger)
		logging.FromContext(ctx).Info().Msg("from context")

		assert.Contains(t, buf.String(), "from context")
	})

	t.Run("MissingLoggerReturnsDefault", func(t *testing.T) {
		assert.Equal(t, logging.Default(), logging.FromContext(context.Background()))
		assert.Equal(t, logging.Default(), logging.FromContext(nil)) //nolint:staticcheck // nil context is the case under test
	})
}
