package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/gatekit/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("JSON format produces structured records", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithFormat(logger.FormatJSON),
			logger.WithOutput(&buf),
			logger.WithAttr(slog.String("service", "test")),
		)
		log.Info("hello", logger.Component("core"))

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "hello", record["msg"])
		assert.Equal(t, "test", record["service"])
		assert.Equal(t, "core", record["component"])
	})

	t.Run("text format is human readable", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithFormat(logger.FormatText),
			logger.WithOutput(&buf),
		)
		log.Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("level filters records", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		log := logger.New(
			logger.WithLevel(slog.LevelWarn),
			logger.WithOutput(&buf),
		)
		log.Info("dropped")
		assert.Empty(t, buf.String())

		log.Warn("kept")
		assert.Contains(t, buf.String(), "kept")
	})

	t.Run("invalid format panics at startup", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			logger.New(logger.WithFormat("yaml"))
		})
	})
}

func TestAttrs(t *testing.T) {
	t.Parallel()

	t.Run("nil error yields empty attr", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, slog.Attr{}, logger.Error(nil))
	})

	t.Run("segment attr uses the segment key", func(t *testing.T) {
		t.Parallel()
		attr := logger.Segment("body")
		assert.Equal(t, "segment", attr.Key)
		assert.Equal(t, "body", attr.Value.String())
	})
}
