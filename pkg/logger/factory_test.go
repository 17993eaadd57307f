package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/rulekit/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("json by default", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf))
		log.Info("hello")

		entry := decode(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("debug filtered at info level", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf)).Debug("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("text formatter", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithTextFormatter()).Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("static attributes", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithAttr(slog.String("svc", "test"))).Info("msg")
		assert.Equal(t, "test", decode(t, buf)["svc"])
	})

	t.Run("context values", func(t *testing.T) {
		t.Parallel()
		type key struct{}
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithContextValue("request_id", key{}),
			logger.WithContextExtractors(nil, func(ctx context.Context) (slog.Attr, bool) {
				return slog.String("locale", "de"), true
			}),
		)

		log.InfoContext(context.WithValue(context.Background(), key{}, "abc-123"), "msg")
		entry := decode(t, buf)
		assert.Equal(t, "abc-123", entry["request_id"])
		assert.Equal(t, "de", entry["locale"])

		buf.Reset()
		log.InfoContext(context.Background(), "msg")
		entry = decode(t, buf)
		assert.NotContains(t, entry, "request_id")
	})

	t.Run("extractors survive WithAttrs and WithGroup", func(t *testing.T) {
		t.Parallel()
		type key struct{}
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithContextValue("rid", key{})).
			With(slog.String("component", "http"))

		log.InfoContext(context.WithValue(context.Background(), key{}, "r1"), "msg")
		entry := decode(t, buf)
		assert.Equal(t, "r1", entry["rid"])
		assert.Equal(t, "http", entry["component"])
	})

	t.Run("invalid format panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			logger.New(logger.WithFormat("xml"))
		})
	})
}

func TestEnvironmentPresets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env      string
		wantEnv  string
		wantText bool
		debug    bool
	}{
		{"development", logger.Development, true, true},
		{"", logger.Development, true, true},
		{"staging", logger.Staging, false, false},
		{"stage", logger.Staging, false, false},
		{"production", logger.Production, false, false},
		{"PROD", logger.Production, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}
			log := logger.New(logger.WithEnvironment(tt.env, "svc"), logger.WithOutput(buf))

			log.Debug("dbg")
			if !tt.debug {
				assert.Empty(t, buf.String())
			}
			buf.Reset()

			log.Info("msg")
			if tt.wantText {
				assert.Contains(t, buf.String(), "service=svc")
				assert.Contains(t, buf.String(), "env="+tt.wantEnv)
				return
			}
			entry := decode(t, buf)
			assert.Equal(t, "svc", entry["service"])
			assert.Equal(t, tt.wantEnv, entry["env"])
		})
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		" warn": slog.LevelWarn,
		"error": slog.LevelError,
	} {
		got, err := logger.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logger.ParseLevel("loud")
	assert.Error(t, err)
}

func TestDiscard(t *testing.T) {
	t.Parallel()

	log := logger.Discard()
	assert.False(t, log.Enabled(context.Background(), slog.LevelError))
}
