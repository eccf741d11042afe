package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitekit/pkg/logger"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew_Formats(t *testing.T) {
	t.Parallel()

	t.Run("json by default", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf)).Info("hello")
		entry := decodeEntry(t, buf)
		assert.Equal(t, "INFO", entry["level"])
		assert.Equal(t, "hello", entry["msg"])
	})

	t.Run("last formatter wins", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithJSONFormatter(), logger.WithTextFormatter()).Info("hello")
		assert.Contains(t, buf.String(), "level=INFO")
		assert.Contains(t, buf.String(), "msg=hello")
	})

	t.Run("unknown format panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() { logger.New(logger.WithFormat(logger.Format("xml"))) })
	})

	t.Run("nil output keeps previous writer", func(t *testing.T) {
		t.Parallel()
		buf := &bytes.Buffer{}
		logger.New(logger.WithOutput(buf), logger.WithOutput(nil)).Info("kept")
		assert.Equal(t, "kept", decodeEntry(t, buf)["msg"])
	})
}

func TestPresets(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		opt        logger.Option
		env        string
		debugShown bool
		json       bool
	}{
		{"development", logger.WithDevelopment("sitekit"), logger.EnvDevelopment, true, false},
		{"staging", logger.WithStaging("sitekit"), logger.EnvStaging, false, true},
		{"production", logger.WithProduction("sitekit"), logger.EnvProduction, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			buf := &bytes.Buffer{}
			log := logger.New(tt.opt, logger.WithOutput(buf))

			log.Debug("debug line")
			assert.Equal(t, tt.debugShown, bytes.Contains(buf.Bytes(), []byte("debug line")))

			buf.Reset()
			log.Info("info line")
			if tt.json {
				entry := decodeEntry(t, buf)
				assert.Equal(t, "sitekit", entry["service"])
				assert.Equal(t, tt.env, entry["env"])
				return
			}
			assert.Contains(t, buf.String(), "service=sitekit")
			assert.Contains(t, buf.String(), "env="+tt.env)
		})
	}
}

func TestPresets_EmptyServiceIsNoop(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	log := logger.New(logger.WithEnvironment(logger.EnvDevelopment, ""), logger.WithOutput(buf))

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Info("msg")
	entry := decodeEntry(t, buf)
	assert.NotContains(t, entry, "service")
	assert.NotContains(t, entry, "env")
}

func TestPresets_LevelOverride(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithEnvironment("prod", "sitekit"),
		logger.WithLevel(slog.LevelDebug),
		logger.WithOutput(buf),
	)
	log.Debug("visible")
	entry := decodeEntry(t, buf)
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, logger.EnvProduction, entry["env"])
}

func TestNew_ContextValues(t *testing.T) {
	t.Parallel()
	type key string

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithAttr(slog.String("component", "test")),
		logger.WithContextValue("tenant", key("tenant")),
		logger.WithContextValue("", key("ignored")),
		logger.WithContextExtractors(nil),
	)

	ctx := context.WithValue(context.Background(), key("tenant"), "acme")
	log.InfoContext(ctx, "msg")
	entry := decodeEntry(t, buf)
	assert.Equal(t, "acme", entry["tenant"])
	assert.Equal(t, "test", entry["component"])

	buf.Reset()
	log.Info("no ctx value")
	assert.NotContains(t, decodeEntry(t, buf), "tenant")
}

func TestNew_HandlerOptions(t *testing.T) {
	t.Parallel()
	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithLevel(slog.LevelDebug),
		logger.WithHandlerOptions(&slog.HandlerOptions{Level: slog.LevelWarn}),
	)
	log.Info("dropped")
	assert.Empty(t, buf.String())

	log.Warn("kept")
	assert.Equal(t, "kept", decodeEntry(t, buf)["msg"])
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("default")
	assert.Equal(t, "default", decodeEntry(t, buf)["msg"])
}
