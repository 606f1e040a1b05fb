package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Run("KnownLevels", func(t *testing.T) {
		cases := map[string]slog.Level{
			"DEBUG": slog.LevelDebug,
			"info":  slog.LevelInfo,
			"Warn":  slog.LevelWarn,
			"ERROR": slog.LevelError,
			"":      slog.LevelInfo,
		}
		for in, want := range cases {
			got, err := parseLevel(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, got, in)
		}
	})

	t.Run("UnknownLevelFails", func(t *testing.T) {
		_, err := parseLevel("verbose")
		assert.Error(t, err)
	})
}

func TestInitWithWriter(t *testing.T) {
	t.Run("TextFormat", func(t *testing.T) {
		var buf bytes.Buffer
		InitWithWriter(&buf, slog.LevelInfo, "text")

		Info("hello", "key", "value")

		assert.Contains(t, buf.String(), "hello")
		assert.Contains(t, buf.String(), "key=value")
	})

	t.Run("JSONFormat", func(t *testing.T) {
		var buf bytes.Buffer
		InitWithWriter(&buf, slog.LevelInfo, "json")

		Info("hello", "key", "value")

		var record map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		assert.Equal(t, "hello", record["msg"])
		assert.Equal(t, "value", record["key"])
	})

	t.Run("LevelFiltering", func(t *testing.T) {
		var buf bytes.Buffer
		InitWithWriter(&buf, slog.LevelWarn, "text")

		Debug("quiet")
		Info("quiet")
		Warn("loud")

		assert.NotContains(t, buf.String(), "quiet")
		assert.Contains(t, buf.String(), "loud")
	})
}

func TestInit(t *testing.T) {
	t.Run("RejectsUnknownLevel", func(t *testing.T) {
		err := Init(Config{Level: "nope", Format: "text", Output: "stderr"})
		assert.Error(t, err)
	})

	t.Run("AcceptsStdStreams", func(t *testing.T) {
		assert.NoError(t, Init(Config{Level: "INFO", Format: "text", Output: "stderr"}))
		assert.NoError(t, Init(Config{Level: "INFO", Format: "json", Output: "stdout"}))
	})
}
