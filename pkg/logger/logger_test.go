package logger

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"flashcardapp/pkg/config"
)

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.Log{Level: "loud"}, "flashcards")

	assert.ErrorContains(t, err, "invalid LOG_LEVEL")
}

func TestNew_ParsesLevel(t *testing.T) {
	l, err := New(config.Log{Level: "warn"}, "flashcards")

	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
}

func TestLogger_WritesLocally(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := wrap(zap.New(core), "flashcards", "")

	l.InfoWithTrace(context.Background(), "collection created", zap.Int64("id", 3))
	l.ErrorWithTrace(context.Background(), "query failed", zap.Error(errors.New("boom")))

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "collection created", entries[0].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "flashcards", entries[0].ContextMap()["service"])
}

func TestLogger_PushesToLoki(t *testing.T) {
	received := make(chan lokiPush, 1)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, lokiPushPath, r.URL.Path)

		body, _ := io.ReadAll(r.Body)
		var push lokiPush
		_ = json.Unmarshal(body, &push)
		received <- push

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	l := wrap(zap.NewNop(), "flashcards", server.URL)

	l.push(zapcore.InfoLevel, l.lokiLine(context.Background(), zapcore.InfoLevel, "hello", []zap.Field{
		zap.String("path", "/collections"),
		zap.Int("status", 200),
	}))

	select {
	case push := <-received:
		require.Len(t, push.Streams, 1)
		assert.Equal(t, "flashcards", push.Streams[0].Stream["service"])

		var line map[string]any
		require.NoError(t, json.Unmarshal([]byte(push.Streams[0].Values[0][1]), &line))
		assert.Equal(t, "hello", line["message"])
		assert.Equal(t, "/collections", line["path"])
		assert.EqualValues(t, 200, line["status"])
	case <-time.After(2 * time.Second):
		t.Fatal("loki push not received")
	}
}

func TestNewNop(t *testing.T) {
	l := NewNop()

	assert.NotPanics(t, func() {
		l.InfoWithTrace(context.Background(), "ignored")
	})
}
