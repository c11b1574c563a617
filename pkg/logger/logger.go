package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"flashcardapp/pkg/config"
	"flashcardapp/pkg/tracing"
)

const lokiPushPath = "/loki/api/v1/push"

// Logger is a trace aware zap logger that can also ship entries to Loki.
type Logger struct {
	*otelzap.Logger
	ServiceName string
	lokiURL     string
	httpClient  *http.Client
}

type lokiPush struct {
	Streams []lokiStream `json:"streams"`
}

type lokiStream struct {
	Stream map[string]string `json:"stream"`
	Values [][]string        `json:"values"`
}

func New(cfg config.Log, serviceName string) (*Logger, error) {
	zapConfig := zap.NewProductionConfig()
	zapConfig.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapConfig.EncoderConfig.TimeKey = "timestamp"

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Level, err)
	}
	zapConfig.Level = zap.NewAtomicLevelAt(level)

	zapLogger, err := zapConfig.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to create zap logger: %w", err)
	}

	return wrap(zapLogger, serviceName, cfg.LokiURL), nil
}

// NewNop discards everything. Used by tests.
func NewNop() *Logger {
	return wrap(zap.NewNop(), "test", "")
}

func wrap(zapLogger *zap.Logger, serviceName, lokiURL string) *Logger {
	l := &Logger{
		Logger:      otelzap.New(zapLogger.With(zap.String("service", serviceName))),
		ServiceName: serviceName,
		httpClient:  &http.Client{Timeout: 5 * time.Second},
	}

	if lokiURL != "" {
		l.lokiURL = lokiURL + lokiPushPath
	}

	return l
}

func (l *Logger) InfoWithTrace(ctx context.Context, msg string, fields ...zap.Field) {
	l.logWithTrace(ctx, zapcore.InfoLevel, msg, fields...)
}

func (l *Logger) WarnWithTrace(ctx context.Context, msg string, fields ...zap.Field) {
	l.logWithTrace(ctx, zapcore.WarnLevel, msg, fields...)
}

func (l *Logger) ErrorWithTrace(ctx context.Context, msg string, fields ...zap.Field) {
	l.logWithTrace(ctx, zapcore.ErrorLevel, msg, fields...)
}

func (l *Logger) logWithTrace(ctx context.Context, level zapcore.Level, msg string, fields ...zap.Field) {
	switch level {
	case zapcore.ErrorLevel:
		l.Ctx(ctx).Error(msg, fields...)
	case zapcore.WarnLevel:
		l.Ctx(ctx).Warn(msg, fields...)
	default:
		l.Ctx(ctx).Info(msg, fields...)
	}

	if l.lokiURL == "" || !l.Core().Enabled(level) {
		return
	}

	line := l.lokiLine(ctx, level, msg, fields)
	go l.push(level, line)
}

// lokiLine renders one JSON log line. Fields are encoded with zap's own
// encoder so every field type keeps its value.
func (l *Logger) lokiLine(ctx context.Context, level zapcore.Level, msg string, fields []zap.Field) []byte {
	enc := zapcore.NewMapObjectEncoder()

	for _, field := range fields {
		field.AddTo(enc)
	}

	enc.Fields["timestamp"] = time.Now().Format(time.RFC3339Nano)
	enc.Fields["level"] = level.String()
	enc.Fields["message"] = msg
	enc.Fields["service"] = l.ServiceName

	if traceID := tracing.GetTraceID(ctx); traceID != "" {
		enc.Fields["trace_id"] = traceID
		enc.Fields["span_id"] = tracing.GetSpanID(ctx)
	}

	line, err := json.Marshal(enc.Fields)
	if err != nil {
		line = []byte(strconv.Quote(msg))
	}

	return line
}

func (l *Logger) push(level zapcore.Level, line []byte) {
	body, err := json.Marshal(lokiPush{
		Streams: []lokiStream{{
			Stream: map[string]string{
				"service": l.ServiceName,
				"level":   level.String(),
			},
			Values: [][]string{{strconv.FormatInt(time.Now().UnixNano(), 10), string(line)}},
		}},
	})
	if err != nil {
		return
	}

	req, err := http.NewRequest(http.MethodPost, l.lokiURL, bytes.NewReader(body))
	if err != nil {
		return
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)
}
