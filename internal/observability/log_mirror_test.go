package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"
	"go.uber.org/zap/zapcore"
)

func TestIsQuietAccessLog(t *testing.T) {
	tests := []struct {
		msg  string
		args []any
		want bool
	}{
		{msg: "http request", args: []any{"method", "GET", "path", "/healthz"}, want: true},
		{msg: "http request", args: []any{"path", "/metrics"}, want: true},
		{msg: "http request", args: []any{"path", "/adicionar_gol"}, want: false},
		{msg: "goal recorded", args: []any{"path", "/healthz"}, want: false},
		{msg: "http request", args: []any{"path"}, want: false},
	}
	for _, tt := range tests {
		if got := isQuietAccessLog(tt.msg, tt.args); got != tt.want {
			t.Fatalf("isQuietAccessLog(%q, %v)=%v want=%v", tt.msg, tt.args, got, tt.want)
		}
	}
}

func TestLogAttributes(t *testing.T) {
	attrs := logAttributes([]any{"player_id", int64(7), 42, "Ana", "error", errors.New("boom"), "dangling"})
	if len(attrs) != 4 {
		t.Fatalf("expected 4 attributes, got %d", len(attrs))
	}
	if attrs[0].Key != "player_id" || attrs[0].Value.AsInt64() != 7 {
		t.Fatalf("unexpected player_id attribute: %v", attrs[0])
	}
	if attrs[1].Key != "arg_1" || attrs[1].Value.AsString() != "Ana" {
		t.Fatalf("unexpected positional attribute: %v", attrs[1])
	}
	if attrs[2].Value.AsString() != "boom" {
		t.Fatalf("unexpected error attribute: %v", attrs[2].Value)
	}
	if attrs[3].Key != "dangling" || attrs[3].Value.Kind() != otellog.KindEmpty {
		t.Fatalf("unexpected dangling attribute: %v", attrs[3])
	}
	if got := logAttributes(nil); len(got) != 0 {
		t.Fatalf("expected no attributes, got %d", len(got))
	}
}

func TestLogValue(t *testing.T) {
	ts := time.Date(2024, time.March, 10, 12, 0, 0, 0, time.UTC)
	if got := logValue(ts).AsString(); got != "2024-03-10T12:00:00Z" {
		t.Fatalf("unexpected time value %q", got)
	}
	if got := logValue(time.Second).AsString(); got != "1s" {
		t.Fatalf("unexpected duration value %q", got)
	}
	if got := logValue([]string{"a", "b"}); got.Kind() != otellog.KindSlice || len(got.AsSlice()) != 2 {
		t.Fatalf("unexpected slice value %v", got)
	}
	if got := logValue(struct{ N int }{3}).AsString(); got != "{3}" {
		t.Fatalf("unexpected fallback value %q", got)
	}
}

func TestSeverityOf(t *testing.T) {
	tests := map[zapcore.Level]otellog.Severity{
		zapcore.DebugLevel: otellog.SeverityDebug,
		zapcore.InfoLevel:  otellog.SeverityInfo,
		zapcore.WarnLevel:  otellog.SeverityWarn,
		zapcore.ErrorLevel: otellog.SeverityError,
		zapcore.FatalLevel: otellog.SeverityFatal,
	}
	for level, want := range tests {
		if got := severityOf(level); got != want {
			t.Fatalf("severityOf(%s)=%v want=%v", level, got, want)
		}
	}
}

func TestLogMirror_EmitWithoutProviderIsSafe(t *testing.T) {
	m := newLogMirror("test")
	m.emit(context.Background(), zapcore.InfoLevel, "goal recorded", "player_id", int64(1))
	m.emit(context.Background(), zapcore.InfoLevel, "http request", "path", "/healthz")
}
