package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestTeeHandlerDropsNil(t *testing.T) {
	if _, ok := TeeHandler(nil, nil).(NoopHandler); !ok {
		t.Fatal("expected NoopHandler when every handler is nil")
	}
	var buf bytes.Buffer
	inner := slog.NewJSONHandler(&buf, nil)
	if h := TeeHandler(nil, inner); h != inner {
		t.Fatal("expected single handler to be returned unwrapped")
	}
}

func TestTeeHandlerRoutesByLevel(t *testing.T) {
	var infoBuf, debugBuf bytes.Buffer
	h := TeeHandler(
		slog.NewTextHandler(&infoBuf, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug}),
	)
	if !h.Enabled(context.Background(), slog.LevelDebug) {
		t.Fatal("expected tee to accept debug when one handler does")
	}
	logger := slog.New(h).With("component", "test")
	logger.Debug("debug line")
	logger.Info("info line")

	if strings.Contains(infoBuf.String(), "debug line") {
		t.Fatalf("info handler received debug record: %q", infoBuf.String())
	}
	if !strings.Contains(debugBuf.String(), "debug line") || !strings.Contains(debugBuf.String(), "info line") {
		t.Fatalf("debug handler missing records: %q", debugBuf.String())
	}
	if !strings.Contains(infoBuf.String(), "component=test") {
		t.Fatalf("expected attrs to propagate: %q", infoBuf.String())
	}
}
