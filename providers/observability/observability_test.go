package observability

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestSpanContextRoundTrip(t *testing.T) {
	if got := SpanFromContext(context.Background()); got != nil {
		t.Errorf("expected nil span from a bare context, got %v", got)
	}

	_, span := StartSpan(context.Background(), slog.New(slog.DiscardHandler), "test")
	ctx := ContextWithSpan(context.Background(), span)

	if got := SpanFromContext(ctx); got != span {
		t.Error("expected the stored span back from the context")
	}
}

func TestStartSpanStoresItselfInContext(t *testing.T) {
	ctx, span := StartSpan(context.Background(), slog.New(slog.DiscardHandler), "send")
	defer span.End()

	if SpanFromContext(ctx) != span {
		t.Error("expected StartSpan to propagate the span through the returned context")
	}
}

func TestSlogSpanEmitsLifecycleEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, span := StartSpan(context.Background(), logger, "ai.send", String("ai.model", "gpt-4o"))
	span.AddEvent("http.response.received", Int("http.status_code", 200))
	span.End()

	out := buf.String()
	for _, want := range []string{"span.start", "http.response.received", "span.end", "ai.send", "gpt-4o", "duration"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected log output to contain %q, got:\n%s", want, out)
		}
	}
}

func TestSlogSpanRecordsErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, span := StartSpan(context.Background(), logger, "ai.send")
	span.RecordError(errors.New("upstream exploded"))
	span.End()

	out := buf.String()
	if !strings.Contains(out, "span.error") || !strings.Contains(out, "upstream exploded") {
		t.Errorf("expected recorded error in log output, got:\n%s", out)
	}
	if !strings.Contains(out, "level=ERROR") {
		t.Errorf("expected error level for failed span end, got:\n%s", out)
	}
}

func TestAttributeHelpers(t *testing.T) {
	if attr := String("k", "v"); attr.Key != "k" || attr.Value != "v" {
		t.Errorf("unexpected string attribute: %+v", attr)
	}
	if attr := Int("n", 42); attr.Value != 42 {
		t.Errorf("unexpected int attribute: %+v", attr)
	}
	if attr := Int64("n", int64(7)); attr.Value != int64(7) {
		t.Errorf("unexpected int64 attribute: %+v", attr)
	}
	if attr := Bool("b", true); attr.Value != true {
		t.Errorf("unexpected bool attribute: %+v", attr)
	}
	if attr := Duration("d", time.Second); attr.Value != time.Second {
		t.Errorf("unexpected duration attribute: %+v", attr)
	}
	if attr := Error(errors.New("boom")); attr.Key != "error" || attr.Value != "boom" {
		t.Errorf("unexpected error attribute: %+v", attr)
	}
}
