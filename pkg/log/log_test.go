package log_test

import (
	"context"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"wardrobe-planner/pkg/log"
)

func TestNewWithZapRequestID(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := log.NewWithZap(zap.New(core))

	ctx := log.WithRequestID(context.Background(), "req-1")
	l.Infof(ctx, "hello %s", "world")
	l.Debug(context.Background(), "plain")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Message != "hello world" {
		t.Errorf("unexpected message: %q", entries[0].Message)
	}
	if entries[0].ContextMap()["request_id"] != "req-1" {
		t.Errorf("expected request_id field, got %v", entries[0].ContextMap())
	}
	if _, ok := entries[1].ContextMap()["request_id"]; ok {
		t.Errorf("did not expect request_id on untagged context")
	}
}

func TestInitUnknownLevelFallsBack(t *testing.T) {
	l := log.Init(log.ZapConfig{Level: "loud", Mode: "production", Encoding: "json"})
	if l == nil {
		t.Fatal("expected logger")
	}
	l.Info(context.Background(), "ok")
}

func TestNop(t *testing.T) {
	l := log.NewNop()
	l.Errorf(context.Background(), "ignored %d", 1)
}
