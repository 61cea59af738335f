package obs

import (
	"context"
	"errors"
	"route-cost-service/internal/platform/logging"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func observe(t *testing.T) *observer.ObservedLogs {
	t.Helper()
	core, logs := observer.New(zapcore.DebugLevel)
	prev := logging.Logger
	logging.Logger = zap.New(core)
	t.Cleanup(func() { logging.Logger = prev })
	return logs
}

func TestLoggerCarriesRequestID(t *testing.T) {
	logs := observe(t)

	Logger(WithRequestID(context.Background(), "req-1")).Info("with id")
	Logger(context.Background()).Info("without id")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if got := entries[0].ContextMap()["req_id"]; got != "req-1" {
		t.Errorf("req_id = %v, want req-1", got)
	}
	if _, ok := entries[1].ContextMap()["req_id"]; ok {
		t.Errorf("unexpected req_id on entry without request")
	}
}

func TestTimeLogsOutcome(t *testing.T) {
	logs := observe(t)
	ctx := WithRequestID(context.Background(), "req-2")

	func() (err error) {
		defer Time(ctx, "quote.Quote")(&err)
		return nil
	}()
	func() (err error) {
		defer Time(ctx, "network.Load")(&err)
		return errors.New("boom")
	}()

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if entries[0].Level != zapcore.DebugLevel || entries[0].ContextMap()["op"] != "quote.Quote" {
		t.Errorf("first entry = %v %v", entries[0].Level, entries[0].ContextMap())
	}
	if entries[1].Level != zapcore.WarnLevel || entries[1].ContextMap()["req_id"] != "req-2" {
		t.Errorf("second entry = %v %v", entries[1].Level, entries[1].ContextMap())
	}
}
