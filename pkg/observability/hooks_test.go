package observability

import (
	"context"
	"testing"
	"time"
)

type recordingGeneratorHooks struct {
	starts    int
	completes int
}

func (h *recordingGeneratorHooks) OnGenerateStart(ctx context.Context, entries, attempts int) {
	h.starts++
}

func (h *recordingGeneratorHooks) OnGenerateComplete(ctx context.Context, placed, unplaced int, d time.Duration) {
	h.completes++
}

func TestDefaultHooksAreNoops(t *testing.T) {
	Reset()
	ctx := context.Background()

	// None of these should panic.
	Generator().OnGenerateStart(ctx, 10, 50)
	Generator().OnGenerateComplete(ctx, 8, 2, time.Second)
	Cache().OnCacheHit(ctx, "svg")
	Cache().OnCacheMiss(ctx, "svg")
	Cache().OnCacheSet(ctx, "svg", 1024)
	HTTP().OnRequest(ctx, "GET", "/healthz")
	HTTP().OnResponse(ctx, "GET", "/healthz", 200, time.Millisecond)
}

func TestSetGeneratorHooks(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	rec := &recordingGeneratorHooks{}
	SetGeneratorHooks(rec)

	ctx := context.Background()
	Generator().OnGenerateStart(ctx, 5, 10)
	Generator().OnGenerateComplete(ctx, 5, 0, time.Second)

	if rec.starts != 1 || rec.completes != 1 {
		t.Errorf("starts = %d, completes = %d, want 1 and 1", rec.starts, rec.completes)
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	rec := &recordingGeneratorHooks{}
	SetGeneratorHooks(rec)
	SetGeneratorHooks(nil)

	Generator().OnGenerateStart(context.Background(), 1, 1)
	if rec.starts != 1 {
		t.Error("nil registration replaced the current hooks")
	}
}

func TestReset(t *testing.T) {
	rec := &recordingGeneratorHooks{}
	SetGeneratorHooks(rec)
	Reset()

	Generator().OnGenerateStart(context.Background(), 1, 1)
	if rec.starts != 0 {
		t.Error("Reset did not restore no-op hooks")
	}
}
