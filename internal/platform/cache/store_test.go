package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return "value", nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.(string); got != "value" {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_UsesCachedValueAfterFirstLoad(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("first GetOrLoad error: %v", err)
	}
	if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
		t.Fatalf("second GetOrLoad error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")

func TestStore_ExpiresAfterTTL(t *testing.T) {
	store := NewStore(time.Minute)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "k", 1)
	if _, ok := store.Get(context.Background(), "k"); !ok {
		t.Fatalf("expected fresh entry")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected expired entry to be evicted")
	}
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d", store.Len())
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Minute)
	store.Set(ctx, "topscorers:2024-03", 1)
	store.Set(ctx, "topscorers:2024", 2)
	store.Set(ctx, "players:list", 3)

	store.DeletePrefix(ctx, "topscorers:")

	if _, ok := store.Get(ctx, "topscorers:2024-03"); ok {
		t.Fatalf("expected monthly entry removed")
	}
	if _, ok := store.Get(ctx, "topscorers:2024"); ok {
		t.Fatalf("expected yearly entry removed")
	}
	if _, ok := store.Get(ctx, "players:list"); !ok {
		t.Fatalf("expected unrelated entry kept")
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	store := NewStore(time.Minute)
	var calls atomic.Int32
	failing := errors.New("store down")

	loader := func(context.Context) (any, error) {
		if calls.Add(1) == 1 {
			return nil, failing
		}
		return "ok", nil
	}

	if _, err := store.GetOrLoad(context.Background(), "k", loader); !errors.Is(err, failing) {
		t.Fatalf("expected loader error, got %v", err)
	}
	v, err := store.GetOrLoad(context.Background(), "k", loader)
	if err != nil || v != "ok" {
		t.Fatalf("expected retry to load, got v=%v err=%v", v, err)
	}
}

func TestStore_GetOrLoad_SkipsStoreAfterConcurrentInvalidation(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Minute)

	v, err := store.GetOrLoad(ctx, "topscorers:k", func(ctx context.Context) (any, error) {
		store.DeletePrefix(ctx, "topscorers:")
		return "stale", nil
	})
	if err != nil || v != "stale" {
		t.Fatalf("unexpected load result: v=%v err=%v", v, err)
	}
	if _, ok := store.Get(ctx, "topscorers:k"); ok {
		t.Fatalf("value loaded across an invalidation must not be cached")
	}
}

func TestStore_ZeroTTLNeverExpires(t *testing.T) {
	store := NewStore(0)
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "k", 1)
	now = now.AddDate(1, 0, 0)
	if v, ok := store.Get(context.Background(), "k"); !ok || v != 1 {
		t.Fatalf("expected entry without TTL to survive, got v=%v ok=%v", v, ok)
	}
}

func TestStore_GetOrLoad_NilLoader(t *testing.T) {
	if _, err := NewStore(time.Minute).GetOrLoad(context.Background(), "k", nil); err == nil {
		t.Fatalf("expected error for nil loader")
	}
}

func TestStore_GetOrLoad_InvalidationStartsFreshLoad(t *testing.T) {
	ctx := context.Background()
	store := NewStore(time.Minute)

	started := make(chan struct{})
	release := make(chan struct{})
	firstDone := make(chan any, 1)

	go func() {
		v, _ := store.GetOrLoad(ctx, "topscorers:k", func(context.Context) (any, error) {
			close(started)
			<-release
			return "before-goal", nil
		})
		firstDone <- v
	}()
	<-started

	store.DeletePrefix(ctx, "topscorers:")

	var calls atomic.Int32
	v, err := store.GetOrLoad(ctx, "topscorers:k", func(context.Context) (any, error) {
		calls.Add(1)
		return "after-goal", nil
	})
	close(release)

	if err != nil {
		t.Fatalf("load after invalidation: %v", err)
	}
	if v != "after-goal" || calls.Load() != 1 {
		t.Fatalf("expected a fresh load after invalidation, got v=%v calls=%d", v, calls.Load())
	}
	if got := <-firstDone; got != "before-goal" {
		t.Fatalf("in-flight caller got %v", got)
	}
	if cached, ok := store.Get(ctx, "topscorers:k"); !ok || cached != "after-goal" {
		t.Fatalf("expected fresh value cached, got v=%v ok=%v", cached, ok)
	}
}
