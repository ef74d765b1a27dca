package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/homegrid/homegrid/internal/domain"
	"github.com/homegrid/homegrid/internal/logger"
)

// stubStore records saved snapshots and can signal each save.
type stubStore struct {
	mu    sync.Mutex
	saved []*domain.Document
	ch    chan *domain.Document
}

func newStubStore() *stubStore {
	return &stubStore{ch: make(chan *domain.Document, 16)}
}

func (s *stubStore) Save(ctx context.Context, doc *domain.Document) error {
	s.mu.Lock()
	s.saved = append(s.saved, doc)
	s.mu.Unlock()
	s.ch <- doc
	return nil
}

func (s *stubStore) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.saved)
}

func waitForSave(t *testing.T, s *stubStore) *domain.Document {
	t.Helper()
	select {
	case doc := <-s.ch:
		return doc
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a save")
		return nil
	}
}

func docWithTitle(title string) *domain.Document {
	return &domain.Document{Title: title}
}

func TestPersisterSavesEnqueuedSnapshot(t *testing.T) {
	store := newStubStore()
	p := NewPersister(store, logger.New("error", false), time.Second)
	p.Start(context.Background())
	defer p.Stop()

	want := docWithTitle("one")
	p.Enqueue(want)

	if got := waitForSave(t, store); got != want {
		t.Errorf("saved %+v, want the enqueued snapshot", got)
	}
}

func TestEnqueueCoalescesToLatest(t *testing.T) {
	store := newStubStore()
	p := NewPersister(store, logger.New("error", false), time.Second)

	// Worker not started yet: the slot holds at most one snapshot and
	// a newer enqueue replaces the stale one.
	p.Enqueue(docWithTitle("stale"))
	latest := docWithTitle("latest")
	p.Enqueue(latest)

	p.Start(context.Background())
	got := waitForSave(t, store)
	p.Stop()

	if got != latest {
		t.Errorf("saved %q, want the latest snapshot", got.Title)
	}
	if store.count() != 1 {
		t.Errorf("saves = %d, want 1", store.count())
	}
}

func TestStopFlushesPendingSnapshot(t *testing.T) {
	store := newStubStore()
	p := NewPersister(store, logger.New("error", false), time.Second)
	p.Start(context.Background())

	// Let the worker drain the first save so the second one is still
	// sitting in the slot when Stop runs.
	p.Enqueue(docWithTitle("first"))
	waitForSave(t, store)

	pending := docWithTitle("pending")
	p.Enqueue(pending)
	p.Stop()

	store.mu.Lock()
	defer store.mu.Unlock()
	if len(store.saved) != 2 || store.saved[1] != pending {
		t.Errorf("saves = %d, last = %+v; want the pending snapshot flushed", len(store.saved), store.saved)
	}
}

func TestContextCancelFlushes(t *testing.T) {
	store := newStubStore()
	p := NewPersister(store, logger.New("error", false), time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)

	p.Enqueue(docWithTitle("first"))
	waitForSave(t, store)

	p.Enqueue(docWithTitle("pending"))
	cancel()

	// Stop waits for the worker, which flushes on cancellation.
	p.Stop()
	if store.count() != 2 {
		t.Errorf("saves = %d, want 2", store.count())
	}
}

func TestZeroTimeoutFallsBackToDefault(t *testing.T) {
	p := NewPersister(newStubStore(), logger.New("error", false), 0)
	if p.saveTimeout != DefaultSaveTimeout {
		t.Errorf("saveTimeout = %v, want %v", p.saveTimeout, DefaultSaveTimeout)
	}
}
