package scheduler

import (
	"context"
	"time"

	"github.com/homegrid/homegrid/internal/domain"
	"github.com/homegrid/homegrid/internal/logger"
)

// DefaultSaveTimeout bounds a single storage write.
const DefaultSaveTimeout = 5 * time.Second

// ConfigStore is the durable side of persistence as the persister
// needs it.
type ConfigStore interface {
	Save(ctx context.Context, doc *domain.Document) error
}

// Persister writes committed snapshots to the storage slot from a
// background worker, decoupling perceived latency from storage
// latency.
//
// The queue is a single slot: enqueueing while a snapshot is already
// waiting replaces it. Every snapshot is the complete document, so the
// latest one is always the only one worth writing, and writes are
// serialized through the one worker (last-committed-wins by
// construction).
type Persister struct {
	store       ConfigStore
	logger      logger.Logger
	saveTimeout time.Duration

	pending chan *domain.Document
	stopCh  chan struct{}
	done    chan struct{}
}

// NewPersister creates a new persister.
func NewPersister(store ConfigStore, log logger.Logger, saveTimeout time.Duration) *Persister {
	if saveTimeout <= 0 {
		saveTimeout = DefaultSaveTimeout
	}
	return &Persister{
		store:       store,
		logger:      log,
		saveTimeout: saveTimeout,
		pending:     make(chan *domain.Document, 1),
		stopCh:      make(chan struct{}),
		done:        make(chan struct{}),
	}
}

// Start launches the background worker.
func (p *Persister) Start(ctx context.Context) {
	go p.run(ctx)
}

// Stop shuts the worker down and waits for it. A snapshot already
// enqueued is flushed before Stop returns: a scheduled save always
// completes.
func (p *Persister) Stop() {
	close(p.stopCh)
	<-p.done
}

// Enqueue schedules a snapshot for persistence. Never blocks: if a
// snapshot is already waiting it is replaced by the newer one.
func (p *Persister) Enqueue(doc *domain.Document) {
	for {
		select {
		case p.pending <- doc:
			return
		default:
		}
		// Slot occupied by a stale snapshot. Drain it and retry.
		select {
		case <-p.pending:
		default:
		}
	}
}

func (p *Persister) run(ctx context.Context) {
	defer close(p.done)

	for {
		select {
		case doc := <-p.pending:
			p.save(ctx, doc)
		case <-p.stopCh:
			p.flush()
			return
		case <-ctx.Done():
			p.flush()
			return
		}
	}
}

// flush writes any snapshot still waiting at shutdown, using a fresh
// context because the run context may already be cancelled.
func (p *Persister) flush() {
	select {
	case doc := <-p.pending:
		p.save(context.Background(), doc)
	default:
	}
}

func (p *Persister) save(ctx context.Context, doc *domain.Document) {
	saveCtx, cancel := context.WithTimeout(ctx, p.saveTimeout)
	defer cancel()

	if err := p.store.Save(saveCtx, doc); err != nil {
		// In-memory state stays the source of truth; the next
		// successful save carries the full document anyway.
		p.logger.Warn("failed to persist document",
			logger.Error(err))
		return
	}

	p.logger.Debug("document persisted",
		logger.Int("categories", len(doc.Categories)))
}
