package persistence

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/goliatone/go-formbuilder/pkg/storage"
)

const defaultDebounce = 500 * time.Millisecond

// Option customises a Persister.
type Option func(*Persister)

// WithKey overrides the blob-store key.
func WithKey(key string) Option {
	return func(p *Persister) {
		if key != "" {
			p.key = key
		}
	}
}

// WithDebounce sets the write coalescing window. Zero writes synchronously on
// every queue call.
func WithDebounce(d time.Duration) Option {
	return func(p *Persister) {
		p.debounce = d
	}
}

// WithReporter sets the channel persistence failures are reported through.
// Failures degrade the session to in-memory-only; they are never raised to
// the user.
func WithReporter(report func(error)) Option {
	return func(p *Persister) {
		if report != nil {
			p.report = report
		}
	}
}

// Persister writes snapshots to a blob store, coalescing bursts of mutations
// into one write per debounce window. The in-memory state stays the source of
// truth: a failed write is reported and the persister goes dormant for the
// rest of the session.
type Persister struct {
	store    storage.BlobStore
	key      string
	debounce time.Duration
	report   func(error)

	mu       sync.Mutex
	timer    *time.Timer
	pending  []byte
	degraded bool
}

// New wraps a blob store with debounced snapshot writes.
func New(store storage.BlobStore, options ...Option) *Persister {
	p := &Persister{
		store:    store,
		key:      DefaultKey,
		debounce: defaultDebounce,
		report:   func(error) {},
	}
	for _, opt := range options {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Load restores the snapshot from the store. ok is false when the key is
// absent, the blob is malformed, or the store errored; the caller starts from
// the default document in every one of those cases. Only real store errors
// are reported.
func (p *Persister) Load(ctx context.Context) (Snapshot, bool) {
	blob, err := p.store.Load(ctx, p.key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			p.report(err)
		}
		return Snapshot{}, false
	}
	snap, err := Decode(blob)
	if err != nil {
		// Malformed state is discarded, equivalent to absent.
		p.report(err)
		return Snapshot{}, false
	}
	return snap, true
}

// Queue schedules a snapshot write. Later queues within the debounce window
// replace the pending blob, so only the latest state hits the store.
func (p *Persister) Queue(snap Snapshot) {
	blob, err := Encode(snap)
	if err != nil {
		p.report(err)
		return
	}

	p.mu.Lock()
	if p.degraded {
		p.mu.Unlock()
		return
	}
	if p.debounce <= 0 {
		p.mu.Unlock()
		p.write(blob)
		return
	}
	p.pending = blob
	if p.timer == nil {
		p.timer = time.AfterFunc(p.debounce, p.flushPending)
	} else {
		p.timer.Reset(p.debounce)
	}
	p.mu.Unlock()
}

// Flush writes any pending snapshot immediately.
func (p *Persister) Flush() {
	p.flushPending()
}

// Close flushes pending state and stops the debounce timer.
func (p *Persister) Close() {
	p.mu.Lock()
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	p.mu.Unlock()
	p.flushPending()
}

func (p *Persister) flushPending() {
	p.mu.Lock()
	blob := p.pending
	p.pending = nil
	degraded := p.degraded
	p.mu.Unlock()
	if blob == nil || degraded {
		return
	}
	p.write(blob)
}

func (p *Persister) write(blob []byte) {
	if err := p.store.Save(context.Background(), p.key, blob); err != nil {
		p.report(err)
		p.mu.Lock()
		p.degraded = true
		p.mu.Unlock()
	}
}
