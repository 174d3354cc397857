package builder

import (
	"time"

	"github.com/goliatone/go-formbuilder/pkg/persistence"
	"github.com/goliatone/go-formbuilder/pkg/storage"
)

// Option customises the builder configuration.
type Option func(*Builder)

// WithStore persists editor state to the given blob store. Defaults to an
// in-memory store.
func WithStore(store storage.BlobStore) Option {
	return func(b *Builder) {
		b.store = store
	}
}

// WithStorageKey overrides the blob-store key the editor state lives under.
func WithStorageKey(key string) Option {
	return func(b *Builder) {
		b.persistOpts = append(b.persistOpts, persistence.WithKey(key))
	}
}

// WithDebounce sets the snapshot coalescing window.
func WithDebounce(d time.Duration) Option {
	return func(b *Builder) {
		b.persistOpts = append(b.persistOpts, persistence.WithDebounce(d))
	}
}

// WithReporter routes persistence failures to an operator-visible channel.
func WithReporter(report func(error)) Option {
	return func(b *Builder) {
		b.persistOpts = append(b.persistOpts, persistence.WithReporter(report))
	}
}

// WithClock overrides the timestamp source used for saved forms and
// submissions.
func WithClock(now func() time.Time) Option {
	return func(b *Builder) {
		if now != nil {
			b.now = now
		}
	}
}
