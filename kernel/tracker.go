package kernel

import (
	"sync"

	"github.com/rs/zerolog"
	"go.uber.org/multierr"
)

// DisposableTracker decorates a SpecimenBuilder and tracks every specimen it
// produces that carries a release capability (Disposable or io.Closer), so
// that all of them can be released with one Dispose call.
//
// Values and errors from the decorated builder are returned unchanged. A
// specimen instance is tracked once no matter how often it is returned.
//
// The tracker is reusable: specimens created after Dispose are tracked again.
// It is safe for concurrent use.
type DisposableTracker struct {
	builder SpecimenBuilder
	cfg     trackerConfig
	log     zerolog.Logger

	mu      sync.Mutex
	tracked []trackedEntry
	seen    map[identity]struct{}
}

type trackedEntry struct {
	res   resource
	key   identity
	keyed bool
}

// NewDisposableTracker returns a tracker decorating builder.
//
// It returns ErrNilBuilder if builder is nil (including a typed nil pointer).
func NewDisposableTracker(builder SpecimenBuilder, opts ...TrackerOption) (*DisposableTracker, error) {
	if isNil(builder) {
		return nil, ErrNilBuilder
	}
	cfg := defaultTrackerConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return &DisposableTracker{
		builder: builder,
		cfg:     cfg,
		log:     cfg.log.With().Str("component", "kernel.tracker").Logger(),
		seen:    make(map[identity]struct{}),
	}, nil
}

// MustNewDisposableTracker is like NewDisposableTracker but panics on error.
// Useful in tests where a nil builder is a programming mistake.
func MustNewDisposableTracker(builder SpecimenBuilder, opts ...TrackerOption) *DisposableTracker {
	t, err := NewDisposableTracker(builder, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Builder returns the decorated builder.
func (t *DisposableTracker) Builder() SpecimenBuilder { return t.builder }

// Disposables returns the tracked specimens in insertion order.
//
// The result is a copy and is never nil.
func (t *DisposableTracker) Disposables() []any {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]any, 0, len(t.tracked))
	for _, e := range t.tracked {
		out = append(out, e.res.value)
	}
	return out
}

// Len returns the number of tracked specimens.
func (t *DisposableTracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.tracked)
}

// Create forwards request and ctx to the decorated builder and returns its
// result unchanged. A successfully created specimen that carries a release
// capability is tracked unless it already is.
//
// The decorated builder runs without the tracker's lock held, so it may
// resolve nested requests through this tracker.
func (t *DisposableTracker) Create(request any, ctx SpecimenContext) (any, error) {
	specimen, err := t.builder.Create(request, ctx)
	if err != nil {
		return specimen, err
	}
	t.track(specimen)
	return specimen, nil
}

func (t *DisposableTracker) track(specimen any) {
	res, ok := asResource(specimen)
	if !ok {
		return
	}
	key, keyed := identityOf(specimen)

	t.mu.Lock()
	defer t.mu.Unlock()

	if keyed {
		if _, dup := t.seen[key]; dup {
			t.log.Debug().Str("type", typeName(specimen)).Msg("resource already tracked")
			return
		}
		t.seen[key] = struct{}{}
	}
	t.tracked = append(t.tracked, trackedEntry{res: res, key: key, keyed: keyed})
	t.log.Debug().
		Str("type", typeName(specimen)).
		Int("count", len(t.tracked)).
		Msg("resource tracked")
}

// Dispose releases every tracked specimen and forgets it.
//
// Resources are released in insertion order, or in reverse with
// WithReverseRelease. Calling Dispose with nothing tracked is a no-op.
//
// Failures are handled according to the configured ReleasePolicy; every
// reported failure is a *ReleaseError and matches ErrRelease.
func (t *DisposableTracker) Dispose() error {
	t.mu.Lock()
	batch := t.tracked
	t.tracked = nil
	t.seen = make(map[identity]struct{})
	t.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	t.log.Debug().
		Int("count", len(batch)).
		Str("policy", t.cfg.policy.String()).
		Msg("releasing resources")

	released := make([]bool, len(batch))
	var errs error
	for step := range batch {
		i := step
		if t.cfg.reverse {
			i = len(batch) - 1 - step
		}
		e := batch[i]
		if err := e.res.release(); err != nil {
			t.log.Warn().
				Err(err).
				Str("type", typeName(e.res.value)).
				Int("index", i).
				Msg("failed to release resource")

			relErr := &ReleaseError{Resource: e.res.value, Index: i, Err: err}
			if t.cfg.policy == FailFast {
				t.restore(batch, released)
				return relErr
			}
			errs = multierr.Append(errs, relErr)
		}
		released[i] = true
	}
	return errs
}

// Close implements io.Closer by calling Dispose, so trackers can themselves
// be tracked.
func (t *DisposableTracker) Close() error {
	return t.Dispose()
}

// restore puts back every entry of batch that was not released, ahead of
// anything tracked while the batch was being released.
func (t *DisposableTracker) restore(batch []trackedEntry, released []bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	kept := make([]trackedEntry, 0, len(batch)+len(t.tracked))
	seen := make(map[identity]struct{}, len(batch)+len(t.tracked))
	for i, e := range batch {
		if released[i] {
			continue
		}
		kept = append(kept, e)
		if e.keyed {
			seen[e.key] = struct{}{}
		}
	}
	for _, e := range t.tracked {
		if e.keyed {
			if _, dup := seen[e.key]; dup {
				continue
			}
			seen[e.key] = struct{}{}
		}
		kept = append(kept, e)
	}
	t.tracked = kept
	t.seen = seen
}
