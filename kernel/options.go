package kernel

import (
	"fmt"

	"github.com/rs/zerolog"
)

// ReleasePolicy decides what Dispose does when a resource fails to release.
type ReleasePolicy int

const (
	// FailFast stops at the first failure. Resources released before it are
	// forgotten; the failing resource and every later one stay tracked so
	// Dispose can be retried.
	FailFast ReleasePolicy = iota
	// BestEffort releases every resource, forgets all of them and reports the
	// combined failures.
	BestEffort
)

// String returns the policy name.
func (p ReleasePolicy) String() string {
	switch p {
	case FailFast:
		return "fail-fast"
	case BestEffort:
		return "best-effort"
	default:
		return "unknown"
	}
}

type trackerConfig struct {
	log     zerolog.Logger
	policy  ReleasePolicy
	reverse bool
}

func defaultTrackerConfig() trackerConfig {
	return trackerConfig{
		log:    zerolog.Nop(),
		policy: FailFast,
	}
}

// TrackerOption configures a DisposableTracker during construction.
type TrackerOption func(*trackerConfig)

// WithLogger sets the logger used for tracking and release events.
//
// Default: zerolog.Nop().
func WithLogger(log zerolog.Logger) TrackerOption {
	return func(c *trackerConfig) {
		c.log = log
	}
}

// WithReleasePolicy sets how Dispose handles release failures.
//
// Default: FailFast.
//
// Panics if p is not a known policy.
func WithReleasePolicy(p ReleasePolicy) TrackerOption {
	if p != FailFast && p != BestEffort {
		panic(fmt.Sprintf("kernel: unknown release policy %d", int(p)))
	}
	return func(c *trackerConfig) {
		c.policy = p
	}
}

// WithReverseRelease releases resources in reverse insertion order, so the
// most recently created resource is released first.
func WithReverseRelease() TrackerOption {
	return func(c *trackerConfig) {
		c.reverse = true
	}
}
