package service

import (
	"context"
	"time"

	"github.com/zoobzio/clockz"
	"go.uber.org/zap"

	"github.com/Abinaya503/my-cab-payment/internal/metrics"
)

// Clock is the time source used for timestamps and simulated latency.
// clockz.RealClock satisfies it.
type Clock interface {
	Now() time.Time
	After(d time.Duration) <-chan time.Time
}

// Latency holds the simulated delays of the mock ledger.
type Latency struct {
	RideLookup time.Duration
	Processing time.Duration
	Receipt    time.Duration
	Lookup     time.Duration
}

// DefaultLatency returns the production delays of the mock ledger.
func DefaultLatency() Latency {
	return Latency{
		RideLookup: 300 * time.Millisecond,
		Processing: 2 * time.Second,
		Receipt:    500 * time.Millisecond,
		Lookup:     300 * time.Millisecond,
	}
}

// RideLocker serializes payments for the same ride.
type RideLocker interface {
	AcquireRideLock(ctx context.Context, rideID string, ttl time.Duration) (bool, error)
	ReleaseRideLock(ctx context.Context, rideID string) error
}

type settings struct {
	clock    Clock
	latency  Latency
	logger   *zap.Logger
	metrics  *metrics.Metrics
	notifier Notifier
	locker   RideLocker
}

// Option configures the ledger services.
type Option func(*settings)

// WithClock sets the time source. Default is clockz.RealClock.
func WithClock(clock Clock) Option {
	return func(s *settings) { s.clock = clock }
}

// WithLatency sets the simulated delays. Zero durations skip the wait.
func WithLatency(latency Latency) Option {
	return func(s *settings) { s.latency = latency }
}

// WithLogger sets the logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

// WithMetrics sets the metrics recorder.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *settings) { s.metrics = m }
}

// WithNotifier sets the rider notifier. Delivery failures are logged and do
// not fail the operation.
func WithNotifier(n Notifier) Option {
	return func(s *settings) { s.notifier = n }
}

// WithRideLocker enables per-ride payment locking.
func WithRideLocker(locker RideLocker) Option {
	return func(s *settings) { s.locker = locker }
}

func newSettings(opts []Option) settings {
	s := settings{
		clock:   clockz.RealClock,
		latency: DefaultLatency(),
		logger:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&s)
	}
	if s.clock == nil {
		s.clock = clockz.RealClock
	}
	if s.logger == nil {
		s.logger = zap.NewNop()
	}
	return s
}

// wait blocks for d on the configured clock, or until ctx is done.
func (s *settings) wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-s.clock.After(d):
		return nil
	}
}
