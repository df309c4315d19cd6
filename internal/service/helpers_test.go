package service_test

import (
	"context"
	"sync"
	"time"

	"github.com/zoobzio/clockz"

	"github.com/Abinaya503/my-cab-payment/internal/domain"
	"github.com/Abinaya503/my-cab-payment/internal/repository/memory"
	"github.com/Abinaya503/my-cab-payment/internal/service"
)

var testNow = time.Date(2026, time.October, 17, 9, 30, 0, 0, time.UTC)

// recordingClock is a clockz.FakeClock that fires every timer as soon as it is
// requested and remembers the requested delays.
type recordingClock struct {
	*clockz.FakeClock

	mu     sync.Mutex
	delays []time.Duration
}

func newRecordingClock() *recordingClock {
	return &recordingClock{FakeClock: clockz.NewFakeClockAt(testNow)}
}

func (c *recordingClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	c.delays = append(c.delays, d)
	c.mu.Unlock()

	ch := c.FakeClock.After(d)
	c.Advance(d)
	c.BlockUntilReady()
	return ch
}

func (c *recordingClock) Delays() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]time.Duration, len(c.delays))
	copy(out, c.delays)
	return out
}

// fakeLocker is an in-process RideLocker.
type fakeLocker struct {
	mu       sync.Mutex
	held     map[string]bool
	released []string
	err      error
}

func newFakeLocker() *fakeLocker {
	return &fakeLocker{held: make(map[string]bool)}
}

func (l *fakeLocker) AcquireRideLock(ctx context.Context, rideID string, ttl time.Duration) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.err != nil {
		return false, l.err
	}
	if l.held[rideID] {
		return false, nil
	}
	l.held[rideID] = true
	return true, nil
}

func (l *fakeLocker) ReleaseRideLock(ctx context.Context, rideID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.held, rideID)
	l.released = append(l.released, rideID)
	return nil
}

// erroringPSP fails every charge with err.
type erroringPSP struct{ err error }

func (p erroringPSP) Charge(context.Context, float64) (bool, error) { return false, p.err }

// failingNotifier rejects every notification with err.
type failingNotifier struct{ err error }

func (n failingNotifier) NotifyPaymentSuccess(context.Context, *domain.Payment) error { return n.err }
func (n failingNotifier) NotifyPaymentFailed(context.Context, *domain.Payment) error  { return n.err }
func (n failingNotifier) NotifyReceiptReady(context.Context, *domain.Receipt) error   { return n.err }

type ledger struct {
	store    *memory.Store
	clock    *recordingClock
	notifier *service.NotificationService
	rides    *service.RideService
	payments *service.PaymentService
	receipts *service.ReceiptService
}

// newLedger wires the services over a fresh store with zero latency.
func newLedger(seed memory.Seed, decide service.Decider, opts ...service.Option) *ledger {
	store := memory.NewStore(seed)
	clock := newRecordingClock()
	notifier := service.NewNotificationService(nil, clock)
	calc := service.NewFareCalculator(service.DefaultFareRates())

	base := []service.Option{
		service.WithClock(clock),
		service.WithLatency(service.Latency{}),
		service.WithNotifier(notifier),
	}
	opts = append(base, opts...)

	return &ledger{
		store:    store,
		clock:    clock,
		notifier: notifier,
		rides:    service.NewRideService(store.Rides(), calc, opts...),
		payments: service.NewPaymentService(store.Payments(), service.NewMockPSP(decide, service.DefaultSuccessRate), opts...),
		receipts: service.NewReceiptService(store.Payments(), store.Receipts(), store.Rides(), calc, opts...),
	}
}

func ride001Request() domain.PaymentRequest {
	return domain.PaymentRequest{
		RideID:  "ride-001",
		RiderID: "user-001",
		Method:  domain.PaymentMethodCard,
		Amount:  278.48,
	}
}
