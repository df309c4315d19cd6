package service

import (
	"context"
	"errors"
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Abinaya503/my-cab-payment/internal/domain"
	"github.com/Abinaya503/my-cab-payment/internal/repository"
)

// DefaultSuccessRate is the probability that the mock processor accepts a charge.
const DefaultSuccessRate = 0.9

// rideLockTTL bounds how long a crashed request can hold a ride's payment lock.
const rideLockTTL = 30 * time.Second

// PSP is the interface for a Payment Service Provider.
type PSP interface {
	Charge(ctx context.Context, amount float64) (bool, error)
}

// Decider reports whether an attempt succeeds given its success probability.
type Decider func(successRate float64) bool

// NewRandomDecider returns a Decider drawing from rng. The returned Decider is
// safe for concurrent use.
func NewRandomDecider(rng *rand.Rand) Decider {
	var mu sync.Mutex
	return func(successRate float64) bool {
		mu.Lock()
		defer mu.Unlock()
		return rng.Float64() < successRate
	}
}

// AlwaysSucceed is a Decider that accepts every charge.
func AlwaysSucceed(float64) bool { return true }

// AlwaysDecline is a Decider that declines every charge.
func AlwaysDecline(float64) bool { return false }

// MockPSP approves charges at random with a fixed success rate.
type MockPSP struct {
	decide      Decider
	successRate float64
}

// NewMockPSP creates a mock PSP. A nil decide draws from a time-seeded source.
func NewMockPSP(decide Decider, successRate float64) *MockPSP {
	if decide == nil {
		decide = NewRandomDecider(rand.New(rand.NewSource(time.Now().UnixNano())))
	}
	return &MockPSP{
		decide:      decide,
		successRate: successRate,
	}
}

// Charge simulates a payment charge.
func (p *MockPSP) Charge(ctx context.Context, amount float64) (bool, error) {
	return p.decide(p.successRate), nil
}

// PaymentService handles payment operations.
type PaymentService struct {
	paymentRepo repository.PaymentRepository
	psp         PSP
	settings
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(paymentRepo repository.PaymentRepository, psp PSP, opts ...Option) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		psp:         psp,
		settings:    newSettings(opts),
	}
}

// ProcessPayment charges a ride.
//
// The payment starts PROCESSING and, after the processing delay, resolves
// exactly once. A COMPLETED payment is stored and returned. A declined payment
// is returned with status FAILED together with ErrPaymentDeclined and is not
// stored. If ctx ends during the delay nothing is stored and ctx.Err() is
// returned.
func (s *PaymentService) ProcessPayment(ctx context.Context, req domain.PaymentRequest) (*domain.Payment, error) {
	if err := validatePaymentRequest(req); err != nil {
		return nil, err
	}

	if s.locker != nil {
		acquired, err := s.locker.AcquireRideLock(ctx, req.RideID, rideLockTTL)
		if err != nil {
			return nil, err
		}
		if !acquired {
			return nil, ErrPaymentInProgress
		}
		defer func() {
			if err := s.locker.ReleaseRideLock(context.WithoutCancel(ctx), req.RideID); err != nil {
				s.logger.Warn("failed to release ride lock", zap.String("ride_id", req.RideID), zap.Error(err))
			}
		}()
	}

	payment := &domain.Payment{
		ID:        newPaymentID(),
		RideID:    req.RideID,
		RiderID:   req.RiderID,
		Amount:    req.Amount,
		Method:    req.Method,
		Status:    domain.PaymentStatusProcessing,
		CreatedAt: s.clock.Now(),
	}

	log := s.logger.With(
		zap.String("payment_id", payment.ID),
		zap.String("ride_id", payment.RideID),
		zap.String("method", string(payment.Method)),
		zap.Float64("amount", payment.Amount),
	)
	log.Info("processing payment")

	if err := s.wait(ctx, s.latency.Processing); err != nil {
		log.Warn("payment abandoned", zap.Error(err))
		return nil, err
	}

	approved, err := s.psp.Charge(ctx, payment.Amount)
	if err != nil || !approved {
		payment.Status = domain.PaymentStatusFailed
		log.Warn("payment declined", zap.Error(err))
		s.metrics.PaymentResolved(string(payment.Method), string(payment.Status), payment.Amount, false)
		if s.notifier != nil {
			if err := s.notifier.NotifyPaymentFailed(ctx, payment); err != nil {
				log.Warn("failed to send notification", zap.Error(err))
			}
		}
		if err != nil {
			return payment, errors.Join(ErrPaymentDeclined, err)
		}
		return payment, ErrPaymentDeclined
	}

	payment.Status = domain.PaymentStatusCompleted
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		log.Error("failed to store payment", zap.Error(err))
		return nil, err
	}

	log.Info("payment completed")
	s.metrics.PaymentResolved(string(payment.Method), string(payment.Status), payment.Amount, true)
	if s.notifier != nil {
		if err := s.notifier.NotifyPaymentSuccess(ctx, payment); err != nil {
			log.Warn("failed to send notification", zap.Error(err))
		}
	}

	return payment, nil
}

// ProcessCardPayment validates the card form and charges the ride with
// method CARD. Card details are not stored.
func (s *PaymentService) ProcessCardPayment(ctx context.Context, req domain.PaymentRequest, card CardDetails) (*domain.Payment, error) {
	if err := ValidateCard(card, s.clock.Now()); err != nil {
		return nil, err
	}

	req.Method = domain.PaymentMethodCard
	return s.ProcessPayment(ctx, req)
}

// GetPayment retrieves a payment by ID.
func (s *PaymentService) GetPayment(ctx context.Context, paymentID string) (*domain.Payment, error) {
	if paymentID == "" {
		return nil, ErrInvalidPaymentID
	}

	if err := s.wait(ctx, s.latency.Lookup); err != nil {
		return nil, err
	}

	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return payment, nil
}

// GetUserPayments retrieves all stored payments of a rider.
func (s *PaymentService) GetUserPayments(ctx context.Context, riderID string) ([]*domain.Payment, error) {
	if riderID == "" {
		return nil, ErrInvalidRiderID
	}

	if err := s.wait(ctx, s.latency.Lookup); err != nil {
		return nil, err
	}

	return s.paymentRepo.GetByRiderID(ctx, riderID)
}

func validatePaymentRequest(req domain.PaymentRequest) error {
	if req.RideID == "" {
		return ErrInvalidRideID
	}
	if req.RiderID == "" {
		return ErrInvalidRiderID
	}
	if _, err := ValidatePaymentMethod(string(req.Method)); err != nil {
		return err
	}
	if req.Amount <= 0 || math.IsNaN(req.Amount) || math.IsInf(req.Amount, 0) {
		return ErrInvalidPaymentAmount
	}
	return nil
}

// ValidatePaymentMethod parses one of CASH, CARD, WALLET or UPI. Matching is
// case-sensitive and there is no default method.
func ValidatePaymentMethod(method string) (domain.PaymentMethod, error) {
	switch m := domain.PaymentMethod(method); m {
	case domain.PaymentMethodCash, domain.PaymentMethodCard,
		domain.PaymentMethodWallet, domain.PaymentMethodUPI:
		return m, nil
	default:
		return "", ErrInvalidPaymentMethod
	}
}

func newPaymentID() string {
	return "pay-" + uuid.NewString()
}
