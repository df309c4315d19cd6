package app

import (
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/Abinaya503/my-cab-payment/internal/config"
	"github.com/Abinaya503/my-cab-payment/internal/handler"
	"github.com/Abinaya503/my-cab-payment/internal/metrics"
	"github.com/Abinaya503/my-cab-payment/internal/repository"
	"github.com/Abinaya503/my-cab-payment/internal/repository/memory"
	"github.com/Abinaya503/my-cab-payment/internal/service"
)

// Ledger bundles the payment services sharing one store.
type Ledger struct {
	Rides         *service.RideService
	Payments      *service.PaymentService
	Receipts      *service.ReceiptService
	Notifications *service.NotificationService
	Payee         service.UPIPayee
}

// LedgerDeps are the collaborators of a Ledger. Only Store and RideRepo are
// required.
type LedgerDeps struct {
	Store    *memory.Store
	RideRepo repository.RideRepository
	PSP      service.PSP // nil uses the mock processor from cfg
	Locker   service.RideLocker
	Metrics  *metrics.Metrics
	Logger   *zap.Logger
	Clock    service.Clock
}

// NewLedger wires the ride, payment and receipt services from cfg.
func NewLedger(cfg *config.Config, deps LedgerDeps) *Ledger {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	notifier := service.NewNotificationService(logger.Named("notifications"), deps.Clock)

	opts := []service.Option{
		service.WithLatency(service.Latency{
			RideLookup: cfg.Ledger.RideLookupLatency,
			Processing: cfg.Ledger.ProcessingDelay,
			Receipt:    cfg.Ledger.ReceiptDelay,
			Lookup:     cfg.Ledger.LookupLatency,
		}),
		service.WithLogger(logger),
		service.WithMetrics(deps.Metrics),
		service.WithNotifier(notifier),
	}
	if deps.Clock != nil {
		opts = append(opts, service.WithClock(deps.Clock))
	}
	if deps.Locker != nil {
		opts = append(opts, service.WithRideLocker(deps.Locker))
	}

	psp := deps.PSP
	if psp == nil {
		seed := cfg.Ledger.RandomSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		psp = service.NewMockPSP(service.NewRandomDecider(rand.New(rand.NewSource(seed))), cfg.Ledger.SuccessRate)
	}

	calc := service.NewFareCalculator(service.FareRates{
		BaseFare:  cfg.Fare.BaseFare,
		PerKm:     cfg.Fare.PerKm,
		PerMinute: cfg.Fare.PerMinute,
		TaxRate:   cfg.Fare.TaxRate,
		Currency:  cfg.Fare.Currency,
	})

	return &Ledger{
		Rides:         service.NewRideService(deps.RideRepo, calc, opts...),
		Payments:      service.NewPaymentService(deps.Store.Payments(), psp, opts...),
		Receipts:      service.NewReceiptService(deps.Store.Payments(), deps.Store.Receipts(), deps.RideRepo, calc, opts...),
		Notifications: notifier,
		Payee: service.UPIPayee{
			VPA:      cfg.UPI.PayeeVPA,
			Name:     cfg.UPI.PayeeName,
			Currency: calc.Rates().Currency,
		},
	}
}

// Handlers builds the HTTP handlers over the ledger.
func (l *Ledger) Handlers() (*handler.RideHandler, *handler.PaymentHandler, *handler.ReceiptHandler) {
	return handler.NewRideHandler(l.Rides, l.Payee),
		handler.NewPaymentHandler(l.Payments),
		handler.NewReceiptHandler(l.Receipts)
}
