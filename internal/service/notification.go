package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/zoobzio/clockz"
	"go.uber.org/zap"

	"github.com/Abinaya503/my-cab-payment/internal/domain"
)

// NotificationType represents the type of notification.
type NotificationType string

const (
	NotificationPaymentSuccess NotificationType = "PAYMENT_SUCCESS"
	NotificationPaymentFailed  NotificationType = "PAYMENT_FAILED"
	NotificationReceiptReady   NotificationType = "RECEIPT_READY"
)

// notificationHistory bounds the number of notifications kept for Sent.
const notificationHistory = 100

// Notification represents a notification to be sent.
type Notification struct {
	Type        NotificationType
	RecipientID string
	Title       string
	Message     string
	Data        map[string]interface{}
	CreatedAt   time.Time
}

// Notifier tells riders about payment and receipt events.
type Notifier interface {
	NotifyPaymentSuccess(ctx context.Context, payment *domain.Payment) error
	NotifyPaymentFailed(ctx context.Context, payment *domain.Payment) error
	NotifyReceiptReady(ctx context.Context, receipt *domain.Receipt) error
}

// NotificationService delivers rider notifications. Delivery is a structured
// log line; push, SMS and email channels are not wired.
type NotificationService struct {
	logger *zap.Logger
	clock  Clock

	mu   sync.Mutex
	sent []Notification
}

// NewNotificationService creates a new NotificationService. A nil logger
// discards output and a nil clock uses clockz.RealClock.
func NewNotificationService(logger *zap.Logger, clock Clock) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if clock == nil {
		clock = clockz.RealClock
	}
	return &NotificationService{
		logger: logger,
		clock:  clock,
	}
}

// NotifyPaymentSuccess notifies the rider of successful payment.
func (s *NotificationService) NotifyPaymentSuccess(ctx context.Context, payment *domain.Payment) error {
	return s.send(ctx, Notification{
		Type:        NotificationPaymentSuccess,
		RecipientID: payment.RiderID,
		Title:       "Payment Successful",
		Message:     fmt.Sprintf("Payment of %.2f via %s was successful", payment.Amount, payment.Method),
		Data: map[string]interface{}{
			"payment_id": payment.ID,
			"ride_id":    payment.RideID,
			"amount":     payment.Amount,
		},
	})
}

// NotifyPaymentFailed notifies the rider of failed payment.
func (s *NotificationService) NotifyPaymentFailed(ctx context.Context, payment *domain.Payment) error {
	return s.send(ctx, Notification{
		Type:        NotificationPaymentFailed,
		RecipientID: payment.RiderID,
		Title:       "Payment Failed",
		Message:     fmt.Sprintf("Payment of %.2f failed. Please try again.", payment.Amount),
		Data: map[string]interface{}{
			"payment_id": payment.ID,
			"ride_id":    payment.RideID,
			"amount":     payment.Amount,
		},
	})
}

// NotifyReceiptReady notifies the rider that the receipt is ready.
func (s *NotificationService) NotifyReceiptReady(ctx context.Context, receipt *domain.Receipt) error {
	return s.send(ctx, Notification{
		Type:        NotificationReceiptReady,
		RecipientID: receipt.RiderID,
		Title:       "Receipt Ready",
		Message:     fmt.Sprintf("Your receipt for %.2f is ready", receipt.Fare.Total),
		Data: map[string]interface{}{
			"receipt_id": receipt.ID,
			"payment_id": receipt.PaymentID,
			"total_fare": receipt.Fare.Total,
		},
	})
}

// Sent returns the most recent notifications, oldest first.
func (s *NotificationService) Sent() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, len(s.sent))
	copy(out, s.sent)
	return out
}

func (s *NotificationService) send(ctx context.Context, n Notification) error {
	n.CreatedAt = s.clock.Now()

	s.mu.Lock()
	s.sent = append(s.sent, n)
	if len(s.sent) > notificationHistory {
		s.sent = s.sent[len(s.sent)-notificationHistory:]
	}
	s.mu.Unlock()

	s.logger.Info("notification sent",
		zap.String("type", string(n.Type)),
		zap.String("recipient_id", n.RecipientID),
		zap.String("title", n.Title),
		zap.String("message", n.Message),
	)
	return nil
}
