package services

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistro/app/models"
	"bistro/pkg/apperr"
	"bistro/pkg/metrics"
)

// PaymentStore persists and reads finalized order records.
type PaymentStore interface {
	Insert(ctx context.Context, payment models.Payment) (string, error)
	ByEmail(ctx context.Context, email string) ([]models.Payment, error)
}

// CartClearer removes cart entries in bulk by id.
type CartClearer interface {
	DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error)
}

// OrderService finalizes orders: it records the payment, clears the
// purchased cart entries exactly once, and reports both outcomes.
type OrderService struct {
	payments PaymentStore
	carts    CartClearer
	notify   func(models.Payment)
}

// NewOrderService wires the finalization workflow. notify, when non-nil,
// is invoked after a fully successful finalization (usually on a worker
// pool) to send the receipt; it must not block.
func NewOrderService(payments PaymentStore, carts CartClearer, notify func(models.Payment)) *OrderService {
	return &OrderService{payments: payments, carts: carts, notify: notify}
}

// FinalizeResult carries both halves of a finalization.
type FinalizeResult struct {
	PaymentID    string `json:"insertedId"`
	DeletedCount int64  `json:"deletedCount"`
}

// Finalize validates the payment record, inserts it, then deletes the cart
// entries it references. The two writes are not transactional: if the cart
// deletion fails the payment record remains and the error is surfaced, so
// the client can retry the cleanup without re-charging.
func (s *OrderService) Finalize(ctx context.Context, payment models.Payment) (FinalizeResult, error) {
	if payment.Email == "" {
		metrics.OrdersFinalized.WithLabelValues("invalid").Inc()
		return FinalizeResult{}, fmt.Errorf("%w: email is required", apperr.ErrInvalidArgument)
	}
	if len(payment.CartIDs) == 0 {
		metrics.OrdersFinalized.WithLabelValues("invalid").Inc()
		return FinalizeResult{}, fmt.Errorf("%w: cartIds must not be empty", apperr.ErrInvalidArgument)
	}

	// Reject malformed ids before any write happens.
	ids := make([]primitive.ObjectID, 0, len(payment.CartIDs))
	for _, raw := range payment.CartIDs {
		id, err := primitive.ObjectIDFromHex(raw)
		if err != nil {
			metrics.OrdersFinalized.WithLabelValues("invalid").Inc()
			return FinalizeResult{}, fmt.Errorf("%w: cart id %q is not a valid object id", apperr.ErrInvalidArgument, raw)
		}
		ids = append(ids, id)
	}

	if payment.Date.IsZero() {
		payment.Date = time.Now().UTC()
	}

	paymentID, err := s.payments.Insert(ctx, payment)
	if err != nil {
		metrics.OrdersFinalized.WithLabelValues("persistence_error").Inc()
		return FinalizeResult{}, err
	}

	deleted, err := s.carts.DeleteMany(ctx, ids)
	if err != nil {
		metrics.OrdersFinalized.WithLabelValues("persistence_error").Inc()
		return FinalizeResult{PaymentID: paymentID}, err
	}

	metrics.OrdersFinalized.WithLabelValues("ok").Inc()
	metrics.CartEntriesCleared.Add(float64(deleted))
	metrics.RevenueObserved.Add(payment.TotalPrice)

	if s.notify != nil {
		s.notify(payment)
	}

	return FinalizeResult{PaymentID: paymentID, DeletedCount: deleted}, nil
}

// History returns the payment records for one customer, newest first. The
// query email must match the authenticated identity's email.
func (s *OrderService) History(ctx context.Context, requesterEmail, queryEmail string) ([]models.Payment, error) {
	if queryEmail != requesterEmail {
		return nil, fmt.Errorf("%w: email mismatch", apperr.ErrForbidden)
	}
	return s.payments.ByEmail(ctx, queryEmail)
}
