package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"bistro/app/models"
	"bistro/app/services"
	"bistro/pkg/apperr"
)

type paymentStoreStub struct {
	insertErr error
	inserted  []models.Payment
	byEmail   []models.Payment
}

func (s *paymentStoreStub) Insert(_ context.Context, p models.Payment) (string, error) {
	if s.insertErr != nil {
		return "", s.insertErr
	}
	s.inserted = append(s.inserted, p)
	return primitive.NewObjectID().Hex(), nil
}

func (s *paymentStoreStub) ByEmail(_ context.Context, email string) ([]models.Payment, error) {
	return s.byEmail, nil
}

type cartClearerStub struct {
	deleteErr error
	deleted   int64
	calls     int
	gotIDs    []primitive.ObjectID
}

func (s *cartClearerStub) DeleteMany(_ context.Context, ids []primitive.ObjectID) (int64, error) {
	s.calls++
	s.gotIDs = ids
	if s.deleteErr != nil {
		return 0, s.deleteErr
	}
	return s.deleted, nil
}

func validPayment(cartIDs ...string) models.Payment {
	return models.Payment{
		Email:         "alice@example.com",
		TotalPrice:    42.5,
		TransactionID: "tx_123",
		CartIDs:       cartIDs,
	}
}

func TestFinalizeRejectsMalformedCartID(t *testing.T) {
	payments := &paymentStoreStub{}
	carts := &cartClearerStub{}
	svc := services.NewOrderService(payments, carts, nil)

	_, err := svc.Finalize(context.Background(), validPayment("not-hex"))

	require.Error(t, err)
	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
	assert.Empty(t, payments.inserted, "no write may happen before validation passes")
	assert.Zero(t, carts.calls)
}

func TestFinalizeRejectsEmptyCart(t *testing.T) {
	payments := &paymentStoreStub{}
	carts := &cartClearerStub{}
	svc := services.NewOrderService(payments, carts, nil)

	_, err := svc.Finalize(context.Background(), validPayment())

	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
	assert.Empty(t, payments.inserted)
}

func TestFinalizeRejectsMissingEmail(t *testing.T) {
	svc := services.NewOrderService(&paymentStoreStub{}, &cartClearerStub{}, nil)

	p := validPayment(primitive.NewObjectID().Hex())
	p.Email = ""
	_, err := svc.Finalize(context.Background(), p)

	assert.ErrorIs(t, err, apperr.ErrInvalidArgument)
}

func TestFinalizeInsertFailureSkipsCartClear(t *testing.T) {
	payments := &paymentStoreStub{insertErr: apperr.ErrPersistence}
	carts := &cartClearerStub{}
	svc := services.NewOrderService(payments, carts, nil)

	_, err := svc.Finalize(context.Background(), validPayment(primitive.NewObjectID().Hex()))

	require.Error(t, err)
	assert.Zero(t, carts.calls, "cart entries must survive when the payment insert fails")
}

func TestFinalizeDeleteFailureKeepsPayment(t *testing.T) {
	payments := &paymentStoreStub{}
	carts := &cartClearerStub{deleteErr: apperr.ErrPersistence}
	svc := services.NewOrderService(payments, carts, nil)

	result, err := svc.Finalize(context.Background(), validPayment(primitive.NewObjectID().Hex()))

	require.Error(t, err)
	// The payment is recorded even though the cleanup failed.
	assert.Len(t, payments.inserted, 1)
	assert.NotEmpty(t, result.PaymentID)
}

func TestFinalizeReportsPartialDeleteCount(t *testing.T) {
	ids := []string{
		primitive.NewObjectID().Hex(),
		primitive.NewObjectID().Hex(),
		primitive.NewObjectID().Hex(),
	}
	payments := &paymentStoreStub{}
	// One of the three ids no longer exists.
	carts := &cartClearerStub{deleted: 2}
	svc := services.NewOrderService(payments, carts, nil)

	result, err := svc.Finalize(context.Background(), validPayment(ids...))

	require.NoError(t, err)
	assert.Equal(t, int64(2), result.DeletedCount)
	assert.Equal(t, 1, carts.calls, "cart clearing must happen exactly once")
	assert.Len(t, carts.gotIDs, 3)
}

func TestFinalizeSetsDateAndNotifies(t *testing.T) {
	payments := &paymentStoreStub{}
	carts := &cartClearerStub{deleted: 1}

	var notified *models.Payment
	svc := services.NewOrderService(payments, carts, func(p models.Payment) { notified = &p })

	_, err := svc.Finalize(context.Background(), validPayment(primitive.NewObjectID().Hex()))

	require.NoError(t, err)
	require.Len(t, payments.inserted, 1)
	assert.False(t, payments.inserted[0].Date.IsZero(), "a zero date is stamped at finalization time")
	require.NotNil(t, notified, "a successful finalization triggers the receipt")
	assert.Equal(t, "alice@example.com", notified.Email)
}

func TestFinalizeFailureDoesNotNotify(t *testing.T) {
	payments := &paymentStoreStub{}
	carts := &cartClearerStub{deleteErr: apperr.ErrPersistence}

	var notified bool
	svc := services.NewOrderService(payments, carts, func(models.Payment) { notified = true })

	_, err := svc.Finalize(context.Background(), validPayment(primitive.NewObjectID().Hex()))

	require.Error(t, err)
	assert.False(t, notified)
}

func TestHistoryEnforcesEmailMatch(t *testing.T) {
	svc := services.NewOrderService(&paymentStoreStub{}, &cartClearerStub{}, nil)

	_, err := svc.History(context.Background(), "alice@example.com", "bob@example.com")
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestHistoryReturnsOwnRecords(t *testing.T) {
	payments := &paymentStoreStub{byEmail: []models.Payment{validPayment("x")}}
	svc := services.NewOrderService(payments, &cartClearerStub{}, nil)

	records, err := svc.History(context.Background(), "alice@example.com", "alice@example.com")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
