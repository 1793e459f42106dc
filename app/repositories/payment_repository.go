package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro/app/models"
	"bistro/pkg/apperr"
)

// PaymentRepository handles the payments collection. Payment records are
// insert-and-read only; there is no update path.
type PaymentRepository struct {
	col *mongo.Collection
}

func NewPaymentRepository(db *mongo.Database) *PaymentRepository {
	return &PaymentRepository{col: db.Collection("payments")}
}

func (r *PaymentRepository) Insert(ctx context.Context, payment models.Payment) (string, error) {
	res, err := r.col.InsertOne(ctx, payment)
	if err != nil {
		return "", fmt.Errorf("%w: insert payment: %v", apperr.ErrPersistence, err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id.Hex(), nil
}

// ByEmail lists one customer's payment history.
func (r *PaymentRepository) ByEmail(ctx context.Context, email string) ([]models.Payment, error) {
	cursor, err := r.col.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("%w: list payments: %v", apperr.ErrPersistence, err)
	}
	var payments []models.Payment
	if err := cursor.All(ctx, &payments); err != nil {
		return nil, fmt.Errorf("%w: decode payments: %v", apperr.ErrPersistence, err)
	}
	return payments, nil
}

func (r *PaymentRepository) EstimatedCount(ctx context.Context) (int64, error) {
	n, err := r.col.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: count payments: %v", apperr.ErrPersistence, err)
	}
	return n, nil
}

// TotalRevenue sums totalPrice across all payments with a grouping pass.
// An empty collection yields 0, not an error.
func (r *PaymentRepository) TotalRevenue(ctx context.Context) (float64, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalRevenue", Value: bson.D{{Key: "$sum", Value: "$totalPrice"}}},
		}}},
	}

	cursor, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("%w: revenue aggregate: %v", apperr.ErrPersistence, err)
	}

	var results []struct {
		TotalRevenue float64 `bson:"totalRevenue"`
	}
	if err := cursor.All(ctx, &results); err != nil {
		return 0, fmt.Errorf("%w: decode revenue: %v", apperr.ErrPersistence, err)
	}

	if len(results) == 0 {
		return 0, nil
	}
	return results[0].TotalRevenue, nil
}
