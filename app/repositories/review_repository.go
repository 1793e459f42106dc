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

// ReviewRepository handles the reviews collection.
type ReviewRepository struct {
	col *mongo.Collection
}

func NewReviewRepository(db *mongo.Database) *ReviewRepository {
	return &ReviewRepository{col: db.Collection("reviews")}
}

func (r *ReviewRepository) All(ctx context.Context) ([]models.Review, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: list reviews: %v", apperr.ErrPersistence, err)
	}
	var reviews []models.Review
	if err := cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("%w: decode reviews: %v", apperr.ErrPersistence, err)
	}
	return reviews, nil
}

func (r *ReviewRepository) Insert(ctx context.Context, review models.Review) (string, error) {
	res, err := r.col.InsertOne(ctx, review)
	if err != nil {
		return "", fmt.Errorf("%w: insert review: %v", apperr.ErrPersistence, err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id.Hex(), nil
}
