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

// CartRepository handles the carts collection.
type CartRepository struct {
	col *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{col: db.Collection("carts")}
}

func (r *CartRepository) Insert(ctx context.Context, entry models.CartEntry) (string, error) {
	res, err := r.col.InsertOne(ctx, entry)
	if err != nil {
		return "", fmt.Errorf("%w: insert cart entry: %v", apperr.ErrPersistence, err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id.Hex(), nil
}

// ByOwner lists the pending cart entries for one customer email.
func (r *CartRepository) ByOwner(ctx context.Context, email string) ([]models.CartEntry, error) {
	cursor, err := r.col.Find(ctx, bson.M{"CustomerEmail": email})
	if err != nil {
		return nil, fmt.Errorf("%w: list cart: %v", apperr.ErrPersistence, err)
	}
	var entries []models.CartEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, fmt.Errorf("%w: decode cart: %v", apperr.ErrPersistence, err)
	}
	return entries, nil
}

func (r *CartRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: cart id %q", apperr.ErrInvalidArgument, id)
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("%w: delete cart entry: %v", apperr.ErrPersistence, err)
	}
	return res.DeletedCount, nil
}

// DeleteMany removes every cart entry whose id is in ids with one
// set-membership delete, returning the count actually removed. Identifiers
// that no longer exist are simply not counted — never an error.
func (r *CartRepository) DeleteMany(ctx context.Context, ids []primitive.ObjectID) (int64, error) {
	res, err := r.col.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return 0, fmt.Errorf("%w: clear cart entries: %v", apperr.ErrPersistence, err)
	}
	return res.DeletedCount, nil
}
