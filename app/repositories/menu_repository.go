package repositories

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"bistro/app/models"
	"bistro/pkg/apperr"
)

// MenuRepository handles the menu collection.
type MenuRepository struct {
	col *mongo.Collection
}

func NewMenuRepository(db *mongo.Database) *MenuRepository {
	return &MenuRepository{col: db.Collection("menu")}
}

func (r *MenuRepository) All(ctx context.Context) ([]models.MenuItem, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: list menu: %v", apperr.ErrPersistence, err)
	}
	var items []models.MenuItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("%w: decode menu: %v", apperr.ErrPersistence, err)
	}
	return items, nil
}

func (r *MenuRepository) FindByID(ctx context.Context, id string) (models.MenuItem, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("%w: menu id %q", apperr.ErrInvalidArgument, id)
	}
	var item models.MenuItem
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&item)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.MenuItem{}, fmt.Errorf("%w: menu item %s", apperr.ErrNotFound, id)
	}
	if err != nil {
		return models.MenuItem{}, fmt.Errorf("%w: find menu item: %v", apperr.ErrPersistence, err)
	}
	return item, nil
}

func (r *MenuRepository) Insert(ctx context.Context, item models.MenuItem) (string, error) {
	res, err := r.col.InsertOne(ctx, item)
	if err != nil {
		return "", fmt.Errorf("%w: insert menu item: %v", apperr.ErrPersistence, err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id.Hex(), nil
}

// Update overwrites the mutable fields of one menu item.
func (r *MenuRepository) Update(ctx context.Context, id string, item models.MenuItem) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: menu id %q", apperr.ErrInvalidArgument, id)
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{
			"name":     item.Name,
			"recipe":   item.Recipe,
			"image":    item.Image,
			"category": item.Category,
			"price":    item.Price,
		}},
	)
	if err != nil {
		return 0, fmt.Errorf("%w: update menu item: %v", apperr.ErrPersistence, err)
	}
	return res.ModifiedCount, nil
}

func (r *MenuRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: menu id %q", apperr.ErrInvalidArgument, id)
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("%w: delete menu item: %v", apperr.ErrPersistence, err)
	}
	return res.DeletedCount, nil
}

func (r *MenuRepository) EstimatedCount(ctx context.Context) (int64, error) {
	n, err := r.col.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: count menu: %v", apperr.ErrPersistence, err)
	}
	return n, nil
}
