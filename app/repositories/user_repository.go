// Package repositories implements the MongoDB persistence layer. Every
// repository takes the database handle in its constructor so services and
// tests inject their own.
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

// UserRepository handles the users collection.
type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{col: db.Collection("users")}
}

// FindByEmail looks up a user by email. Absence wraps apperr.ErrNotFound.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.User{}, fmt.Errorf("%w: user %s", apperr.ErrNotFound, email)
	}
	if err != nil {
		return models.User{}, fmt.Errorf("%w: find user: %v", apperr.ErrPersistence, err)
	}
	return user, nil
}

// RoleByEmail returns the user's current role, or "" when the user record
// does not exist. Queried fresh on every admin-gated request.
func (r *UserRepository) RoleByEmail(ctx context.Context, email string) (string, error) {
	user, err := r.FindByEmail(ctx, email)
	if errors.Is(err, apperr.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return user.UserRole, nil
}

// Insert persists a new user and returns the generated identifier.
func (r *UserRepository) Insert(ctx context.Context, user models.User) (string, error) {
	res, err := r.col.InsertOne(ctx, user)
	if err != nil {
		return "", fmt.Errorf("%w: insert user: %v", apperr.ErrPersistence, err)
	}
	id, _ := res.InsertedID.(primitive.ObjectID)
	return id.Hex(), nil
}

// All returns every user record.
func (r *UserRepository) All(ctx context.Context) ([]models.User, error) {
	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("%w: list users: %v", apperr.ErrPersistence, err)
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, fmt.Errorf("%w: decode users: %v", apperr.ErrPersistence, err)
	}
	return users, nil
}

// DeleteByID removes one user by hex id, returning the deleted count.
func (r *UserRepository) DeleteByID(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: user id %q", apperr.ErrInvalidArgument, id)
	}
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return 0, fmt.Errorf("%w: delete user: %v", apperr.ErrPersistence, err)
	}
	return res.DeletedCount, nil
}

// PromoteToAdmin sets the admin role on one user by hex id, returning the
// modified count.
func (r *UserRepository) PromoteToAdmin(ctx context.Context, id string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, fmt.Errorf("%w: user id %q", apperr.ErrInvalidArgument, id)
	}
	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"userRole": models.AdminRole}},
	)
	if err != nil {
		return 0, fmt.Errorf("%w: promote user: %v", apperr.ErrPersistence, err)
	}
	return res.ModifiedCount, nil
}

// EstimatedCount returns the metadata-based document count (not a scan).
func (r *UserRepository) EstimatedCount(ctx context.Context) (int64, error) {
	n, err := r.col.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: count users: %v", apperr.ErrPersistence, err)
	}
	return n, nil
}
