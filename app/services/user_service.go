// Package services holds the application workflows. Each service declares
// the narrow storage interface it needs so tests substitute in-memory
// doubles for the MongoDB repositories.
package services

import (
	"context"
	"errors"
	"fmt"

	"bistro/app/models"
	"bistro/pkg/apperr"
)

// UserStore is the slice of the users collection the user workflows need.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	Insert(ctx context.Context, user models.User) (string, error)
	All(ctx context.Context) ([]models.User, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
	PromoteToAdmin(ctx context.Context, id string) (int64, error)
}

// UserService implements registration, role queries, and the admin-side
// user management operations.
type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

// RegisterResult reports whether registration created a record. InsertedID
// is null when the email was already registered, the sentinel the frontend
// checks for.
type RegisterResult struct {
	Message    string  `json:"message,omitempty"`
	InsertedID *string `json:"insertedId"`
}

// Register creates the user record on first registration. A duplicate email
// is a no-op returning the null-insertedId sentinel, so the client can call
// it on every social login without side effects.
func (s *UserService) Register(ctx context.Context, user models.User) (RegisterResult, error) {
	if user.Email == "" {
		return RegisterResult{}, fmt.Errorf("%w: email is required", apperr.ErrInvalidArgument)
	}

	_, err := s.users.FindByEmail(ctx, user.Email)
	switch {
	case err == nil:
		return RegisterResult{Message: "user already exist", InsertedID: nil}, nil
	case errors.Is(err, apperr.ErrNotFound):
		// fresh registration
	default:
		return RegisterResult{}, err
	}

	// Role is never accepted from the registration payload.
	user.UserRole = ""

	id, err := s.users.Insert(ctx, user)
	if err != nil {
		return RegisterResult{}, err
	}
	return RegisterResult{InsertedID: &id}, nil
}

// IsAdmin answers the self-service admin check. The query email must match
// the authenticated identity's email; probing another user's role is
// forbidden. A missing user record is simply not an admin.
func (s *UserService) IsAdmin(ctx context.Context, requesterEmail, queryEmail string) (bool, error) {
	if queryEmail != requesterEmail {
		return false, fmt.Errorf("%w: email mismatch", apperr.ErrForbidden)
	}

	user, err := s.users.FindByEmail(ctx, queryEmail)
	if errors.Is(err, apperr.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.IsAdmin(), nil
}

// List returns all user records.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.All(ctx)
}

// Delete removes one user by id.
func (s *UserService) Delete(ctx context.Context, id string) (int64, error) {
	return s.users.DeleteByID(ctx, id)
}

// Promote grants the admin role to one user by id. The change applies to
// the user's next request; tokens issued earlier carry no role to go stale.
func (s *UserService) Promote(ctx context.Context, id string) (int64, error) {
	return s.users.PromoteToAdmin(ctx, id)
}
