package services

import (
	"context"
	"fmt"

	"bistro/app/models"
	"bistro/pkg/apperr"
)

// CartStore is the carts collection surface the service needs.
type CartStore interface {
	Insert(ctx context.Context, entry models.CartEntry) (string, error)
	ByOwner(ctx context.Context, email string) ([]models.CartEntry, error)
	DeleteByID(ctx context.Context, id string) (int64, error)
}

// CartService manages the per-customer cart entries.
type CartService struct {
	carts CartStore
}

func NewCartService(carts CartStore) *CartService {
	return &CartService{carts: carts}
}

// Add stores one cart entry for a customer.
func (s *CartService) Add(ctx context.Context, entry models.CartEntry) (string, error) {
	if entry.CustomerEmail == "" {
		return "", fmt.Errorf("%w: email is required", apperr.ErrInvalidArgument)
	}
	return s.carts.Insert(ctx, entry)
}

// List returns the cart entries owned by the given email. An unknown email
// simply has an empty cart.
func (s *CartService) List(ctx context.Context, email string) ([]models.CartEntry, error) {
	return s.carts.ByOwner(ctx, email)
}

// Remove deletes one cart entry by id.
func (s *CartService) Remove(ctx context.Context, id string) (int64, error) {
	return s.carts.DeleteByID(ctx, id)
}
