package services

import (
	"context"
	"fmt"

	"bistro/app/models"
	"bistro/pkg/apperr"
)

// ReviewStore is the reviews collection surface the service needs.
type ReviewStore interface {
	All(ctx context.Context) ([]models.Review, error)
	Insert(ctx context.Context, review models.Review) (string, error)
}

// ReviewService serves the public testimonial feed.
type ReviewService struct {
	reviews ReviewStore
}

func NewReviewService(reviews ReviewStore) *ReviewService {
	return &ReviewService{reviews: reviews}
}

// List returns all reviews.
func (s *ReviewService) List(ctx context.Context) ([]models.Review, error) {
	return s.reviews.All(ctx)
}

// Create stores a new review. Ratings are clamped to the 1..5 scale the
// frontend renders.
func (s *ReviewService) Create(ctx context.Context, review models.Review) (string, error) {
	if review.Rating < 1 || review.Rating > 5 {
		return "", fmt.Errorf("%w: rating must be between 1 and 5", apperr.ErrInvalidArgument)
	}
	return s.reviews.Insert(ctx, review)
}
