package controllers

import (
	"net/http"

	"bistro/app/models"
	"bistro/app/services"
	"bistro/pkg/bind"
	"bistro/pkg/response"
)

type ReviewController struct {
	service *services.ReviewService
}

func NewReviewController(service *services.ReviewService) *ReviewController {
	return &ReviewController{service: service}
}

type reviewRequest struct {
	Name    string  `json:"name" validate:"required,max=120"`
	Details string  `json:"details" validate:"required,max=2000"`
	Rating  float64 `json:"rating" validate:"required,numeric,gte=1,lte=5"`
}

// Index returns all customer reviews.
func (c *ReviewController) Index(w http.ResponseWriter, r *http.Request) {
	reviews, err := c.service.List(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, reviews)
}

// Store records a new review.
func (c *ReviewController) Store(w http.ResponseWriter, r *http.Request) {
	var body reviewRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	id, err := c.service.Create(r.Context(), models.Review{
		Name:    body.Name,
		Details: body.Details,
		Rating:  body.Rating,
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, map[string]string{"insertedId": id})
}
