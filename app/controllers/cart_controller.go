package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bistro/app/models"
	"bistro/app/services"
	"bistro/pkg/bind"
	"bistro/pkg/response"
)

type CartController struct {
	service *services.CartService
}

func NewCartController(service *services.CartService) *CartController {
	return &CartController{service: service}
}

type cartEntryRequest struct {
	Email  string  `json:"email" validate:"required,email"`
	MenuID string  `json:"menuId" validate:"required,hexid"`
	Name   string  `json:"name" validate:"required,max=120"`
	Image  string  `json:"image" validate:"nullable,max=500"`
	Price  float64 `json:"price" validate:"required,numeric,gt=0"`
}

// Store adds a menu item to a customer cart.
func (c *CartController) Store(w http.ResponseWriter, r *http.Request) {
	var body cartEntryRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	id, err := c.service.Add(r.Context(), models.CartEntry{
		CustomerEmail: body.Email,
		MenuItemID:    body.MenuID,
		Name:          body.Name,
		Image:         body.Image,
		Price:         body.Price,
	})
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, map[string]string{"insertedId": id})
}

// Index lists the cart entries for the email query parameter. An unknown
// email gets an empty list.
func (c *CartController) Index(w http.ResponseWriter, r *http.Request) {
	entries, err := c.service.List(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, entries)
}

// Destroy removes one cart entry by id.
func (c *CartController) Destroy(w http.ResponseWriter, r *http.Request) {
	deleted, err := c.service.Remove(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, map[string]int64{"deletedCount": deleted})
}
