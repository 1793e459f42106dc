package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bistro/app/models"
	"bistro/app/services"
	"bistro/pkg/auth"
	"bistro/pkg/bind"
	"bistro/pkg/payments"
	"bistro/pkg/response"
)

type OrderController struct {
	service *services.OrderService
	intents payments.IntentCreator
}

func NewOrderController(service *services.OrderService, intents payments.IntentCreator) *OrderController {
	return &OrderController{service: service, intents: intents}
}

type intentRequest struct {
	Price float64 `json:"price" validate:"required,numeric,gt=0"`
}

// CreateIntent opens a payment intent with the processor for the given
// amount and hands the client secret back to the frontend.
func (c *OrderController) CreateIntent(w http.ResponseWriter, r *http.Request) {
	var body intentRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	secret, err := c.intents.CreateIntent(payments.MinorUnits(body.Price))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, map[string]string{"clientSecret": secret})
}

type finalizeRequest struct {
	Email         string   `json:"email" validate:"required,email"`
	TotalPrice    float64  `json:"totalPrice" validate:"required,numeric,gt=0"`
	TransactionID string   `json:"transactionId" validate:"required,max=255"`
	CartIDs       []string `json:"cartIds"`
	MenuIDs       []string `json:"menuIds"`
	Status        string   `json:"status" validate:"nullable,max=50"`
}

// Finalize records the payment and clears the purchased cart entries,
// reporting both outcomes to the client.
func (c *OrderController) Finalize(w http.ResponseWriter, r *http.Request) {
	var body finalizeRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	result, err := c.service.Finalize(r.Context(), models.Payment{
		Email:         body.Email,
		TotalPrice:    body.TotalPrice,
		TransactionID: body.TransactionID,
		CartIDs:       body.CartIDs,
		MenuIDs:       body.MenuIDs,
		Status:        body.Status,
	})
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"paymentResult":     map[string]string{"insertedId": result.PaymentID},
		"cartDeletedResult": map[string]int64{"deletedCount": result.DeletedCount},
	})
}

// History returns the caller's own payment records. The path email must
// match the token's email.
func (c *OrderController) History(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	records, err := c.service.History(r.Context(), id.Email, chi.URLParam(r, "email"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, records)
}
