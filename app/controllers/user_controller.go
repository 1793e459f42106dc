package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"bistro/app/models"
	"bistro/app/services"
	"bistro/pkg/auth"
	"bistro/pkg/bind"
	"bistro/pkg/response"
)

type UserController struct {
	service *services.UserService
}

func NewUserController(service *services.UserService) *UserController {
	return &UserController{service: service}
}

type registerRequest struct {
	Name  string `json:"name" validate:"required,max=120"`
	Email string `json:"email" validate:"required,email"`
}

// Register records a user on first login. Re-registration of the same
// email is a harmless no-op with a null insertedId.
func (c *UserController) Register(w http.ResponseWriter, r *http.Request) {
	var body registerRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	result, err := c.service.Register(r.Context(), models.User{Name: body.Name, Email: body.Email})
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, result)
}

// AdminCheck answers whether the caller's own account holds the admin
// role. The email query parameter must match the token's email.
func (c *UserController) AdminCheck(w http.ResponseWriter, r *http.Request) {
	id, ok := auth.FromCtx(r.Context())
	if !ok {
		response.Unauthorized(w)
		return
	}

	isAdmin, err := c.service.IsAdmin(r.Context(), id.Email, r.URL.Query().Get("email"))
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, map[string]bool{"isAdmin": isAdmin})
}

// Index lists every user record. Admin only.
func (c *UserController) Index(w http.ResponseWriter, r *http.Request) {
	users, err := c.service.List(r.Context())
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, users)
}

// Destroy deletes one user by id. Admin only.
func (c *UserController) Destroy(w http.ResponseWriter, r *http.Request) {
	deleted, err := c.service.Delete(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, map[string]int64{"deletedCount": deleted})
}

// Promote grants the admin role to one user by id. Admin only.
func (c *UserController) Promote(w http.ResponseWriter, r *http.Request) {
	modified, err := c.service.Promote(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, map[string]int64{"modifiedCount": modified})
}
