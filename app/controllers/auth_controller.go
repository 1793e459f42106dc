package controllers

import (
	"net/http"

	"bistro/pkg/auth"
	"bistro/pkg/bind"
	"bistro/pkg/response"
)

// AuthController mints the access tokens the frontend attaches to
// privileged requests. Authentication itself happens upstream at the
// identity provider; this endpoint only signs what it is given.
type AuthController struct{}

func NewAuthController() *AuthController {
	return &AuthController{}
}

type tokenRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"nullable,max=120"`
}

// Token issues a signed bearer token for the posted identity.
func (c *AuthController) Token(w http.ResponseWriter, r *http.Request) {
	var body tokenRequest
	if errs, err := bind.JSON(r, &body); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	token, err := auth.Issue(auth.Identity{Email: body.Email, Name: body.Name})
	if err != nil {
		fail(w, r, err)
		return
	}

	response.Success(w, map[string]string{"token": token})
}
