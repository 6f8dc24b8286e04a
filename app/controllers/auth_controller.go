package controllers

import (
	"net/http"

	"github.com/warungku/warung/app/services"
	"github.com/warungku/warung/pkg/bind"
	"github.com/warungku/warung/pkg/middleware"
	"github.com/warungku/warung/pkg/response"
)

// AuthController handles seller registration and login.
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController() *AuthController {
	return &AuthController{auth: services.NewAuthService()}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var in services.RegisterInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	user, err := c.auth.Register(r.Context(), in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Created(w, user)
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var in services.LoginInput
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	pair, err := c.auth.Login(in)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, pair)
}

func (c *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	var in struct {
		RefreshToken string `json:"refresh_token" validate:"required"`
	}
	if errs, err := bind.JSON(r, &in); err != nil {
		response.Error(w, http.StatusBadRequest, err.Error())
		return
	} else if errs != nil {
		response.ValidationError(w, errs)
		return
	}

	pair, err := c.auth.Refresh(in.RefreshToken)
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, pair)
}

func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	user, err := c.auth.Me(middleware.UserID(r.Context()))
	if err != nil {
		fail(w, r, err)
		return
	}
	response.Success(w, user)
}
