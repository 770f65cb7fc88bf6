package controllers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"news-app/backend/app/dto"
	"news-app/backend/app/middleware"
	"news-app/backend/app/services"
)

type AuthController struct {
	Auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{Auth: auth}
}

// Login POST /api/auth/login
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "login")
		return
	}
	res, err := c.Auth.Login(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "login")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Signup POST /api/auth/signup
func (c *AuthController) Signup(w http.ResponseWriter, r *http.Request) {
	var req dto.SignupRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "signup")
		return
	}
	res, err := c.Auth.Signup(r.Context(), req)
	if err != nil {
		writeError(w, r, err, "signup")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Refresh POST /api/auth/refresh. An unusable refresh token is a bad
// request here, not a 401.
func (c *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	var req dto.RefreshRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err, "refresh")
		return
	}
	res, err := c.Auth.Refresh(r.Context(), req)
	if errors.Is(err, services.ErrUnauthenticated) {
		writeErrorStatus(w, r, err, "refresh", http.StatusBadRequest)
		return
	}
	if err != nil {
		writeError(w, r, err, "refresh")
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// Logout POST /api/auth/logout. The body is optional.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	var req dto.LogoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeJSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	res, err := c.Auth.Logout(r.Context(), middleware.GetClaims(r.Context()), req.RefreshToken)
	if err != nil {
		writeError(w, r, err, "logout")
		return
	}
	writeJSON(w, http.StatusOK, res)
}
