package handler

import (
	"net/http"

	"github.com/dialbook/contacts/api/internal/middleware"
	"github.com/dialbook/contacts/api/internal/model"
	"github.com/dialbook/contacts/api/internal/service"
)

// AuthHandler handles registration and authentication endpoints
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// RegisterRequest represents the register endpoint request body
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents the login endpoint request body
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponse represents a login response
type TokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// Register handles POST /api/users/register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := DecodeJSON(r, &req); err != nil {
		model.NewValidationError("invalid request body").WriteJSON(w)
		return
	}

	user, err := h.authService.Register(r.Context(), service.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		MapServiceError(err).WriteJSON(w)
		return
	}

	// The hash is never echoed
	WriteJSON(w, http.StatusCreated, user.Public())
}

// Login handles POST /api/users/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := DecodeJSON(r, &req); err != nil {
		model.NewValidationError("invalid request body").WriteJSON(w)
		return
	}

	token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		MapServiceError(err).WriteJSON(w)
		return
	}

	WriteJSON(w, http.StatusOK, TokenResponse{AccessToken: token})
}

// Current handles GET /api/users/current. It echoes the identity the
// session middleware attached to the context; no store lookup.
func (h *AuthHandler) Current(w http.ResponseWriter, r *http.Request) {
	claims := middleware.GetClaims(r.Context())
	if claims == nil {
		model.NewUnauthorizedError("authentication required").WriteJSON(w)
		return
	}

	WriteJSON(w, http.StatusOK, claims)
}
