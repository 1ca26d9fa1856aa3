package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"fundtracker/src/schemas"
	"fundtracker/src/utils"

	"github.com/go-chi/jwtauth"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.NewValidationError("invalid request body"))
		return
	}

	if err := h.Controller.Register(ctx, req.Username, req.Password); err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, map[string]string{"status": "ok"}, http.StatusOK)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req schemas.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.NewValidationError("invalid request body"))
		return
	}

	user, err := h.Controller.Login(ctx, req.Username, req.Password)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	claims := map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
		"exp":      time.Now().Add(h.TokenLifetime).Unix(),
	}
	_, tokenString, err := h.TokenAuth.Encode(claims)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, &schemas.LoginResponse{Token: tokenString, Username: user.Username}, http.StatusOK)
}

// Logout is stateless: tokens are discarded client side. The endpoint
// exists so the client flow mirrors login.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	h.respond(w, r, map[string]string{"status": "ok"}, http.StatusOK)
}

// Me reports whether the request carries a valid identity. Unlike the
// /api routes, an anonymous call is a normal answer here, not an error.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	token, claims, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		h.respond(w, r, &schemas.MeResponse{LoggedIn: false}, http.StatusOK)
		return
	}

	username, _ := claims["username"].(string)
	h.respond(w, r, &schemas.MeResponse{LoggedIn: true, Username: username}, http.StatusOK)
}
