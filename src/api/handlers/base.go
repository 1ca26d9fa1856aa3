package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"fundtracker/src/api/controllers"
	"fundtracker/src/config"
	"fundtracker/src/utils"

	"github.com/go-chi/jwtauth"
)

type Handler struct {
	Controller    controllers.IController
	TokenAuth     *jwtauth.JWTAuth
	TokenLifetime time.Duration
}

func NewHandler(cfg *config.Config, controller controllers.IController) *Handler {
	return &Handler{
		Controller:    controller,
		TokenAuth:     jwtauth.New("HS256", []byte(cfg.Auth.JWTSecret), nil),
		TokenLifetime: time.Duration(cfg.Auth.TokenLifetimeHrs) * time.Hour,
	}
}

func (h *Handler) respond(w http.ResponseWriter, _ *http.Request, data interface{}, status int) {
	res, err := json.Marshal(data)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = w.Write(res)
}

func (h *Handler) HandleErrors(w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		h.respond(w, nil, map[string]string{"error": "Request timed out"}, http.StatusGatewayTimeout)
		return
	}
	httpErr := utils.ToHTTPError(err)
	h.respond(w, nil, map[string]string{"error": httpErr.Message}, httpErr.Code)
}

func Healthcheck(w http.ResponseWriter, r *http.Request) {
	if r.Method == "GET" {
		fmt.Fprintf(w, "Im alive!")
	} else {
		fmt.Fprintf(w, "Method not available: %s", r.Method)
	}
}
