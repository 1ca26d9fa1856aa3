package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"fundtracker/src/schemas"
	"fundtracker/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) OpenPosition(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	userID, ok := utils.UserIDFromContext(ctx)
	if !ok {
		h.HandleErrors(w, utils.NewUnauthorizedError("login required"))
		return
	}

	var req schemas.OpenPositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.NewValidationError("buy price and amount must be numbers"))
		return
	}

	position, err := h.Controller.OpenPosition(ctx, userID, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, position, http.StatusOK)
}

func (h *Handler) AdjustPosition(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	userID, ok := utils.UserIDFromContext(ctx)
	if !ok {
		h.HandleErrors(w, utils.NewUnauthorizedError("login required"))
		return
	}

	code := chi.URLParam(r, "code")

	var req schemas.AdjustPositionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.HandleErrors(w, utils.NewValidationError("delta and buy price must be numbers"))
		return
	}

	position, err := h.Controller.AdjustPosition(ctx, userID, code, &req)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, position, http.StatusOK)
}

func (h *Handler) ClosePosition(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID, ok := utils.UserIDFromContext(ctx)
	if !ok {
		h.HandleErrors(w, utils.NewUnauthorizedError("login required"))
		return
	}

	code := chi.URLParam(r, "code")

	if err := h.Controller.ClosePosition(ctx, userID, code); err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, map[string]string{"status": "deleted"}, http.StatusOK)
}
