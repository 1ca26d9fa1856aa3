package handlers

import (
	"context"
	"net/http"
	"time"

	"fundtracker/src/utils"

	"github.com/go-chi/chi/v5"
)

func (h *Handler) GetPortfolio(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	userID, ok := utils.UserIDFromContext(ctx)
	if !ok {
		h.HandleErrors(w, utils.NewUnauthorizedError("login required"))
		return
	}

	valuation, err := h.Controller.GetPortfolioValuation(ctx, userID)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, valuation, http.StatusOK)
}

func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	if _, ok := utils.UserIDFromContext(ctx); !ok {
		h.HandleErrors(w, utils.NewUnauthorizedError("login required"))
		return
	}

	code := chi.URLParam(r, "code")
	period := chi.URLParam(r, "period")

	series, err := h.Controller.GetHistory(ctx, code, period)
	if err != nil {
		h.HandleErrors(w, err)
		return
	}

	h.respond(w, r, series, http.StatusOK)
}
