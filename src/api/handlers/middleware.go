package handlers

import (
	"encoding/json"
	"net/http"

	"fundtracker/src/utils"

	"github.com/go-chi/jwtauth"
)

// Authenticator resolves the JWT verified upstream by jwtauth.Verifier
// into a concrete user identity on the request context. Requests without
// a valid identity are refused; no anonymous fallback exists.
func (h *Handler) Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			h.HandleErrors(w, utils.NewUnauthorizedError("login required"))
			return
		}

		userID, ok := userIDFromClaims(claims)
		if !ok {
			h.HandleErrors(w, utils.NewUnauthorizedError("login required"))
			return
		}

		ctx := utils.WithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFromClaims tolerates the numeric forms a decoded JWT claim can
// take after a JSON round trip.
func userIDFromClaims(claims map[string]interface{}) (uint, bool) {
	switch v := claims["user_id"].(type) {
	case float64:
		return uint(v), v > 0
	case int64:
		return uint(v), v > 0
	case json.Number:
		n, err := v.Int64()
		return uint(n), err == nil && n > 0
	default:
		return 0, false
	}
}
