package handlers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"fundtracker/src/clients/eastmoney"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthFlow(t *testing.T) {
	ts := newTestServer(t, &stubQuoteSource{quotes: map[string]*eastmoney.Quote{}})

	t.Run("register rejects empty credentials", func(t *testing.T) {
		resp, _ := doRequest(t, http.MethodPost, ts.URL+"/register", "",
			map[string]string{"username": "  ", "password": ""})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("register and login issue a usable token", func(t *testing.T) {
		token := registerAndLogin(t, ts, "alice")

		resp, body := doRequest(t, http.MethodGet, ts.URL+"/me", token, nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var me struct {
			LoggedIn bool   `json:"logged_in"`
			Username string `json:"username"`
		}
		require.NoError(t, json.Unmarshal(body, &me))
		assert.True(t, me.LoggedIn)
		assert.Equal(t, "alice", me.Username)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		registerAndLogin(t, ts, "bob")

		resp, _ := doRequest(t, http.MethodPost, ts.URL+"/register", "",
			map[string]string{"username": "bob", "password": "other"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("wrong password is rejected without detail", func(t *testing.T) {
		registerAndLogin(t, ts, "carol")

		resp, body := doRequest(t, http.MethodPost, ts.URL+"/login", "",
			map[string]string{"username": "carol", "password": "wrong"})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, string(body), "invalid username or password")
	})

	t.Run("me without a token reports logged out", func(t *testing.T) {
		resp, body := doRequest(t, http.MethodGet, ts.URL+"/me", "", nil)
		require.Equal(t, http.StatusOK, resp.StatusCode)

		var me struct {
			LoggedIn bool `json:"logged_in"`
		}
		require.NoError(t, json.Unmarshal(body, &me))
		assert.False(t, me.LoggedIn)
	})

	t.Run("api routes refuse anonymous requests", func(t *testing.T) {
		resp, _ := doRequest(t, http.MethodGet, ts.URL+"/api/portfolio", "", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		resp, _ = doRequest(t, http.MethodGet, ts.URL+"/api/portfolio", "not-a-token", nil)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("logout always succeeds", func(t *testing.T) {
		resp, _ := doRequest(t, http.MethodPost, ts.URL+"/logout", "", nil)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
}
