package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"fundtracker/src/api/controllers"
	"fundtracker/src/api/handlers"
	"fundtracker/src/clients/eastmoney"
	"fundtracker/src/config"
	"fundtracker/src/models"
	"fundtracker/src/services"
	"fundtracker/src/utils"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth"
	"github.com/stretchr/testify/require"
)

type memUserRepo struct {
	mu    sync.Mutex
	seq   uint
	users map[string]*models.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*models.User)}
}

func (r *memUserRepo) Create(_ context.Context, u *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[u.Username]; ok {
		return utils.NewDuplicateError("username already taken")
	}
	r.seq++
	u.ID = r.seq
	copied := *u
	r.users[u.Username] = &copied
	return nil
}

func (r *memUserRepo) GetByUsername(_ context.Context, username string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[username]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

type memHoldingRepo struct {
	mu       sync.Mutex
	seq      int
	holdings map[string]*models.Holding
}

func newMemHoldingRepo() *memHoldingRepo {
	return &memHoldingRepo{holdings: make(map[string]*models.Holding)}
}

func holdingKey(userID uint, code string) string {
	return fmt.Sprintf("%d:%s", userID, code)
}

func (r *memHoldingRepo) GetAllByUserID(_ context.Context, userID uint) ([]models.Holding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var holdings []models.Holding
	for _, h := range r.holdings {
		if h.UserID == userID {
			holdings = append(holdings, *h)
		}
	}
	return holdings, nil
}

func (r *memHoldingRepo) GetByUserIDAndCode(_ context.Context, userID uint, code string) (*models.Holding, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.holdings[holdingKey(userID, code)]
	if !ok {
		return nil, nil
	}
	copied := *h
	return &copied, nil
}

func (r *memHoldingRepo) Create(_ context.Context, h *models.Holding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := holdingKey(h.UserID, h.Code)
	if _, ok := r.holdings[key]; ok {
		return utils.NewDuplicateError("position already exists for fund %s", h.Code)
	}
	r.seq++
	h.ID = r.seq
	copied := *h
	r.holdings[key] = &copied
	return nil
}

func (r *memHoldingRepo) UpdatePosition(_ context.Context, userID uint, code string, quantity, averageCost float64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.holdings[holdingKey(userID, code)]
	if !ok {
		return utils.NewNotFoundError("no position for fund %s", code)
	}
	h.Quantity = quantity
	h.AverageCost = averageCost
	return nil
}

func (r *memHoldingRepo) Delete(_ context.Context, userID uint, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.holdings, holdingKey(userID, code))
	return nil
}

type stubQuoteSource struct {
	quotes  map[string]*eastmoney.Quote
	history map[string][]eastmoney.NetValuePoint
}

func (s *stubQuoteSource) GetQuote(_ context.Context, code string) (*eastmoney.Quote, error) {
	q, ok := s.quotes[code]
	if !ok {
		return nil, utils.NewUpstreamUnavailableError(nil, "no realtime estimate for fund %s", code)
	}
	copied := *q
	return &copied, nil
}

func (s *stubQuoteSource) GetHistory(_ context.Context, code string) ([]eastmoney.NetValuePoint, error) {
	series, ok := s.history[code]
	if !ok {
		return nil, utils.NewUpstreamUnavailableError(nil, "no net-worth series for fund %s", code)
	}
	return series, nil
}

// newTestServer wires the real router, middleware and services over
// in-memory fakes, mirroring the production route setup.
func newTestServer(t *testing.T, quotes *stubQuoteSource) *httptest.Server {
	t.Helper()

	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "test-secret"
	cfg.Auth.TokenLifetimeHrs = 1

	// ledger and valuation observe the same store
	holdingRepo := newMemHoldingRepo()
	controller := controllers.NewController(
		services.NewAuthService(newMemUserRepo()),
		services.NewLedgerService(holdingRepo, quotes),
		services.NewValuationService(holdingRepo, quotes, nil, 0),
	)

	h := handlers.NewHandler(cfg, controller)

	r := chi.NewRouter()
	r.Get("/alive", handlers.Healthcheck)
	r.Post("/register", h.Register)
	r.Post("/login", h.Login)
	r.Post("/logout", h.Logout)
	r.Group(func(r chi.Router) {
		r.Use(jwtauth.Verifier(h.TokenAuth))
		r.Get("/me", h.Me)
	})
	r.Route("/api", func(r chi.Router) {
		r.Use(jwtauth.Verifier(h.TokenAuth))
		r.Use(h.Authenticator)
		r.Post("/positions", h.OpenPosition)
		r.Post("/positions/{code}", h.AdjustPosition)
		r.Delete("/positions/{code}", h.ClosePosition)
		r.Get("/portfolio", h.GetPortfolio)
		r.Get("/history/{code}/{period}", h.GetHistory)
	})

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func doRequest(t *testing.T, method, url, token string, body interface{}) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	responseBody, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp, responseBody
}

func registerAndLogin(t *testing.T, ts *httptest.Server, username string) string {
	t.Helper()

	resp, _ := doRequest(t, http.MethodPost, ts.URL+"/register", "",
		map[string]string{"username": username, "password": "secret"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := doRequest(t, http.MethodPost, ts.URL+"/login", "",
		map[string]string{"username": username, "password": "secret"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(body, &login))
	require.NotEmpty(t, login.Token)
	return login.Token
}
