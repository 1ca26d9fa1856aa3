package services_test

import (
	"context"
	"fmt"
	"sync"

	"fundtracker/src/clients/eastmoney"
	"fundtracker/src/models"
	"fundtracker/src/utils"
)

// memHoldingRepo is an in-memory HoldingRepository with the same
// contract as the Postgres one: (nil, nil) on absent rows, DuplicateError
// on key collisions.
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

// stubQuoteSource serves quotes and histories from fixed maps; unknown
// codes behave like an unreachable feed.
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
