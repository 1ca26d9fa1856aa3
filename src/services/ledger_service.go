package services

import (
	"context"
	"fmt"
	"strings"

	"fundtracker/src/clients/eastmoney"
	"fundtracker/src/models"
	"fundtracker/src/repositories"
	"fundtracker/src/schemas"
	"fundtracker/src/utils"
)

type LedgerServiceI interface {
	OpenPosition(ctx context.Context, userID uint, code string, quantity, price float64) (*schemas.PositionResponse, error)
	AdjustPosition(ctx context.Context, userID uint, code string, delta, price float64) (*schemas.PositionResponse, error)
	ClosePosition(ctx context.Context, userID uint, code string) error
	ListPositions(ctx context.Context, userID uint) ([]models.Holding, error)
}

// LedgerService owns the position accounting state transitions. Every
// mutation of one (user, fund code) holding runs under that key's mutex,
// so the read-modify-write of quantity and average cost never interleaves
// with a concurrent mutation of the same holding.
type LedgerService struct {
	holdingRepo repositories.HoldingRepository
	quotes      eastmoney.ServiceClientI
	locks       *utils.KeyLock
}

func NewLedgerService(holdingRepo repositories.HoldingRepository, quotes eastmoney.ServiceClientI) *LedgerService {
	return &LedgerService{
		holdingRepo: holdingRepo,
		quotes:      quotes,
		locks:       utils.NewKeyLock(),
	}
}

func positionKey(userID uint, code string) string {
	return fmt.Sprintf("%d:%s", userID, code)
}

// OpenPosition creates a holding for (user, code) with the given initial
// quantity and purchase price. The fund code must resolve against the
// quote source; a holding for the pair must not already exist.
func (s *LedgerService) OpenPosition(ctx context.Context, userID uint, code string, quantity, price float64) (*schemas.PositionResponse, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, utils.NewValidationError("fund code must not be empty")
	}
	if quantity <= 0 || price <= 0 {
		return nil, utils.NewValidationError("buy price and amount must be greater than 0")
	}

	quote, err := s.quotes.GetQuote(ctx, code)
	if err != nil {
		return nil, utils.NewValidationError("fund code %s is invalid or does not exist", code)
	}

	key := positionKey(userID, code)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	holding := &models.Holding{
		UserID:      userID,
		Code:        code,
		AverageCost: price,
		Quantity:    quantity,
	}
	if err := s.holdingRepo.Create(ctx, holding); err != nil {
		return nil, err
	}

	return &schemas.PositionResponse{
		Code:        code,
		Name:        quote.Name,
		Quantity:    quantity,
		AverageCost: price,
	}, nil
}

// AdjustPosition applies a signed quantity delta to an existing holding.
// Adding units recomputes the weighted-average cost from the pre-update
// quantity and cost plus the caller-supplied incremental price; reducing
// units leaves the cost basis untouched. Driving the quantity to zero or
// below deletes the holding, reporting the last cost basis unchanged.
func (s *LedgerService) AdjustPosition(ctx context.Context, userID uint, code string, delta, price float64) (*schemas.PositionResponse, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, utils.NewValidationError("fund code must not be empty")
	}
	if delta > 0 && price <= 0 {
		return nil, utils.NewValidationError("buy price must be greater than 0 when adding units")
	}

	key := positionKey(userID, code)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	holding, err := s.holdingRepo.GetByUserIDAndCode(ctx, userID, code)
	if err != nil {
		return nil, err
	}
	if holding == nil {
		return nil, utils.NewNotFoundError("no position for fund %s", code)
	}

	newQuantity := holding.Quantity + delta
	if newQuantity <= 0 {
		if err := s.holdingRepo.Delete(ctx, userID, code); err != nil {
			return nil, err
		}
		return &schemas.PositionResponse{
			Code:        code,
			Quantity:    0,
			AverageCost: holding.AverageCost,
			Closed:      true,
		}, nil
	}

	averageCost := holding.AverageCost
	if delta > 0 {
		averageCost = (holding.AverageCost*holding.Quantity + price*delta) / newQuantity
	}

	if err := s.holdingRepo.UpdatePosition(ctx, userID, code, newQuantity, averageCost); err != nil {
		return nil, err
	}

	return &schemas.PositionResponse{
		Code:        code,
		Quantity:    newQuantity,
		AverageCost: averageCost,
	}, nil
}

// ClosePosition deletes the holding if present. Unlike AdjustPosition,
// absence is not an error here.
func (s *LedgerService) ClosePosition(ctx context.Context, userID uint, code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return utils.NewValidationError("fund code must not be empty")
	}

	key := positionKey(userID, code)
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	return s.holdingRepo.Delete(ctx, userID, code)
}

func (s *LedgerService) ListPositions(ctx context.Context, userID uint) ([]models.Holding, error) {
	return s.holdingRepo.GetAllByUserID(ctx, userID)
}
