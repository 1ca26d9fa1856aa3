package controllers

import (
	"context"

	"fundtracker/src/schemas"
)

type PositionsControllerI interface {
	OpenPosition(ctx context.Context, userID uint, req *schemas.OpenPositionRequest) (*schemas.PositionResponse, error)
	AdjustPosition(ctx context.Context, userID uint, code string, req *schemas.AdjustPositionRequest) (*schemas.PositionResponse, error)
	ClosePosition(ctx context.Context, userID uint, code string) error
}

func (c *Controller) OpenPosition(ctx context.Context, userID uint, req *schemas.OpenPositionRequest) (*schemas.PositionResponse, error) {
	return c.LedgerService.OpenPosition(ctx, userID, req.Code, req.Amount, req.BuyPrice)
}

func (c *Controller) AdjustPosition(ctx context.Context, userID uint, code string, req *schemas.AdjustPositionRequest) (*schemas.PositionResponse, error) {
	return c.LedgerService.AdjustPosition(ctx, userID, code, req.Delta, req.BuyPrice)
}

func (c *Controller) ClosePosition(ctx context.Context, userID uint, code string) error {
	return c.LedgerService.ClosePosition(ctx, userID, code)
}
