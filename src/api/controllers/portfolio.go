package controllers

import (
	"context"

	"fundtracker/src/clients/eastmoney"
	"fundtracker/src/schemas"
)

type PortfolioControllerI interface {
	GetPortfolioValuation(ctx context.Context, userID uint) (*schemas.PortfolioValuation, error)
	GetHistory(ctx context.Context, code, period string) ([]eastmoney.NetValuePoint, error)
}

func (c *Controller) GetPortfolioValuation(ctx context.Context, userID uint) (*schemas.PortfolioValuation, error) {
	return c.ValuationService.GetPortfolioValuation(ctx, userID)
}

func (c *Controller) GetHistory(ctx context.Context, code, period string) ([]eastmoney.NetValuePoint, error) {
	return c.ValuationService.GetHistory(ctx, code, period)
}
