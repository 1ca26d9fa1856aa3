package controllers

import (
	"fundtracker/src/services"
)

type IController interface {
	AuthControllerI
	PositionsControllerI
	PortfolioControllerI
}

type Controller struct {
	AuthService      services.AuthServiceI
	LedgerService    services.LedgerServiceI
	ValuationService services.ValuationServiceI
}

func NewController(authService services.AuthServiceI, ledgerService services.LedgerServiceI, valuationService services.ValuationServiceI) *Controller {
	return &Controller{
		AuthService:      authService,
		LedgerService:    ledgerService,
		ValuationService: valuationService,
	}
}
