package services

import (
	"context"
	"sync"
	"time"

	"fundtracker/src/clients/eastmoney"
	"fundtracker/src/models"
	"fundtracker/src/repositories"
	"fundtracker/src/schemas"
	"fundtracker/src/utils"
	redis_utils "fundtracker/src/utils/redis"
)

type ValuationServiceI interface {
	GetPortfolioValuation(ctx context.Context, userID uint) (*schemas.PortfolioValuation, error)
	GetHistory(ctx context.Context, code, period string) ([]eastmoney.NetValuePoint, error)
}

// ValuationService combines ledger entries with quotes from the external
// feed. Quote lookups are best effort: a holding whose quote cannot be
// obtained is excluded from the response and from every aggregate, and
// never fails the portfolio request.
type ValuationService struct {
	holdingRepo repositories.HoldingRepository
	quotes      eastmoney.ServiceClientI
	cache       *redis_utils.RedisHandler
	quoteTTL    time.Duration
}

// NewValuationService wires the valuation engine. cache may be nil; it is
// a read-through optimization only and has no effect on result semantics.
func NewValuationService(holdingRepo repositories.HoldingRepository, quotes eastmoney.ServiceClientI, cache *redis_utils.RedisHandler, quoteTTL time.Duration) *ValuationService {
	return &ValuationService{
		holdingRepo: holdingRepo,
		quotes:      quotes,
		cache:       cache,
		quoteTTL:    quoteTTL,
	}
}

// ValueHolding derives the per-holding metrics from a ledger entry and
// its quote, at full precision. A degenerate zero cost value yields a
// zero return percentage rather than an error.
func ValueHolding(holding models.Holding, quote *eastmoney.Quote) schemas.FundValuation {
	marketValue := quote.CurrentPrice * holding.Quantity
	costValue := holding.AverageCost * holding.Quantity
	unrealized := marketValue - costValue

	returnPct := 0.0
	if costValue > 0 {
		returnPct = unrealized / costValue * 100
	}

	return schemas.FundValuation{
		Code:          holding.Code,
		Name:          quote.Name,
		CurrentPrice:  quote.CurrentPrice,
		AverageCost:   holding.AverageCost,
		Quantity:      holding.Quantity,
		MarketValue:   marketValue,
		UnrealizedPnL: unrealized,
		ReturnPct:     returnPct,
		DayChangePct:  quote.DayChangePct,
		TodayPnL:      marketValue * quote.DayChangePct / 100,
	}
}

// GetPortfolioValuation values every holding of the user against one
// quote per fund, fetched concurrently. Aggregates are summed at full
// precision over the holdings with a resolvable quote; rounding happens
// once, here, at the presentation boundary.
func (s *ValuationService) GetPortfolioValuation(ctx context.Context, userID uint) (*schemas.PortfolioValuation, error) {
	logger := utils.LoggerFromContext(ctx)

	holdings, err := s.holdingRepo.GetAllByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	quotesByIndex := make([]*eastmoney.Quote, len(holdings))
	var wg sync.WaitGroup
	for i, holding := range holdings {
		wg.Add(1)
		go func(i int, code string) {
			defer wg.Done()
			quote, err := s.fetchQuote(ctx, code)
			if err != nil {
				logger.WithField("code", code).Warn("excluding holding from valuation: ", err)
				return
			}
			quotesByIndex[i] = quote
		}(i, holding.Code)
	}
	wg.Wait()

	valuation := &schemas.PortfolioValuation{Funds: []schemas.FundValuation{}}
	var totalMarket, totalCost, totalToday float64

	for i, holding := range holdings {
		quote := quotesByIndex[i]
		if quote == nil {
			continue
		}
		fund := ValueHolding(holding, quote)

		totalMarket += fund.MarketValue
		totalCost += fund.MarketValue - fund.UnrealizedPnL
		totalToday += fund.TodayPnL

		fund.MarketValue = utils.Round2(fund.MarketValue)
		fund.UnrealizedPnL = utils.Round2(fund.UnrealizedPnL)
		fund.ReturnPct = utils.Round2(fund.ReturnPct)
		fund.TodayPnL = utils.Round2(fund.TodayPnL)
		valuation.Funds = append(valuation.Funds, fund)
	}

	totalUnrealized := totalMarket - totalCost
	totalReturnPct := 0.0
	if totalCost > 0 {
		totalReturnPct = totalUnrealized / totalCost * 100
	}

	valuation.TotalMarketValue = utils.Round2(totalMarket)
	valuation.TotalCostValue = utils.Round2(totalCost)
	valuation.TotalUnrealizedPnL = utils.Round2(totalUnrealized)
	valuation.TotalReturnPct = utils.Round2(totalReturnPct)
	valuation.TotalTodayPnL = utils.Round2(totalToday)

	return valuation, nil
}

// GetHistory returns the fund's net-worth series filtered to the given
// period tag. An unreachable history feed degrades to an empty series.
func (s *ValuationService) GetHistory(ctx context.Context, code, period string) ([]eastmoney.NetValuePoint, error) {
	logger := utils.LoggerFromContext(ctx)

	series, err := s.quotes.GetHistory(ctx, code)
	if err != nil {
		logger.WithField("code", code).Warn("history unavailable: ", err)
		return []eastmoney.NetValuePoint{}, nil
	}

	cutoff := utils.PeriodCutoff(period, time.Now())

	filtered := make([]eastmoney.NetValuePoint, 0, len(series))
	for _, point := range series {
		date, err := time.Parse("2006-01-02", point.Date)
		if err != nil {
			continue
		}
		if !date.Before(cutoff) {
			filtered = append(filtered, point)
		}
	}
	return filtered, nil
}

func (s *ValuationService) fetchQuote(ctx context.Context, code string) (*eastmoney.Quote, error) {
	if s.cache == nil {
		return s.quotes.GetQuote(ctx, code)
	}

	key := redis_utils.GenerateKey("quote", code)
	var cached eastmoney.Quote
	if err := s.cache.Get(ctx, key, &cached); err == nil {
		return &cached, nil
	}

	quote, err := s.quotes.GetQuote(ctx, code)
	if err != nil {
		return nil, err
	}
	if err := s.cache.Set(ctx, key, quote, s.quoteTTL); err != nil {
		utils.LoggerFromContext(ctx).Warn("failed caching quote: ", err)
	}
	return quote, nil
}
