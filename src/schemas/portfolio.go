package schemas

// FundValuation is one holding combined with its current quote. Monetary
// and percentage outputs are rounded to 2 decimals at assembly.
type FundValuation struct {
	Code          string  `json:"code"`
	Name          string  `json:"name"`
	CurrentPrice  float64 `json:"current_price"`
	AverageCost   float64 `json:"average_cost"`
	Quantity      float64 `json:"quantity"`
	MarketValue   float64 `json:"market_value"`
	UnrealizedPnL float64 `json:"unrealized_pnl"`
	ReturnPct     float64 `json:"return_pct"`
	DayChangePct  float64 `json:"day_change_pct"`
	TodayPnL      float64 `json:"today_pnl"`
}

type PortfolioValuation struct {
	Funds              []FundValuation `json:"funds"`
	TotalMarketValue   float64         `json:"total_market_value"`
	TotalCostValue     float64         `json:"total_cost_value"`
	TotalUnrealizedPnL float64         `json:"total_unrealized_pnl"`
	TotalReturnPct     float64         `json:"total_return_pct"`
	TotalTodayPnL      float64         `json:"total_today_pnl"`
}
