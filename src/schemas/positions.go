package schemas

type OpenPositionRequest struct {
	Code     string  `json:"code"`
	BuyPrice float64 `json:"buy_price"`
	Amount   float64 `json:"amount"`
}

type AdjustPositionRequest struct {
	Delta    float64 `json:"delta"`
	BuyPrice float64 `json:"buy_price"`
}

// PositionResponse reports the ledger state after a mutation. Closed
// means the holding no longer exists; AverageCost then carries the last
// cost basis before deletion.
type PositionResponse struct {
	Code        string  `json:"code"`
	Name        string  `json:"name,omitempty"`
	Quantity    float64 `json:"quantity"`
	AverageCost float64 `json:"average_cost"`
	Closed      bool    `json:"closed,omitempty"`
}
