package eastmoney

// realtimeEstimate is the payload inside the jsonpgz(...) wrapper of the
// realtime fund feed. Numeric fields arrive as strings.
type realtimeEstimate struct {
	FundCode           string `json:"fundcode"`
	Name               string `json:"name"`
	NetValueDate       string `json:"jzrq"`
	NetValue           string `json:"dwjz"`
	EstimatedValue     string `json:"gsz"`
	EstimatedChangePct string `json:"gszzl"`
	EstimatedAt        string `json:"gztime"`
}

// netWorthTrendPoint is one entry of the Data_netWorthTrend series in the
// fund detail script. X is a millisecond epoch.
type netWorthTrendPoint struct {
	X int64   `json:"x"`
	Y float64 `json:"y"`
}

// Quote is the current indicative valuation of one fund. Ephemeral, never
// persisted.
type Quote struct {
	Code         string
	Name         string
	CurrentPrice float64
	DayChangePct float64
}

// NetValuePoint is one (date, unit value) sample of a fund's net-worth
// history, dates formatted as YYYY-MM-DD in feed order.
type NetValuePoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}
