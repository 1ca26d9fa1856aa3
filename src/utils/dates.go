package utils

import "time"

// Period cutoffs for the net-worth history filter. Unknown tags fall back
// to one year, matching the widest window the UI offers.
const (
	PeriodOneMonth   = "1m"
	PeriodThreeMonth = "3m"
	PeriodSixMonth   = "6m"
	PeriodOneYear    = "1y"
)

// PeriodCutoff returns the inclusive lower bound for a history window
// ending at now.
func PeriodCutoff(period string, now time.Time) time.Time {
	var days int
	switch period {
	case PeriodOneMonth:
		days = 30
	case PeriodThreeMonth:
		days = 90
	case PeriodSixMonth:
		days = 180
	default:
		days = 365
	}
	cutoff := now.AddDate(0, 0, -days)
	// Truncate to midnight so the bound is inclusive of the cutoff day.
	return time.Date(cutoff.Year(), cutoff.Month(), cutoff.Day(), 0, 0, 0, 0, cutoff.Location())
}
