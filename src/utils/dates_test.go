package utils_test

import (
	"testing"
	"time"

	"fundtracker/src/utils"

	"github.com/stretchr/testify/assert"
)

func TestPeriodCutoff(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

	cases := []struct {
		period string
		want   time.Time
	}{
		{utils.PeriodOneMonth, time.Date(2025, 5, 16, 0, 0, 0, 0, time.UTC)},
		{utils.PeriodThreeMonth, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)},
		{utils.PeriodSixMonth, time.Date(2024, 12, 17, 0, 0, 0, 0, time.UTC)},
		{utils.PeriodOneYear, time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"whatever", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"", time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, utils.PeriodCutoff(c.period, now), "period %q", c.period)
	}
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 2.33, utils.Round2(2.3333))
	assert.Equal(t, 2.34, utils.Round2(2.336))
	assert.Equal(t, -0.28, utils.Round2(-0.275))
	assert.Equal(t, 0.0, utils.Round2(0))
}
