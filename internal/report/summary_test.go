package report

import (
	"testing"

	"backtest_bot/internal/models"

	"github.com/stretchr/testify/assert"
)

// TestNewSummaryView_ZeroTrades: при нуле сделок не делим на ноль и показываем 0%
func TestNewSummaryView_ZeroTrades(t *testing.T) {
	view := NewSummaryView(models.BacktestSummary{
		TotalTrades:       0,
		WinningTrades:     0,
		TotalProfitPct:    0,
		AvgProfitPerTrade: 0,
	})

	assert.Equal(t, 0, view.TotalTrades)
	assert.Equal(t, 0, view.WinRatePct)
	assert.Equal(t, "0.00%", view.TotalReturn)
	assert.Equal(t, "0.00%", view.AvgTrade)
}

func TestNewSummaryView_WinRateFloor(t *testing.T) {
	// 7 из 12 = 58.33..%, показываем floor → 58
	view := NewSummaryView(models.BacktestSummary{
		TotalTrades:       12,
		WinningTrades:     7,
		TotalProfitPct:    12.345,
		AvgProfitPerTrade: 1.0287,
	})

	assert.Equal(t, 58, view.WinRatePct)
	assert.Equal(t, "12.35%", view.TotalReturn)
	assert.Equal(t, "1.03%", view.AvgTrade)
}

func TestNewSummaryView_AllWinning(t *testing.T) {
	view := NewSummaryView(models.BacktestSummary{
		TotalTrades:   4,
		WinningTrades: 4,
	})

	assert.Equal(t, 100, view.WinRatePct)
}

func TestNewSummaryView_NegativeReturns(t *testing.T) {
	view := NewSummaryView(models.BacktestSummary{
		TotalTrades:       3,
		WinningTrades:     0,
		TotalProfitPct:    -4.5,
		AvgProfitPerTrade: -1.5,
	})

	assert.Equal(t, 0, view.WinRatePct)
	assert.Equal(t, "-4.50%", view.TotalReturn)
	assert.Equal(t, "-1.50%", view.AvgTrade)
}
