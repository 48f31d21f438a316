package report

import (
	"strings"
	"testing"

	"backtest_bot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

// TestShapeTrades_MissingRSI: стратегии без RSI не присылают entry_rsi/exit_rsi,
// но колонки всё равно на месте — пустыми плейсхолдерами.
func TestShapeTrades_MissingRSI(t *testing.T) {
	trades := []models.Trade{
		{
			Symbol:     "BTC/USDT",
			TradeType:  "long",
			EntryTime:  "2025-01-01 10:00",
			EntryPrice: 42000.5,
			ExitTime:   "2025-01-01 12:00",
			ExitPrice:  43000,
			ProfitPct:  2.3805,
		},
	}

	rows := ShapeTrades(trades)
	require.Len(t, rows, 1)
	require.Len(t, rows[0], len(TradeColumns))

	assert.Equal(t, "", rows[0][4]) // entry_rsi
	assert.Equal(t, "", rows[0][7]) // exit_rsi
	assert.Equal(t, "2.38%", rows[0][8])
}

func TestShapeTrades_ColumnOrder(t *testing.T) {
	assert.Equal(t, []string{
		"symbol", "trade_type", "entry_time", "entry_price",
		"entry_rsi", "exit_time", "exit_price", "exit_rsi", "profit_pct",
	}, TradeColumns)

	trades := []models.Trade{
		{
			Symbol:     "ETH/USDT",
			TradeType:  "short",
			EntryTime:  "t1",
			EntryPrice: 3000,
			EntryRSI:   fptr(71.456),
			ExitTime:   "t2",
			ExitPrice:  2900,
			ExitRSI:    fptr(28.1),
			ProfitPct:  3.3333,
		},
	}

	rows := ShapeTrades(trades)
	require.Len(t, rows, 1)
	assert.Equal(t, "ETH/USDT", rows[0][0])
	assert.Equal(t, "short", rows[0][1])
	assert.Equal(t, "t1", rows[0][2])
	assert.Equal(t, "3000", rows[0][3])
	assert.Equal(t, "71.46", rows[0][4])
	assert.Equal(t, "t2", rows[0][5])
	assert.Equal(t, "2900", rows[0][6])
	assert.Equal(t, "28.10", rows[0][7])
	assert.Equal(t, "3.33%", rows[0][8])
}

func TestShapeTrades_Empty(t *testing.T) {
	assert.Empty(t, ShapeTrades(nil))
}

func TestRenderTradeTable_ContainsHeaderAndRows(t *testing.T) {
	trades := []models.Trade{
		{Symbol: "BTC/USDT", TradeType: "long", EntryTime: "t1", EntryPrice: 100, ExitTime: "t2", ExitPrice: 110, ProfitPct: 10},
	}

	out := RenderTradeTable(trades)
	assert.True(t, strings.Contains(out, "ENTRY_RSI") || strings.Contains(out, "entry_rsi"))
	assert.Contains(t, out, "BTC/USDT")
	assert.Contains(t, out, "10.00%")
}
