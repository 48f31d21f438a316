package report

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"testing"
	"time"

	"backtest_bot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTradesCSV_RoundTrip(t *testing.T) {
	trades := []models.Trade{
		{
			Symbol:     "BTC/USDT",
			TradeType:  "long",
			EntryTime:  "2025-01-01 10:00",
			EntryPrice: 42000.5,
			EntryRSI:   fptr(28.731),
			ExitTime:   "2025-01-01 12:00",
			ExitPrice:  43210.25,
			ExitRSI:    fptr(71.02),
			ProfitPct:  2.8803,
		},
		{
			Symbol:     "BTC/USDT",
			TradeType:  "short",
			EntryTime:  "2025-01-02 09:00",
			EntryPrice: 43100,
			ExitTime:   "2025-01-02 11:00",
			ExitPrice:  43500,
			ProfitPct:  -0.928,
		},
	}

	raw, err := TradesCSV(trades)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, TradeColumns, records[0])

	// profit_pct — сырое число, без знака процента
	profit, err := strconv.ParseFloat(records[1][8], 64)
	require.NoError(t, err)
	assert.InDelta(t, 2.8803, profit, 1e-9)

	assert.Equal(t, "28.731", records[1][4])
	assert.Equal(t, "71.02", records[1][7])

	// нет RSI — пустые ячейки
	assert.Equal(t, "", records[2][4])
	assert.Equal(t, "", records[2][7])
	assert.Equal(t, "-0.928", records[2][8])
}

func TestTradesCSV_EmptyTrades(t *testing.T) {
	raw, err := TradesCSV(nil)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(raw)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, TradeColumns, records[0])
}

func TestCSVFileName(t *testing.T) {
	at := time.Date(2025, 3, 7, 23, 59, 0, 0, time.UTC)

	assert.Equal(t, "trades_BTCUSDT_20250307.csv", CSVFileName("BTC/USDT", at))
	assert.Equal(t, "trades_ETHBTC_20250307.csv", CSVFileName("ETH/BTC", at))
	assert.Equal(t, "trades_DOGEUSDT_20250307.csv", CSVFileName("DOGEUSDT", at))
}
