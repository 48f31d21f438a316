package report

import (
	"testing"

	"backtest_bot/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestHistoryColumns_TimeFirst(t *testing.T) {
	points := []models.HistoricalPoint{
		{"close": 101.5, "timestamp": "2025-01-01", "open": 100.0},
		{"rsi": 42.0, "timestamp": "2025-01-02", "volume": 10.0},
	}

	cols := HistoryColumns(points)
	assert.Equal(t, []string{"timestamp", "close", "open", "rsi", "volume"}, cols)
}

func TestHistoryColumns_Empty(t *testing.T) {
	assert.Empty(t, HistoryColumns(nil))
}

func TestRenderHistoryTable(t *testing.T) {
	points := []models.HistoricalPoint{
		{"time": "2025-01-01 10:00", "close": 42000.5},
	}

	out := RenderHistoryTable(points)
	assert.Contains(t, out, "42000.5")
	assert.Contains(t, out, "2025-01-01 10:00")

	assert.Equal(t, "", RenderHistoryTable(nil))
}
