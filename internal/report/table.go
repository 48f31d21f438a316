package report

import (
	"fmt"
	"strconv"

	"backtest_bot/internal/models"

	"github.com/jedib0t/go-pretty/v6/table"
)

// TradeColumns — фиксированный порядок колонок таблицы сделок. Опциональные
// RSI-колонки присутствуют всегда, даже если стратегия их не присылает.
var TradeColumns = []string{
	"symbol", "trade_type", "entry_time", "entry_price",
	"entry_rsi", "exit_time", "exit_price", "exit_rsi", "profit_pct",
}

// ShapeTrades приводит сделки к единому набору колонок: nil RSI становится
// пустым плейсхолдером только здесь, на презентационной границе; profit_pct
// рендерится процентной строкой.
func ShapeTrades(trades []models.Trade) [][]string {
	rows := make([][]string, 0, len(trades))
	for _, t := range trades {
		rows = append(rows, []string{
			t.Symbol,
			t.TradeType,
			t.EntryTime,
			formatPrice(t.EntryPrice),
			formatOptionalRSI(t.EntryRSI),
			t.ExitTime,
			formatPrice(t.ExitPrice),
			formatOptionalRSI(t.ExitRSI),
			fmt.Sprintf("%.2f%%", t.ProfitPct),
		})
	}
	return rows
}

// RenderTradeTable — текстовая таблица для <pre>-блока в Telegram.
func RenderTradeTable(trades []models.Trade) string {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)

	header := table.Row{}
	for _, c := range TradeColumns {
		header = append(header, c)
	}
	w.AppendHeader(header)

	for _, shaped := range ShapeTrades(trades) {
		row := table.Row{}
		for _, cell := range shaped {
			row = append(row, cell)
		}
		w.AppendRow(row)
	}
	return w.Render()
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptionalRSI(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.2f", *v)
}
