// Package report превращает сырой ответ бэктеста в готовые к показу куски:
// сводку, таблицу сделок, CSV-выгрузку, картинку графика и историю. Каждый
// шаг независим и не падает на отсутствующих опциональных полях.
package report

import (
	"fmt"

	"backtest_bot/internal/models"
)

// SummaryView — производная сводка для блока метрик.
type SummaryView struct {
	TotalTrades   int
	WinningTrades int
	WinRatePct    int    // floor(winning/max(total,1)*100)
	TotalReturn   string // "12.34%"
	AvgTrade      string // "1.23%"
}

func NewSummaryView(s models.BacktestSummary) SummaryView {
	total := s.TotalTrades
	if total < 1 {
		// защита от деления на ноль: при нуле сделок показываем 0%
		total = 1
	}
	return SummaryView{
		TotalTrades:   s.TotalTrades,
		WinningTrades: s.WinningTrades,
		WinRatePct:    s.WinningTrades * 100 / total,
		TotalReturn:   fmt.Sprintf("%.2f%%", s.TotalProfitPct),
		AvgTrade:      fmt.Sprintf("%.2f%%", s.AvgProfitPerTrade),
	}
}
