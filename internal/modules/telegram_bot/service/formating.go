package service

import (
	"fmt"

	"backtest_bot/internal/models"
	"backtest_bot/internal/report"
)

func formatSummary(cfg models.BacktestConfig, view report.SummaryView) string {
	return fmt.Sprintf(
		"*Backtest Results for %s on %s*\n\n"+
			"Total Trades: `%d`\n"+
			"Winning Trades: `%d (%d%%)`\n"+
			"Total Return: `%s`\n"+
			"Avg. Trade: `%s`",
		cfg.Symbol, cfg.Exchange,
		view.TotalTrades,
		view.WinningTrades, view.WinRatePct,
		view.TotalReturn,
		view.AvgTrade,
	)
}

func formatSettings(sess sessionSnapshot, bs *models.BacktestSettings) string {
	symbol := sess.SelectedSymbol
	if symbol == "" {
		symbol = models.DefaultSymbol + " (default)"
	}
	return fmt.Sprintf(
		"*Current settings:*\n\n"+
			"Exchange: `%s`\n"+
			"Symbol: `%s`\n"+
			"Username: `%s`\n\n"+
			"RSI: period=%d buy=%s sell=%s\n"+
			"MA period: %d\n"+
			"Trade type: `%s`\n"+
			"Strategy: `%s`\n\n"+
			"Custom RSI: *%s*\n"+
			"CSV data: *%s*\n",
		orDash(sess.SelectedExchange),
		symbol,
		bs.Username,
		bs.RSIPeriod, f2(bs.BuyThreshold), f2(bs.SellThreshold),
		bs.MAPeriod,
		bs.TradeType,
		bs.Strategy,
		onOff(bs.UseScratchRSI),
		onOff(bs.UseCSV),
	)
}

func orDash(s string) string {
	if s == "" {
		return "—"
	}
	return s
}
