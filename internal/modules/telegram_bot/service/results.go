package service

import (
	"context"
	"time"

	"backtest_bot/internal/models"
	"backtest_bot/internal/report"
	"backtest_bot/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Больше строк в сообщение не влезает (лимит ТГ 4096 символов на сообщение),
// полный список сделок всё равно уезжает CSV-файлом.
const maxTradeRows = 15

const maxHistoryRows = 20

// renderResult выводит результат: четыре метрики, график, таблицу сделок,
// CSV-файл и кнопку исторических данных.
func (t *Telegram) renderResult(ctx context.Context, chatID int64, cfg models.BacktestConfig, res *models.BacktestResult, submittedAt time.Time) {
	view := report.NewSummaryView(res.Summary)

	header := tgbotapi.NewMessage(chatID, formatSummary(cfg, view))
	header.ParseMode = "Markdown"
	if len(res.Data) > 0 {
		header.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
			tgbotapi.NewInlineKeyboardRow(
				tgbotapi.NewInlineKeyboardButtonData("📜 Historical data", "hist::show"),
			),
		)
	}
	_, _ = t.SendMessage(ctx, header)

	// График — опционален; пустое поле это явное «нет графика», не ошибка.
	if png, ok := report.DecodeChart(res.Plot); ok {
		photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: "chart.png", Bytes: png})
		photo.Caption = "📊 Technical Analysis Plot"
		if _, err := t.bot.Send(photo); err != nil {
			logger.Error("send chart: %v", err)
		}
	} else {
		_, _ = t.Send(ctx, chatID, "No plot available.")
	}

	// Пустой список сделок — валидный успех, не ошибка.
	if len(res.Trades) == 0 {
		_, _ = t.Send(ctx, chatID, "No trades executed. Adjust parameters.")
		return
	}

	shown := res.Trades
	truncated := false
	if len(shown) > maxTradeRows {
		shown = shown[:maxTradeRows]
		truncated = true
	}
	if _, err := t.SendPre(ctx, chatID, report.RenderTradeTable(shown)); err != nil {
		logger.Error("send trade table: %v", err)
	}
	if truncated {
		_, _ = t.SendF(ctx, chatID, "…%d more trades in the CSV below.", len(res.Trades)-maxTradeRows)
	}

	t.sendTradesCSV(ctx, chatID, cfg.Symbol, res.Trades, submittedAt)
}

func (t *Telegram) sendTradesCSV(ctx context.Context, chatID int64, symbol string, trades []models.Trade, submittedAt time.Time) {
	data, err := report.TradesCSV(trades)
	if err != nil {
		logger.Error("trades csv: %v", err)
		_, _ = t.Send(ctx, chatID, "⚠️ Couldn't build the CSV export.")
		return
	}
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  report.CSVFileName(symbol, submittedAt),
		Bytes: data,
	})
	doc.Caption = "Trade Data (CSV)"
	if _, err := t.bot.Send(doc); err != nil {
		logger.Error("send csv: %v", err)
	}
}

// handleLastResult перерисовывает последний успешный результат сессии.
func (t *Telegram) handleLastResult(ctx context.Context, chatID int64) {
	var res *models.BacktestResult
	var cfg models.BacktestConfig
	var at time.Time
	t.sessions.with(chatID, func(s *models.Session) {
		res = s.LastResult
		cfg = s.LastConfig
		at = s.LastRunAt
	})
	if res == nil {
		_, _ = t.Send(ctx, chatID, "No backtest result in this session yet. Configure parameters and hit «"+btnRunBacktest+"».")
		return
	}
	t.renderResult(ctx, chatID, cfg, res, at)
}

// handleShowHistory — раскрытие «Historical Price and RSI Data» по кнопке.
func (t *Telegram) handleShowHistory(ctx context.Context, chatID int64) {
	var points []models.HistoricalPoint
	t.sessions.with(chatID, func(s *models.Session) {
		if s.LastResult != nil {
			points = s.LastResult.Data
		}
	})
	if len(points) == 0 {
		_, _ = t.Send(ctx, chatID, "No historical data available.")
		return
	}

	shown := points
	truncated := false
	if len(shown) > maxHistoryRows {
		shown = shown[:maxHistoryRows]
		truncated = true
	}
	if _, err := t.SendPre(ctx, chatID, report.RenderHistoryTable(shown)); err != nil {
		logger.Error("send history table: %v", err)
	}
	if truncated {
		_, _ = t.SendF(ctx, chatID, "…showing first %d of %d rows.", maxHistoryRows, len(points))
	}
}
