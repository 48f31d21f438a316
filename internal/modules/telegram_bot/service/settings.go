package service

import (
	"context"

	"backtest_bot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// sessionSnapshot — read-only срез сессии для рендера меню.
type sessionSnapshot struct {
	SelectedExchange string
	SelectedSymbol   string
	SymbolsLoaded    bool
}

func (t *Telegram) snapshot(chatID int64) sessionSnapshot {
	var snap sessionSnapshot
	t.sessions.with(chatID, func(s *models.Session) {
		snap = sessionSnapshot{
			SelectedExchange: s.SelectedExchange,
			SelectedSymbol:   s.SelectedSymbol,
			SymbolsLoaded:    len(s.Symbols) > 0,
		}
	})
	return snap
}

func (t *Telegram) handleSettingsMenu(ctx context.Context, chatID int64) {
	user, err := t.getUser(ctx, chatID)
	if err != nil {
		_, _ = t.Send(ctx, chatID, "Settings not found, try /start")
		return
	}

	snap := t.snapshot(chatID)
	bs := &user.Settings

	kb := tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🌐 Exchange", "pickex::"),
			tgbotapi.NewInlineKeyboardButtonData("🔣 Symbol", "picksym::"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("👤 Username", "set::username"),
			tgbotapi.NewInlineKeyboardButtonData("🧠 Strategy", "pickstrat::"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📊 RSI Period", "set::rsi_period"),
			tgbotapi.NewInlineKeyboardButtonData("📏 MA Period", "set::ma_period"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📉 Buy Threshold", "set::buy_threshold"),
			tgbotapi.NewInlineKeyboardButtonData("📈 Sell Threshold", "set::sell_threshold"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Long", "dir::long"),
			tgbotapi.NewInlineKeyboardButtonData("Short", "dir::short"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Custom RSI: "+onOff(bs.UseScratchRSI), "tgl::scratch"),
			tgbotapi.NewInlineKeyboardButtonData("CSV data: "+onOff(bs.UseCSV), "tgl::csv"),
		),
	)

	msg := tgbotapi.NewMessage(chatID, formatSettings(snap, bs))
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = kb

	_, _ = t.SendMessage(ctx, msg)
}

func (t *Telegram) handleSelectDirection(ctx context.Context, chatID int64, arg string) {
	user, err := t.getUser(ctx, chatID)
	if err != nil {
		_, _ = t.Send(ctx, chatID, "Settings not found, try /start")
		return
	}

	switch models.TradeDirection(arg) {
	case models.DirectionLong, models.DirectionShort:
	default:
		return
	}

	user.Settings.TradeType = models.TradeDirection(arg)
	if err := t.repo.Update(ctx, user); err != nil {
		_, _ = t.Send(ctx, chatID, "⚠️ Couldn't save: "+err.Error())
		return
	}
	t.handleSettingsMenu(ctx, chatID)
}
