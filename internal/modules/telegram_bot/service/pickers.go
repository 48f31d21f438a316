package service

import (
	"context"
	"strconv"

	"backtest_bot/internal/models"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// symbolsPerPage — 8 рядов по 3 кнопки; у бинанса пар тысячи, без страниц никак.
const symbolsPerPage = 24

func (t *Telegram) handleExchangePicker(ctx context.Context, chatID int64) {
	var exchanges []string
	var selected string
	t.sessions.with(chatID, func(s *models.Session) {
		exchanges = s.Exchanges
		selected = s.SelectedExchange
	})

	if len(exchanges) == 0 {
		_, _ = t.Send(ctx, chatID, "❗️ No exchanges loaded. /start fetches the list.")
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	row := []tgbotapi.InlineKeyboardButton{}
	for _, ex := range exchanges {
		label := ex
		if ex == selected {
			label = "✅ " + ex
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, "ex::"+ex))
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	msg := tgbotapi.NewMessage(chatID, "🌐 Select Exchange:")
	msg.ReplyMarkup = tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
	_, _ = t.SendMessage(ctx, msg)
}

func (t *Telegram) handleSelectExchange(ctx context.Context, chatID int64, exchange string) {
	var known, busy bool
	t.sessions.with(chatID, func(s *models.Session) {
		if s.InFlight() {
			busy = true
			return
		}
		for _, ex := range s.Exchanges {
			if ex == exchange {
				known = true
				break
			}
		}
		if known {
			s.SelectExchange(exchange)
		}
	})

	if busy {
		_, _ = t.Send(ctx, chatID, "⏳ Still busy with the previous call — hold on.")
		return
	}
	if !known {
		_, _ = t.Send(ctx, chatID, "❗️ Unknown exchange, pick one from the list.")
		return
	}
	_, _ = t.SendF(ctx, chatID, "✅ Exchange set to %s. «%s» loads its trading pairs.", exchange, btnFetchSymbols)
}

// handleSymbolPicker показывает страницу символов текущей биржи.
func (t *Telegram) handleSymbolPicker(ctx context.Context, chatID int64, page int) {
	text, kb, ok := t.symbolPage(chatID, page)
	if !ok {
		_, _ = t.Send(ctx, chatID, "Click «"+btnFetchSymbols+"» to load available symbols.")
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ReplyMarkup = kb
	_, _ = t.SendMessage(ctx, msg)
}

// handleSymbolPage листает пикер на месте (редактирует сообщение).
func (t *Telegram) handleSymbolPage(ctx context.Context, chatID int64, msg *tgbotapi.Message, arg string) {
	page, err := strconv.Atoi(arg)
	if err != nil || msg == nil {
		return
	}
	text, kb, ok := t.symbolPage(chatID, page)
	if !ok {
		return
	}
	edit := tgbotapi.NewEditMessageTextAndMarkup(chatID, msg.MessageID, text, kb)
	_, _ = t.bot.Request(edit)
}

func (t *Telegram) symbolPage(chatID int64, page int) (string, tgbotapi.InlineKeyboardMarkup, bool) {
	var symbols []string
	var selected, exchange string
	t.sessions.with(chatID, func(s *models.Session) {
		symbols = s.Symbols
		selected = s.SelectedSymbol
		exchange = s.SymbolExchange
	})
	if len(symbols) == 0 {
		return "", tgbotapi.InlineKeyboardMarkup{}, false
	}

	pages := (len(symbols) + symbolsPerPage - 1) / symbolsPerPage
	if page < 0 {
		page = 0
	}
	if page >= pages {
		page = pages - 1
	}
	start := page * symbolsPerPage
	end := start + symbolsPerPage
	if end > len(symbols) {
		end = len(symbols)
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	row := []tgbotapi.InlineKeyboardButton{}
	for _, sym := range symbols[start:end] {
		label := sym
		if sym == selected {
			label = "✅ " + sym
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, "sym::"+sym))
		if len(row) == 3 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	if pages > 1 {
		nav := []tgbotapi.InlineKeyboardButton{}
		if page > 0 {
			nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("⬅️", "sympage::"+strconv.Itoa(page-1)))
		}
		if page < pages-1 {
			nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("➡️", "sympage::"+strconv.Itoa(page+1)))
		}
		rows = append(rows, nav)
	}

	text := "🔣 Select Symbol on " + exchange + " (page " + strconv.Itoa(page+1) + "/" + strconv.Itoa(pages) + "):"
	return text, tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}, true
}

func (t *Telegram) handleSelectSymbol(ctx context.Context, chatID int64, symbol string) {
	var known bool
	t.sessions.with(chatID, func(s *models.Session) {
		for _, sym := range s.Symbols {
			if sym == symbol {
				known = true
				break
			}
		}
		if known {
			s.SelectedSymbol = symbol
		}
	})

	if !known {
		// символ из устаревшей клавиатуры после смены биржи
		_, _ = t.Send(ctx, chatID, "❗️ That symbol isn't in the current exchange's list. Fetch symbols again.")
		return
	}
	_, _ = t.SendF(ctx, chatID, "✅ Symbol set to %s.", symbol)
}

func (t *Telegram) handleStrategyPicker(ctx context.Context, chatID int64) {
	user, err := t.getUser(ctx, chatID)
	if err != nil {
		_, _ = t.Send(ctx, chatID, "Settings not found, try /start")
		return
	}

	var rows [][]tgbotapi.InlineKeyboardButton
	row := []tgbotapi.InlineKeyboardButton{}
	for _, st := range models.Strategies {
		label := string(st)
		if st == user.Settings.Strategy {
			label = "✅ " + label
		}
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(label, "strat::"+string(st)))
		if len(row) == 5 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	msg := tgbotapi.NewMessage(chatID, "🧠 Select Strategy:")
	msg.ReplyMarkup = tgbotapi.InlineKeyboardMarkup{InlineKeyboard: rows}
	_, _ = t.SendMessage(ctx, msg)
}

func (t *Telegram) handleSelectStrategy(ctx context.Context, chatID int64, arg string) {
	user, err := t.getUser(ctx, chatID)
	if err != nil {
		_, _ = t.Send(ctx, chatID, "Settings not found, try /start")
		return
	}

	var valid bool
	for _, st := range models.Strategies {
		if string(st) == arg {
			valid = true
			break
		}
	}
	if !valid {
		return
	}

	user.Settings.Strategy = models.StrategyType(arg)
	if err := t.repo.Update(ctx, user); err != nil {
		_, _ = t.Send(ctx, chatID, "⚠️ Couldn't save: "+err.Error())
		return
	}
	t.handleSettingsMenu(ctx, chatID)
}
