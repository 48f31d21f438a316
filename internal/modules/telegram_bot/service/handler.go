package service

import (
	"context"
	"strings"

	"backtest_bot/pkg/logger"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func (t *Telegram) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	// 1) Обычные сообщения
	if msg := update.Message; msg != nil {
		chatID := msg.Chat.ID

		if msg.IsCommand() {
			switch msg.Command() {
			case "start":
				if err := t.handleStart(ctx, chatID); err != nil {
					logger.Error("handleStart error: %v", err)
				}
			case "reset":
				t.handleReset(ctx, chatID)
			case "help":
				t.handleHelp(ctx, chatID)
			default:
			}
			return
		}

		t.handleTextMessage(ctx, msg)
		return
	}

	// 2) Inline-кнопки (CallbackQuery)
	if cb := update.CallbackQuery; cb != nil {
		if cb.Message == nil || cb.Message.Chat == nil {
			return
		}
		chatID := cb.Message.Chat.ID
		t.handleCallback(ctx, chatID, cb)
		return
	}

	// 3) Остальное (inline mode и т.п.) игнорируем
}

const (
	btnRunBacktest  = "🚀 Run Backtest"
	btnFetchSymbols = "🔣 Fetch Symbols"
	btnSettings     = "⚙️ Settings"
	btnLastResult   = "📊 Last Result"
	btnStrategies   = "📖 Strategies"
)

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnRunBacktest),
			tgbotapi.NewKeyboardButton(btnFetchSymbols),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnSettings),
			tgbotapi.NewKeyboardButton(btnLastResult),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnStrategies),
		),
	)
}

func (t *Telegram) handleStart(ctx context.Context, chatID int64) error {
	_, err := t.getUser(ctx, chatID)
	if err != nil {
		_, err = t.Send(ctx, chatID, "Settings not found, try /start again")
		return err
	}

	msgText := "📈 *Trading Strategy Backtester*\n\n" +
		"Backtest your strategies with live or CSV data across multiple exchanges.\n\n" +
		"1️⃣ Pick an exchange and fetch its symbols («" + btnFetchSymbols + "»).\n" +
		"2️⃣ Tune the parameters in «" + btnSettings + "».\n" +
		"3️⃣ Hit «" + btnRunBacktest + "»."

	msg := tgbotapi.NewMessage(chatID, msgText)
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = mainMenuKeyboard()

	if _, err = t.SendMessage(ctx, msg); err != nil {
		return err
	}

	// Стартовая загрузка бирж — один раз на сессию.
	t.ensureExchanges(ctx, chatID)
	return nil
}

func (t *Telegram) handleReset(ctx context.Context, chatID int64) {
	t.sessions.reset(chatID)
	t.clearAwait(chatID)
	_, _ = t.Send(ctx, chatID, "♻️ Session discarded. /start begins a fresh one.")
}

func (t *Telegram) handleHelp(ctx context.Context, chatID int64) {
	_, _ = t.Send(ctx, chatID,
		"Commands:\n"+
			"/start — main menu, loads the exchange list\n"+
			"/reset — drop the current session (exchanges, symbols, last result)\n"+
			"/help — this message")
}

func (t *Telegram) handleTextMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	// 1) Ожидаемый ввод значения настройки
	if key, ok := t.peekAwait(chatID); ok {
		t.handleAwaitValue(ctx, chatID, text, key)
		return
	}

	// 2) Кнопки главного меню
	switch text {
	case btnRunBacktest:
		t.handleRunBacktest(ctx, chatID)
		return
	case btnFetchSymbols:
		t.handleFetchSymbols(ctx, chatID)
		return
	case btnSettings:
		t.handleSettingsMenu(ctx, chatID)
		return
	case btnLastResult:
		t.handleLastResult(ctx, chatID)
		return
	case btnStrategies:
		t.handleStrategiesHelp(ctx, chatID)
		return
	}

	// прочий текст игнорируем
}

func (t *Telegram) handleCallback(ctx context.Context, chatID int64, cb *tgbotapi.CallbackQuery) {
	// отвечаем ТГ, чтобы убрать "часики" на кнопке
	_, _ = t.bot.Request(tgbotapi.NewCallback(cb.ID, ""))

	data := cb.Data
	verb, arg := splitCallback(data)

	switch verb {
	case "ex":
		t.handleSelectExchange(ctx, chatID, arg)
	case "sym":
		t.handleSelectSymbol(ctx, chatID, arg)
	case "sympage":
		t.handleSymbolPage(ctx, chatID, cb.Message, arg)
	case "strat":
		t.handleSelectStrategy(ctx, chatID, arg)
	case "dir":
		t.handleSelectDirection(ctx, chatID, arg)
	case "set":
		t.askValue(ctx, chatID, arg)
	case "tgl":
		t.handleToggle(ctx, chatID, arg)
	case "hist":
		t.handleShowHistory(ctx, chatID)
	case "pickex":
		t.handleExchangePicker(ctx, chatID)
	case "picksym":
		t.handleSymbolPicker(ctx, chatID, 0)
	case "pickstrat":
		t.handleStrategyPicker(ctx, chatID)
	}
}

func splitCallback(data string) (verb, arg string) {
	for i := 0; i+1 < len(data); i++ {
		if data[i] == ':' && data[i+1] == ':' {
			return data[:i], data[i+2:]
		}
	}
	return data, ""
}
