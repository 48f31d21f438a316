package service

import (
	"context"
	"time"

	"backtest_bot/internal/models"
	backtest "backtest_bot/internal/modules/backtest/service"
	"backtest_bot/pkg/logger"

	"github.com/pkg/errors"
)

// ensureExchanges — стартовая загрузка списка бирж. Один раз на сессию;
// после фейла повторный /start — это и есть явное повторное действие юзера.
func (t *Telegram) ensureExchanges(ctx context.Context, chatID int64) {
	var start, loaded bool
	t.sessions.with(chatID, func(s *models.Session) {
		if s.InFlight() {
			return
		}
		if len(s.Exchanges) > 0 {
			loaded = true
			return
		}
		s.Phase = models.PhaseExchangesLoading
		start = true
	})

	if loaded {
		t.handleExchangePicker(ctx, chatID)
		return
	}
	if !start {
		return
	}

	_, _ = t.Send(ctx, chatID, "⏳ Fetching exchanges...")

	go func() {
		exchanges, err := t.client.Exchanges(ctx)
		t.sessions.with(chatID, func(s *models.Session) {
			s.SetExchanges(exchanges, err != nil)
		})
		if err != nil {
			logger.Error("fetch exchanges: %v", err)
			_, _ = t.Send(ctx, chatID, "❌ Error fetching exchanges. The bot can't run a backtest without an exchange — /start to retry.")
			return
		}
		t.handleExchangePicker(ctx, chatID)
	}()
}

// handleFetchSymbols — явное действие «зафетчить символы» под выбранную биржу.
// Прежний набор символов замещается целиком.
func (t *Telegram) handleFetchSymbols(ctx context.Context, chatID int64) {
	var exchange string
	var busy, ok bool
	t.sessions.with(chatID, func(s *models.Session) {
		if s.InFlight() {
			busy = true
			return
		}
		if !s.CanFetchSymbols() {
			return
		}
		exchange = s.SelectedExchange
		s.Phase = models.PhaseSymbolsLoading
		ok = true
	})

	if busy {
		_, _ = t.Send(ctx, chatID, "⏳ Still busy with the previous call — hold on.")
		return
	}
	if !ok {
		_, _ = t.Send(ctx, chatID, "❗️ Pick an exchange first (/start loads the list).")
		return
	}

	_, _ = t.SendF(ctx, chatID, "⏳ Fetching symbols for %s...", exchange)

	go func() {
		symbols, err := t.client.Symbols(ctx, exchange)
		if err != nil {
			t.sessions.with(chatID, func(s *models.Session) { s.FailSymbols() })
			logger.Error("fetch symbols for %s: %v", exchange, err)
			_, _ = t.Send(ctx, chatID, "❌ Error fetching symbols.")
			return
		}
		t.sessions.with(chatID, func(s *models.Session) {
			s.ReplaceSymbols(exchange, symbols)
		})
		_, _ = t.SendF(ctx, chatID, "✅ Symbols loaded for %s.", exchange)
		t.handleSymbolPicker(ctx, chatID, 0)
	}()
}

// handleRunBacktest — сабмит. Конфиг собирается из текущего снапшота сессии
// и настроек; повторный сабмит при висящем вызове игнорируется.
func (t *Telegram) handleRunBacktest(ctx context.Context, chatID int64) {
	user, err := t.getUser(ctx, chatID)
	if err != nil {
		_, _ = t.Send(ctx, chatID, "Settings not found, try /start")
		return
	}

	var cfg models.BacktestConfig
	var busy, ok bool
	t.sessions.with(chatID, func(s *models.Session) {
		if s.InFlight() {
			busy = true
			return
		}
		if !s.CanRunBacktest() {
			return
		}
		cfg = models.BuildBacktestConfig(s, user)
		s.Phase = models.PhaseBacktestRunning
		ok = true
	})

	if busy {
		_, _ = t.Send(ctx, chatID, "⏳ A call is already in flight — hold on.")
		return
	}
	if !ok {
		_, _ = t.Send(ctx, chatID, "❗️ Exchanges are not loaded yet. /start loads them; exchange selection is mandatory.")
		return
	}

	submittedAt := time.Now()
	_, _ = t.SendF(ctx, chatID, "⏳ Running %s backtest for %s on %s...", cfg.Strategy, cfg.Symbol, cfg.Exchange)

	go func() {
		result, err := t.client.Run(ctx, cfg)
		if err != nil {
			var hadResult bool
			t.sessions.with(chatID, func(s *models.Session) {
				s.FailBacktest()
				hadResult = s.LastResult != nil
			})
			t.reportRunError(ctx, chatID, err, hadResult)
			return
		}

		t.sessions.with(chatID, func(s *models.Session) {
			s.CompleteBacktest(cfg, result, submittedAt)
		})
		t.renderResult(ctx, chatID, cfg, result, submittedAt)
	}()
}

// reportRunError показывает фейл сабмита как нефатальное сообщение. Текст
// сервера отдаём дословно; предыдущий успешный результат остаётся на месте.
func (t *Telegram) reportRunError(ctx context.Context, chatID int64, err error, hadResult bool) {
	logger.Error("run backtest: %v", err)

	var reqErr *backtest.RequestError
	var connErr *backtest.ConnectionError
	switch {
	case errors.As(err, &reqErr):
		_, _ = t.SendF(ctx, chatID, "❌ Error: %s", reqErr.Message)
	case errors.As(err, &connErr):
		_, _ = t.SendF(ctx, chatID,
			"❌ Connection error: %v\nEnsure the backend server is running on %s", connErr.Err, t.cfg.Backend.BaseURL)
	default:
		_, _ = t.SendF(ctx, chatID, "❌ Error: %v", err)
	}

	if hadResult {
		_, _ = t.Send(ctx, chatID, "ℹ️ Your previous result is kept — «"+btnLastResult+"» shows it.")
	}
}
