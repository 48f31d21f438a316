package models

import "time"

// Phase — фаза оркестрации одной сессии. Переходы строго по порядку:
// символы нельзя тянуть без биржи, сабмит нельзя жать пока висит запрос.
type Phase string

const (
	PhaseIdle             Phase = "idle"
	PhaseExchangesLoading Phase = "exchanges_loading"
	PhaseExchangesReady   Phase = "exchanges_ready"
	PhaseSymbolsLoading   Phase = "symbols_loading"
	PhaseSymbolsReady     Phase = "symbols_ready"
	PhaseBacktestRunning  Phase = "backtest_running"
	PhaseBacktestComplete Phase = "backtest_complete"
	PhaseBacktestFailed   Phase = "backtest_failed"
)

// Session — состояние одного чата на время жизни сессии. Ничего не переживает
// рестарт процесса и /reset. Пишет сюда только telegram-сервис (оркестратор),
// остальные только читают.
type Session struct {
	ChatID int64

	Phase Phase
	// Exchanges загружаются один раз на сессию. ExchangesErr — флаг того,
	// что стартовая загрузка упала и список пуст.
	Exchanges    []string
	ExchangesErr bool

	SelectedExchange string

	// Symbols — список для выбранной биржи. При фетче под другую биржу
	// список замещается целиком, никаких мержей и кэшей между биржами.
	Symbols        []string
	SymbolExchange string // биржа, под которую загружен Symbols
	SelectedSymbol string

	// LastResult — последний УСПЕШНЫЙ результат. Упавший сабмит его не трогает.
	LastResult *BacktestResult
	// LastConfig/LastRunAt — снапшот сабмита, под которым получен LastResult
	// (заголовок результата и имя CSV-файла).
	LastConfig BacktestConfig
	LastRunAt  time.Time
}

func NewSession(chatID int64) *Session {
	return &Session{
		ChatID: chatID,
		Phase:  PhaseIdle,
	}
}

// InFlight — true пока по сессии висит сетевой вызов; в это время повторные
// действия игнорируются.
func (s *Session) InFlight() bool {
	switch s.Phase {
	case PhaseExchangesLoading, PhaseSymbolsLoading, PhaseBacktestRunning:
		return true
	}
	return false
}

// CanFetchSymbols — биржа выбрана и ничего не висит.
func (s *Session) CanFetchSymbols() bool {
	return !s.InFlight() && s.SelectedExchange != ""
}

// CanRunBacktest — биржи загружены и ничего не висит. Символ не обязателен:
// builder подставит BTC/USDT по умолчанию.
func (s *Session) CanRunBacktest() bool {
	return !s.InFlight() && len(s.Exchanges) > 0 && s.SelectedExchange != ""
}

// SetExchanges фиксирует результат стартовой загрузки бирж.
func (s *Session) SetExchanges(exchanges []string, fetchErr bool) {
	s.Exchanges = exchanges
	s.ExchangesErr = fetchErr
	if fetchErr || len(exchanges) == 0 {
		s.Phase = PhaseIdle
		return
	}
	s.Phase = PhaseExchangesReady
	if s.SelectedExchange == "" {
		s.SelectedExchange = exchanges[0]
	}
}

// ReplaceSymbols замещает набор символов (деструктивно) под биржу exchange.
func (s *Session) ReplaceSymbols(exchange string, symbols []string) {
	s.Symbols = symbols
	s.SymbolExchange = exchange
	s.SelectedSymbol = ""
	if len(symbols) > 0 {
		s.SelectedSymbol = symbols[0]
	}
	s.Phase = PhaseSymbolsReady
}

// SelectExchange меняет выбранную биржу. Символы прежней биржи больше не
// валидны — сбрасываем, пусть юзер зафетчит заново.
func (s *Session) SelectExchange(exchange string) {
	if exchange == s.SelectedExchange {
		return
	}
	s.SelectedExchange = exchange
	s.Symbols = nil
	s.SymbolExchange = ""
	s.SelectedSymbol = ""
	s.Phase = PhaseExchangesReady
}

// CompleteBacktest атомарно замещает последний успешный результат.
func (s *Session) CompleteBacktest(cfg BacktestConfig, res *BacktestResult, at time.Time) {
	s.LastResult = res
	s.LastConfig = cfg
	s.LastRunAt = at
	s.Phase = PhaseBacktestComplete
}

// FailSymbols откатывает фазу после упавшего фетча символов: прежний набор
// (если был) остаётся валидным.
func (s *Session) FailSymbols() {
	if len(s.Symbols) > 0 {
		s.Phase = PhaseSymbolsReady
		return
	}
	s.Phase = PhaseExchangesReady
}

// FailBacktest — фейл терминален для этого сабмита, но предыдущий успешный
// результат остаётся на месте.
func (s *Session) FailBacktest() {
	s.Phase = PhaseBacktestFailed
}
