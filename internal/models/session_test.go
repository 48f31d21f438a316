package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_SetExchanges(t *testing.T) {
	s := NewSession(1)
	require.Equal(t, PhaseIdle, s.Phase)

	s.Phase = PhaseExchangesLoading
	s.SetExchanges([]string{"binance", "kraken"}, false)

	assert.Equal(t, PhaseExchangesReady, s.Phase)
	assert.Equal(t, "binance", s.SelectedExchange)
	assert.False(t, s.ExchangesErr)
}

func TestSession_SetExchanges_FetchError(t *testing.T) {
	s := NewSession(1)
	s.Phase = PhaseExchangesLoading
	s.SetExchanges(nil, true)

	assert.Equal(t, PhaseIdle, s.Phase)
	assert.True(t, s.ExchangesErr)
	assert.False(t, s.CanRunBacktest())
	assert.False(t, s.CanFetchSymbols())
}

// Повторный фетч под другую биржу замещает список целиком, без мержа.
func TestSession_ReplaceSymbols_Destructive(t *testing.T) {
	s := NewSession(1)
	s.SetExchanges([]string{"binance", "kraken"}, false)

	s.ReplaceSymbols("binance", []string{"BTC/USDT", "ETH/USDT", "SOL/USDT"})
	assert.Equal(t, "BTC/USDT", s.SelectedSymbol)
	assert.Equal(t, "binance", s.SymbolExchange)

	s.SelectedSymbol = "SOL/USDT"
	s.ReplaceSymbols("kraken", []string{"XBT/USD", "ETH/USD"})

	assert.Equal(t, []string{"XBT/USD", "ETH/USD"}, s.Symbols)
	assert.Equal(t, "kraken", s.SymbolExchange)
	assert.Equal(t, "XBT/USD", s.SelectedSymbol)
	assert.NotContains(t, s.Symbols, "SOL/USDT")
}

func TestSession_SelectExchange_ResetsSymbols(t *testing.T) {
	s := NewSession(1)
	s.SetExchanges([]string{"binance", "kraken"}, false)
	s.ReplaceSymbols("binance", []string{"BTC/USDT", "ETH/USDT"})

	s.SelectExchange("kraken")

	assert.Equal(t, "kraken", s.SelectedExchange)
	assert.Empty(t, s.Symbols)
	assert.Empty(t, s.SelectedSymbol)
	assert.Equal(t, PhaseExchangesReady, s.Phase)
}

func TestSession_SelectExchange_SameExchangeKeepsSymbols(t *testing.T) {
	s := NewSession(1)
	s.SetExchanges([]string{"binance"}, false)
	s.ReplaceSymbols("binance", []string{"BTC/USDT"})

	s.SelectExchange("binance")

	assert.Equal(t, []string{"BTC/USDT"}, s.Symbols)
	assert.Equal(t, "BTC/USDT", s.SelectedSymbol)
}

func TestSession_InFlightGuards(t *testing.T) {
	s := NewSession(1)
	s.SetExchanges([]string{"binance"}, false)
	require.True(t, s.CanFetchSymbols())
	require.True(t, s.CanRunBacktest())

	for _, phase := range []Phase{PhaseExchangesLoading, PhaseSymbolsLoading, PhaseBacktestRunning} {
		s.Phase = phase
		assert.True(t, s.InFlight(), string(phase))
		assert.False(t, s.CanFetchSymbols(), string(phase))
		assert.False(t, s.CanRunBacktest(), string(phase))
	}
}

// Упавший сабмит не трогает последний успешный результат.
func TestSession_FailBacktest_KeepsLastResult(t *testing.T) {
	s := NewSession(1)
	s.SetExchanges([]string{"binance"}, false)

	cfg := BacktestConfig{Exchange: "binance", Symbol: "BTC/USDT"}
	res := &BacktestResult{Summary: BacktestSummary{TotalTrades: 5, WinningTrades: 3}}
	at := time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC)

	s.Phase = PhaseBacktestRunning
	s.CompleteBacktest(cfg, res, at)
	require.Equal(t, PhaseBacktestComplete, s.Phase)

	s.Phase = PhaseBacktestRunning
	s.FailBacktest()

	assert.Equal(t, PhaseBacktestFailed, s.Phase)
	assert.Same(t, res, s.LastResult)
	assert.Equal(t, cfg, s.LastConfig)
	assert.Equal(t, at, s.LastRunAt)

	// после фейла можно сабмитить снова
	assert.True(t, s.CanRunBacktest())
}

func TestSession_FailSymbols(t *testing.T) {
	s := NewSession(1)
	s.SetExchanges([]string{"binance"}, false)

	// символов ещё не было — откат к exchanges_ready
	s.Phase = PhaseSymbolsLoading
	s.FailSymbols()
	assert.Equal(t, PhaseExchangesReady, s.Phase)

	// прежний набор был — остаётся валидным
	s.ReplaceSymbols("binance", []string{"BTC/USDT"})
	s.Phase = PhaseSymbolsLoading
	s.FailSymbols()
	assert.Equal(t, PhaseSymbolsReady, s.Phase)
	assert.Equal(t, []string{"BTC/USDT"}, s.Symbols)
}
