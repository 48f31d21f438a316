package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"backtest_bot/internal/models"
	"backtest_bot/internal/modules/config"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *Client {
	cfg := &config.Config{}
	cfg.Backend.BaseURL = baseURL
	return NewClient(cfg)
}

func TestClient_Exchanges(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/exchanges", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"exchanges":["binance","kraken"]}`))
	}))
	defer srv.Close()

	exchanges, err := newTestClient(srv.URL).Exchanges(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"binance", "kraken"}, exchanges)
}

func TestClient_Exchanges_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Exchanges(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrExchangeFetch))
}

func TestClient_Symbols(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/symbols", r.URL.Path)
		require.Equal(t, "binance", r.URL.Query().Get("exchange"))
		_, _ = w.Write([]byte(`{"symbols":["BTC/USDT","ETH/USDT"]}`))
	}))
	defer srv.Close()

	symbols, err := newTestClient(srv.URL).Symbols(context.Background(), "binance")
	require.NoError(t, err)
	assert.Equal(t, []string{"BTC/USDT", "ETH/USDT"}, symbols)
}

func TestClient_Symbols_Unreachable(t *testing.T) {
	_, err := newTestClient("http://127.0.0.1:1").Symbols(context.Background(), "binance")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSymbolFetch))
}

func TestClient_Run_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/trade", r.URL.Path)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{
			"trades":[{"symbol":"BTC/USDT","trade_type":"long","entry_time":"t1","entry_price":100,"entry_rsi":25.5,"exit_time":"t2","exit_price":110,"exit_rsi":72.1,"profit_pct":10}],
			"data":[{"timestamp":"t1","close":100}],
			"plot":"",
			"summary":{"total_trades":1,"winning_trades":1,"total_profit_pct":10,"avg_profit_per_trade":10}
		}`))
	}))
	defer srv.Close()

	res, err := newTestClient(srv.URL).Run(context.Background(), models.BacktestConfig{
		Exchange: "binance",
		Symbol:   "BTC/USDT",
		Strategy: "RSI",
	})
	require.NoError(t, err)
	require.Len(t, res.Trades, 1)
	require.NotNil(t, res.Trades[0].EntryRSI)
	assert.InDelta(t, 25.5, *res.Trades[0].EntryRSI, 1e-9)
	assert.Equal(t, 1, res.Summary.TotalTrades)
	assert.Len(t, res.Data, 1)
	assert.Empty(t, res.Plot)
}

// Ноль сделок — это успешный ответ, а не ошибка.
func TestClient_Run_NoTrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"trades":[],"data":[],"plot":"","summary":{"total_trades":0,"winning_trades":0,"total_profit_pct":0,"avg_profit_per_trade":0}}`))
	}))
	defer srv.Close()

	res, err := newTestClient(srv.URL).Run(context.Background(), models.BacktestConfig{})
	require.NoError(t, err)
	assert.Empty(t, res.Trades)
	assert.Equal(t, 0, res.Summary.TotalTrades)
}

// Текст ошибки сервера показывается юзеру как есть.
func TestClient_Run_ServerErrorTextVerbatim(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"strategy error: invalid period"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Run(context.Background(), models.BacktestConfig{})
	require.Error(t, err)

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusInternalServerError, reqErr.Status)
	assert.Equal(t, "strategy error: invalid period", reqErr.Message)
}

func TestClient_Run_RawBodyWhenNotJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream exploded"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Run(context.Background(), models.BacktestConfig{})
	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, "upstream exploded", reqErr.Message)
}

func TestClient_Run_Unreachable(t *testing.T) {
	_, err := newTestClient("http://127.0.0.1:1").Run(context.Background(), models.BacktestConfig{})
	require.Error(t, err)

	var connErr *ConnectionError
	assert.True(t, errors.As(err, &connErr))
}
