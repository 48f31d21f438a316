package service

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"backtest_bot/internal/models"
	"backtest_bot/internal/modules/config"

	"github.com/bytedance/sonic"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
)

// Client — тонкая типизированная обёртка над тремя эндпоинтами бэкенда.
// Состояние сессии не трогает, это работа оркестратора.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(cfg *config.Config) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.Backend.BaseURL, "/"),
		// Таймаут намеренно не ставим: вызов ждёт до дефолтного таймаута
		// транспорта, отмены по нашей стороне нет.
		http: &http.Client{},
	}
}

type exchangesResponse struct {
	Exchanges []string `json:"exchanges"`
}

type symbolsResponse struct {
	Symbols []string `json:"symbols"`
}

// Exchanges — GET /exchanges. Любой не-200 или транспортный фейл — ErrExchangeFetch.
func (c *Client) Exchanges(ctx context.Context) ([]string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "backtest.Exchanges")
	defer span.Finish()

	body, err := c.get(ctx, c.baseURL+"/exchanges")
	if err != nil {
		ext.Error.Set(span, true)
		return nil, errors.Wrap(ErrExchangeFetch, err.Error())
	}

	var resp exchangesResponse
	if err := sonic.Unmarshal(body, &resp); err != nil {
		ext.Error.Set(span, true)
		return nil, errors.Wrap(ErrExchangeFetch, err.Error())
	}
	return resp.Exchanges, nil
}

// Symbols — GET /symbols?exchange=... Вызывающий гарантирует непустой exchange.
func (c *Client) Symbols(ctx context.Context, exchange string) ([]string, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "backtest.Symbols")
	span.SetTag("exchange", exchange)
	defer span.Finish()

	body, err := c.get(ctx, c.baseURL+"/symbols?exchange="+url.QueryEscape(exchange))
	if err != nil {
		ext.Error.Set(span, true)
		return nil, errors.Wrap(ErrSymbolFetch, err.Error())
	}

	var resp symbolsResponse
	if err := sonic.Unmarshal(body, &resp); err != nil {
		ext.Error.Set(span, true)
		return nil, errors.Wrap(ErrSymbolFetch, err.Error())
	}
	return resp.Symbols, nil
}

// Run — POST /trade с полным конфигом. Не-200 — *RequestError с сырым текстом
// ответа сервера, транспортный фейл — *ConnectionError. Ретраев нет, фейл
// терминален для этого сабмита.
func (c *Client) Run(ctx context.Context, cfg models.BacktestConfig) (*models.BacktestResult, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "backtest.Run")
	span.SetTag("exchange", cfg.Exchange)
	span.SetTag("symbol", cfg.Symbol)
	span.SetTag("strategy", cfg.Strategy)
	defer span.Finish()

	payload, err := sonic.Marshal(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "marshal backtest config")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/trade", bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "build /trade request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		ext.Error.Set(span, true)
		return nil, &ConnectionError{Err: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		ext.Error.Set(span, true)
		return nil, &ConnectionError{Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		ext.Error.Set(span, true)
		return nil, &RequestError{
			Status:  resp.StatusCode,
			Message: serverErrorText(body),
		}
	}

	var result models.BacktestResult
	if err := sonic.Unmarshal(body, &result); err != nil {
		ext.Error.Set(span, true)
		return nil, &RequestError{
			Status:  resp.StatusCode,
			Message: "malformed response: " + err.Error(),
		}
	}
	return &result, nil
}

func (c *Client) get(ctx context.Context, u string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("http %d: %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// serverErrorText вытаскивает человекочитаемый текст из тела ошибки:
// gin-овый {"error": "..."} либо сырой текст как есть.
func serverErrorText(body []byte) string {
	var e struct {
		Error string `json:"error"`
	}
	if err := sonic.Unmarshal(body, &e); err == nil && e.Error != "" {
		return e.Error
	}
	return string(body)
}
