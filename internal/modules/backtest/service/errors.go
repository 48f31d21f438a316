package service

import (
	"fmt"

	"github.com/pkg/errors"
)

// Таксономия ошибок клиента. Оркестратор ловит их на своей границе и
// показывает юзеру как нефатальное сообщение; ретраев нет нигде.
var (
	ErrExchangeFetch = errors.New("exchange fetch failed")
	ErrSymbolFetch   = errors.New("symbol fetch failed")
)

// RequestError — бэкенд ответил не-200 на /trade. Message — сырой текст тела
// ответа, его показываем юзеру как есть.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("backtest request rejected (http %d): %s", e.Status, e.Message)
}

// ConnectionError — бэкенд недоступен (транспортный фейл до получения ответа).
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return "backend unreachable: " + e.Err.Error()
}

func (e *ConnectionError) Unwrap() error { return e.Err }
