package report

import (
	"bytes"
	"encoding/csv"
	"strconv"
	"strings"
	"time"

	"backtest_bot/internal/models"

	"github.com/pkg/errors"
)

// TradesCSV сериализует НЕшейпленный список сделок: profit_pct и цены идут
// сырыми числами, не процентными строками, чтобы выгрузка парсилась обратно
// без потерь. Отсутствующий RSI — пустая ячейка.
func TradesCSV(trades []models.Trade) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(TradeColumns); err != nil {
		return nil, errors.Wrap(err, "write csv header")
	}
	for _, t := range trades {
		rec := []string{
			t.Symbol,
			t.TradeType,
			t.EntryTime,
			formatNumber(t.EntryPrice),
			formatOptionalNumber(t.EntryRSI),
			t.ExitTime,
			formatNumber(t.ExitPrice),
			formatOptionalNumber(t.ExitRSI),
			formatNumber(t.ProfitPct),
		}
		if err := w.Write(rec); err != nil {
			return nil, errors.Wrap(err, "write csv row")
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.Wrap(err, "flush csv")
	}
	return buf.Bytes(), nil
}

// CSVFileName — trades_{символ без слэша}_{YYYYMMDD}.csv, дата — момент
// сабмита, не время ответа бэкенда.
func CSVFileName(symbol string, submittedAt time.Time) string {
	return "trades_" + strings.ReplaceAll(symbol, "/", "") + "_" + submittedAt.Format("20060102") + ".csv"
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatOptionalNumber(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}
