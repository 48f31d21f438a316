package report

import (
	"fmt"
	"sort"
	"strconv"

	"backtest_bot/internal/models"

	"github.com/jedib0t/go-pretty/v6/table"
)

// HistoryColumns собирает набор колонок исторических данных: что бэкенд
// прислал, то и показываем. Время-подобные колонки ставим вперёд, остальные
// по алфавиту, чтобы порядок был стабильным от рендера к рендеру.
func HistoryColumns(points []models.HistoricalPoint) []string {
	seen := map[string]struct{}{}
	for _, p := range points {
		for k := range p {
			seen[k] = struct{}{}
		}
	}

	var timeCols, rest []string
	for k := range seen {
		switch k {
		case "time", "timestamp", "datetime", "date":
			timeCols = append(timeCols, k)
		default:
			rest = append(rest, k)
		}
	}
	sort.Strings(timeCols)
	sort.Strings(rest)
	return append(timeCols, rest...)
}

// RenderHistoryTable — текстовая таблица исторических строк. Пустой вход —
// пустая строка, состояние «данных нет» решает вызывающий.
func RenderHistoryTable(points []models.HistoricalPoint) string {
	if len(points) == 0 {
		return ""
	}
	cols := HistoryColumns(points)

	w := table.NewWriter()
	w.SetStyle(table.StyleLight)

	header := table.Row{}
	for _, c := range cols {
		header = append(header, c)
	}
	w.AppendHeader(header)

	for _, p := range points {
		row := table.Row{}
		for _, c := range cols {
			row = append(row, formatCell(p[c]))
		}
		w.AppendRow(row)
	}
	return w.Render()
}

func formatCell(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case string:
		return x
	default:
		return fmt.Sprintf("%v", x)
	}
}
