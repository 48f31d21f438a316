package report

import (
	"encoding/base64"
)

// DecodeChart декодирует base64 PNG графика. Пустое поле или битая строка —
// это явное состояние «графика нет», а не ошибка.
func DecodeChart(plot string) ([]byte, bool) {
	if plot == "" {
		return nil, false
	}
	png, err := base64.StdEncoding.DecodeString(plot)
	if err != nil || len(png) == 0 {
		return nil, false
	}
	return png, true
}
