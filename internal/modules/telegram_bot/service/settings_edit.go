package service

import (
	"context"
	"strconv"
	"strings"

	"backtest_bot/internal/models"
)

// askValue — ввод числового/текстового параметра текстом. Диапазоны клампим
// здесь, на виджетном слое; builder им доверяет.
func (t *Telegram) askValue(ctx context.Context, chatID int64, key string) {
	t.setAwait(chatID, key)

	var hint string
	switch key {
	case "username":
		hint = "Enter *username*, e.g. `default_user`"
	case "rsi_period":
		hint = "Enter *RSI period* (2..50), e.g. `14`"
	case "buy_threshold":
		hint = "Enter *buy/cover threshold* (1..99), e.g. `30`"
	case "sell_threshold":
		hint = "Enter *sell/short threshold* (1..99), e.g. `70`"
	case "ma_period":
		hint = "Enter *MA period* (2..100), e.g. `20`"
	default:
		hint = "Enter a value"
	}

	_, _ = t.Send(ctx, chatID, "✍️ "+hint+"\n\nCancel: type `cancel`")
}

func (t *Telegram) handleAwaitValue(ctx context.Context, chatID int64, text, key string) {
	user, err := t.getUser(ctx, chatID)
	if err != nil {
		_, _ = t.Send(ctx, chatID, "Settings not found, try /start")
		return
	}

	text = strings.TrimSpace(text)
	if strings.EqualFold(text, "cancel") {
		t.clearAwait(chatID)
		t.handleSettingsMenu(ctx, chatID)
		return
	}
	text = strings.ReplaceAll(text, ",", ".")

	bs := &user.Settings

	switch key {
	case "username":
		if text == "" {
			_, _ = t.Send(ctx, chatID, "❗️Username can't be empty")
			return
		}
		bs.Username = text

	case "rsi_period":
		v, err := strconv.Atoi(text)
		if err != nil || v < models.RSIPeriodMin || v > models.RSIPeriodMax {
			_, _ = t.Send(ctx, chatID, "❗️Need an integer 2..50, e.g. `14`")
			return
		}
		bs.RSIPeriod = v

	case "buy_threshold":
		v, err := strconv.ParseFloat(text, 64)
		if err != nil || v < models.ThresholdMin || v > models.ThresholdMax {
			_, _ = t.Send(ctx, chatID, "❗️Need a number 1..99, e.g. `30`")
			return
		}
		bs.BuyThreshold = v

	case "sell_threshold":
		v, err := strconv.ParseFloat(text, 64)
		if err != nil || v < models.ThresholdMin || v > models.ThresholdMax {
			_, _ = t.Send(ctx, chatID, "❗️Need a number 1..99, e.g. `70`")
			return
		}
		bs.SellThreshold = v

	case "ma_period":
		v, err := strconv.Atoi(text)
		if err != nil || v < models.MAPeriodMin || v > models.MAPeriodMax {
			_, _ = t.Send(ctx, chatID, "❗️Need an integer 2..100, e.g. `20`")
			return
		}
		bs.MAPeriod = v

	default:
		t.clearAwait(chatID)
		return
	}

	t.clearAwait(chatID)

	if err := t.repo.Update(ctx, user); err != nil {
		_, _ = t.Send(ctx, chatID, "⚠️ Couldn't save: "+err.Error())
		return
	}
	t.handleSettingsMenu(ctx, chatID)
}
