package service

import "context"

// handleStrategiesHelp — справка по стратегиям (их математика живёт на
// бэкенде, тут только описание для юзера).
func (t *Telegram) handleStrategiesHelp(ctx context.Context, chatID int64) {
	_, _ = t.Send(ctx, chatID,
		"📖 Strategy Overview\n\n"+
			"Original strategies:\n"+
			"• RSI — buy when RSI crosses above the buy threshold; sell when it crosses below the sell threshold\n"+
			"• MA — enter on price crossover above (long) or below (short) the MA\n"+
			"• RAMSEY — combined RSI and MA signals\n\n"+
			"Advanced strategies:\n"+
			"• KAGE — rolling volatility for regime change\n"+
			"• KITSUNE — pattern matching via price changes\n"+
			"• RYU — pseudo fractal/chaos metric\n"+
			"• SAKURA — median pivot with regression\n"+
			"• HIKARI — PCA on returns for momentum\n"+
			"• TENSHI — local extrema detection\n"+
			"• ZEN — Bollinger Bands with normalized phase and momentum")
}
