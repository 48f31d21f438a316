package models

// StrategyType — вариант стратегии на бэкенде. Закрытый набор: бэкенд ничего
// другого не знает, любое левое значение — баг вызывающего кода.
type StrategyType string

const (
	StrategyRSI     StrategyType = "RSI"
	StrategyMA      StrategyType = "MA"
	StrategyRamsey  StrategyType = "RAMSEY"
	StrategyKage    StrategyType = "KAGE"
	StrategyKitsune StrategyType = "KITSUNE"
	StrategyRyu     StrategyType = "RYU"
	StrategySakura  StrategyType = "SAKURA"
	StrategyHikari  StrategyType = "HIKARI"
	StrategyTenshi  StrategyType = "TENSHI"
	StrategyZen     StrategyType = "ZEN"
)

// Strategies — порядок для пикера в меню.
var Strategies = []StrategyType{
	StrategyRSI, StrategyMA, StrategyRamsey, StrategyKage, StrategyKitsune,
	StrategyRyu, StrategySakura, StrategyHikari, StrategyTenshi, StrategyZen,
}

// TradeDirection — long/short, как у бэкенда в поле trade_type.
type TradeDirection string

const (
	DirectionLong  TradeDirection = "long"
	DirectionShort TradeDirection = "short"
)
