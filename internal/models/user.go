package models

import (
	"backtest_bot/internal/modules/config"
)

// UserSettings хранит параметры бэктеста пользователя (переживают сессию,
// в отличие от Session).
type UserSettings struct {
	ID int64 `json:"id"`

	UserID int64 `json:"user_id"` // Telegram chat/user ID

	Name     string           `json:"name"`
	Step     string           `json:"step"`
	Settings BacktestSettings `json:"settings"`
}

// Диапазоны числовых параметров. Клампит слой виджетов (степперы и ввод
// текстом), builder им доверяет и повторно не валидирует.
const (
	RSIPeriodMin = 2
	RSIPeriodMax = 50

	ThresholdMin = 1.0
	ThresholdMax = 99.0

	MAPeriodMin = 2
	MAPeriodMax = 100
)

// DefaultSymbol подставляется в запрос, когда символы ещё не зафетчены:
// бэктест должен быть доступен и без явного выбора пары.
const DefaultSymbol = "BTC/USDT"

type BacktestSettings struct {
	Username string `json:"username"`

	RSIPeriod     int     `json:"rsi_period"`
	BuyThreshold  float64 `json:"buy_threshold"`
	SellThreshold float64 `json:"sell_threshold"`

	MAPeriod int `json:"ma_period"`

	TradeType TradeDirection `json:"trade_type"`
	Strategy  StrategyType   `json:"strategy"`

	UseScratchRSI bool `json:"use_scratch_rsi"`
	UseCSV        bool `json:"use_csv"`
}

func NewBacktestSettingsFromDefaults(userID int64, cfg *config.Config) *UserSettings {
	return &UserSettings{
		UserID: userID,
		Settings: BacktestSettings{
			Username:      cfg.DefaultUsername,
			RSIPeriod:     cfg.DefaultRSIPeriod,
			BuyThreshold:  cfg.DefaultBuyThreshold,
			SellThreshold: cfg.DefaultSellThreshold,
			MAPeriod:      cfg.DefaultMAPeriod,
			TradeType:     TradeDirection(cfg.DefaultTradeType),
			Strategy:      StrategyType(cfg.DefaultStrategy),
		},
	}
}

// BuildBacktestConfig собирает payload для POST /trade из текущего снапшота
// сессии и настроек. Чистая функция: ничего не мутирует и не ходит в сеть.
func BuildBacktestConfig(sess *Session, user *UserSettings) BacktestConfig {
	symbol := sess.SelectedSymbol
	if symbol == "" {
		symbol = DefaultSymbol
	}
	return BacktestConfig{
		Exchange:      sess.SelectedExchange,
		Symbol:        symbol,
		Username:      user.Settings.Username,
		RSIPeriod:     user.Settings.RSIPeriod,
		BuyThreshold:  user.Settings.BuyThreshold,
		SellThreshold: user.Settings.SellThreshold,
		TradeType:     string(user.Settings.TradeType),
		Strategy:      string(user.Settings.Strategy),
		MAPeriod:      user.Settings.MAPeriod,
		UseScratchRSI: user.Settings.UseScratchRSI,
		UseCSV:        user.Settings.UseCSV,
	}
}
