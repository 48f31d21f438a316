package models

import (
	"testing"

	"backtest_bot/internal/modules/config"

	"github.com/stretchr/testify/assert"
)

func testSettings() *UserSettings {
	return &UserSettings{
		UserID: 42,
		Settings: BacktestSettings{
			Username:      "trader",
			RSIPeriod:     14,
			BuyThreshold:  30,
			SellThreshold: 70,
			MAPeriod:      20,
			TradeType:     DirectionLong,
			Strategy:      StrategyRSI,
		},
	}
}

// Символы не зафетчены — в запрос уходит BTC/USDT по умолчанию.
func TestBuildBacktestConfig_DefaultSymbol(t *testing.T) {
	sess := NewSession(42)
	sess.SetExchanges([]string{"binance"}, false)

	cfg := BuildBacktestConfig(sess, testSettings())

	assert.Equal(t, "binance", cfg.Exchange)
	assert.Equal(t, DefaultSymbol, cfg.Symbol)
	assert.Equal(t, "trader", cfg.Username)
	assert.Equal(t, "long", cfg.TradeType)
	assert.Equal(t, "RSI", cfg.Strategy)
}

func TestBuildBacktestConfig_SelectedSymbol(t *testing.T) {
	sess := NewSession(42)
	sess.SetExchanges([]string{"binance"}, false)
	sess.ReplaceSymbols("binance", []string{"ETH/USDT", "BTC/USDT"})

	cfg := BuildBacktestConfig(sess, testSettings())
	assert.Equal(t, "ETH/USDT", cfg.Symbol)
}

// Все поля уходят в payload независимо от стратегии: бэкенд сам решает,
// какие параметры ему нужны.
func TestBuildBacktestConfig_AllFieldsForAnyStrategy(t *testing.T) {
	sess := NewSession(42)
	sess.SetExchanges([]string{"kraken"}, false)

	user := testSettings()
	user.Settings.Strategy = StrategyZen
	user.Settings.UseScratchRSI = true
	user.Settings.UseCSV = true
	user.Settings.RSIPeriod = 21
	user.Settings.MAPeriod = 50

	cfg := BuildBacktestConfig(sess, user)

	assert.Equal(t, "ZEN", cfg.Strategy)
	assert.Equal(t, 21, cfg.RSIPeriod)
	assert.Equal(t, 50, cfg.MAPeriod)
	assert.True(t, cfg.UseScratchRSI)
	assert.True(t, cfg.UseCSV)
	assert.InDelta(t, 30, cfg.BuyThreshold, 1e-9)
	assert.InDelta(t, 70, cfg.SellThreshold, 1e-9)
}

func TestNewBacktestSettingsFromDefaults(t *testing.T) {
	cfg := &config.Config{
		DefaultUsername:      "default_user",
		DefaultRSIPeriod:     14,
		DefaultBuyThreshold:  30,
		DefaultSellThreshold: 70,
		DefaultMAPeriod:      20,
		DefaultTradeType:     "long",
		DefaultStrategy:      "RSI",
	}

	user := NewBacktestSettingsFromDefaults(99, cfg)

	assert.Equal(t, int64(99), user.UserID)
	assert.Equal(t, "default_user", user.Settings.Username)
	assert.Equal(t, DirectionLong, user.Settings.TradeType)
	assert.Equal(t, StrategyRSI, user.Settings.Strategy)
	assert.False(t, user.Settings.UseScratchRSI)
	assert.False(t, user.Settings.UseCSV)
}

func TestStrategies_ClosedSet(t *testing.T) {
	assert.Equal(t, []StrategyType{
		StrategyRSI, StrategyMA, StrategyRamsey, StrategyKage, StrategyKitsune,
		StrategyRyu, StrategySakura, StrategyHikari, StrategyTenshi, StrategyZen,
	}, Strategies)
	assert.Len(t, Strategies, 10)
}
