package backtest

import (
	"backtest_bot/internal/modules/backtest/service"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("backtest",
		fx.Provide(
			service.NewClient, // func(*config.Config) *service.Client
		),
	)
}
