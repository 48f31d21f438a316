package main

import (
	"context"
	"log"

	"backtest_bot/internal/modules/backtest"
	"backtest_bot/internal/modules/config"
	"backtest_bot/internal/modules/health"
	"backtest_bot/internal/modules/postgres"
	telegram "backtest_bot/internal/modules/telegram_bot"
	"backtest_bot/pkg/logger"
	"backtest_bot/pkg/tracing"

	"go.uber.org/fx"
)

const serviceName = "backtest_bot"

func main() {
	if err := logger.Init(); err != nil {
		log.Fatal(err)
	}
	logger.SetServiceName(serviceName)
	tracing.SetServiceName(serviceName)

	app := fx.New(
		fx.Provide(
			func() context.Context {
				return context.Background()
			},
		),
		config.Module(),
		postgres.Module(),
		backtest.Module(),
		telegram.Module(),
		health.Module(),
		fx.Invoke(
			func(lc fx.Lifecycle, cfg *config.Config) {
				if cfg.Jaeger.Host == "" {
					return
				}
				_, closeTracer, err := tracing.InitTracer(tracing.Config{
					Host: cfg.Jaeger.Host,
					Port: cfg.Jaeger.Port,
				})
				if err != nil {
					logger.Error("init tracer: %v", err)
					return
				}
				lc.Append(fx.Hook{
					OnStop: func(ctx context.Context) error {
						closeTracer()
						return nil
					},
				})
			},
		),
	)
	if err := app.Start(context.Background()); err != nil {
		log.Fatal(err)
	}
	<-app.Done()
}
