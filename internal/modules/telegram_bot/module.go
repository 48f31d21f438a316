package telegram

import (
	"context"

	"backtest_bot/internal/modules/telegram_bot/service"
	"backtest_bot/internal/modules/telegram_bot/service/file"
	"backtest_bot/internal/modules/telegram_bot/service/pg"
	"backtest_bot/pkg/db"

	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("telegram",
		// 1. Репозиторий настроек: PG когда есть DSN, иначе файл
		fx.Provide(
			func(manager *db.PgTxManager) service.UserRepo {
				if manager == nil {
					return file.NewUser()
				}
				return pg.NewUser(manager)
			},
		),

		// 2. Сервис Telegram как *service.Telegram
		fx.Provide(
			service.NewTelegram, // func(*config.Config, service.UserRepo, *backtest.Client) (*service.Telegram, error)
		),

		// Запуск основного цикла через Lifecycle
		fx.Invoke(
			func(lc fx.Lifecycle, t *service.Telegram) {
				lc.Append(fx.Hook{
					OnStart: func(ctx context.Context) error {
						go func() { _ = t.Start(context.Background()) }()
						return nil
					},
					OnStop: func(ctx context.Context) error {
						t.Stop()
						return nil
					},
				})
			},
		),
	)
}
