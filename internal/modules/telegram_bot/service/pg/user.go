package pg

import (
	"context"
	dbsql "database/sql"
	"fmt"

	"backtest_bot/internal/models"
	"backtest_bot/internal/modules/telegram_bot/service/pg/user_settings"
	"backtest_bot/pkg/db"

	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

// User — PG-хранилище настроек юзера. Блоб настроек лежит jsonb-колонкой,
// схема — в user_settings/schema.sql.
type User struct {
	db   *db.PgTxManager
	user *user_settings.UserSettings
}

// NewUser instance
func NewUser(manager *db.PgTxManager) *User {
	return &User{
		db:   manager,
		user: user_settings.New(),
	}
}

// Create in db
func (u *User) Create(
	ctx context.Context,
	user *models.UserSettings,
) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("pg.Create: %w", err)
		}
	}()
	return u.db.RunMaster(ctx,
		func(ctxTx context.Context, tx pgx.Tx) error {
			return u.user.Insert(ctxTx, tx, user)
		})
}

// Update in db
func (u *User) Update(
	ctx context.Context,
	user *models.UserSettings,
) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("pg.Update: %w", err)
		}
	}()
	return u.db.RunMaster(ctx,
		func(ctxTx context.Context, tx pgx.Tx) error {
			return u.user.Update(ctxTx, tx, user)
		})
}

// Get in db
func (u *User) Get(
	ctx context.Context,
	userID int64,
) (user *models.UserSettings, err error) {
	err = u.db.RunMaster(ctx,
		func(ctxTx context.Context, tx pgx.Tx) error {
			user, err = u.user.GetById(ctxTx, tx, userID)
			return err
		})
	if err != nil {
		// наружу отдаём стандартный not found, сервис на него завязан
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, dbsql.ErrNoRows
		}
		return nil, fmt.Errorf("pg.Get: %w", err)
	}
	return user, nil
}

// Delete in db
func (u *User) Delete(
	ctx context.Context,
	user *models.UserSettings,
) (err error) {
	defer func() {
		if err != nil {
			err = fmt.Errorf("pg.Delete: %w", err)
		}
	}()
	return u.db.RunMaster(ctx,
		func(ctxTx context.Context, tx pgx.Tx) error {
			return u.user.Delete(ctxTx, tx, user)
		})
}
