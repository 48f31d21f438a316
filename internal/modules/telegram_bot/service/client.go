package service

import (
	"context"
	"fmt"

	"backtest_bot/internal/models"
	backtest "backtest_bot/internal/modules/backtest/service"
	"backtest_bot/internal/modules/config"

	tgbot "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// UserRepo — хранилище настроек юзера. PG когда задан DSN, иначе файл.
type UserRepo interface {
	Create(ctx context.Context, user *models.UserSettings) error
	Update(ctx context.Context, user *models.UserSettings) error
	Get(ctx context.Context, userID int64) (*models.UserSettings, error)
}

// Telegram — интерактивный фронт бэктестера: виджеты параметров, сабмит,
// вывод результатов. Оркестратор стейт-машины сессии живёт здесь.
type Telegram struct {
	bot      *tgbot.BotAPI
	cfg      *config.Config
	client   *backtest.Client
	repo     UserRepo
	sessions *sessionStore
	await    *awaitStore
}

func NewTelegram(cfg *config.Config, repo UserRepo, client *backtest.Client) (*Telegram, error) {
	b, err := tgbot.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, err
	}

	return &Telegram{
		bot:      b,
		cfg:      cfg,
		client:   client,
		repo:     repo,
		sessions: newSessionStore(),
		await:    newAwaitStore(),
	}, nil
}

func (t *Telegram) Send(ctx context.Context, chatID int64, msg string) (tgbot.Message, error) {
	return t.bot.Send(tgbot.NewMessage(chatID, msg))
}

func (t *Telegram) SendF(ctx context.Context, chatID int64, format string, args ...any) (tgbot.Message, error) {
	return t.Send(ctx, chatID, fmt.Sprintf(format, args...))
}

func (t *Telegram) SendMessage(_ context.Context, message tgbot.MessageConfig) (tgbot.Message, error) {
	return t.bot.Send(message)
}

// SendPre — моноширинный блок (таблицы сделок/истории).
func (t *Telegram) SendPre(ctx context.Context, chatID int64, body string) (tgbot.Message, error) {
	msg := tgbot.NewMessage(chatID, "```\n"+body+"\n```")
	msg.ParseMode = "MarkdownV2"
	return t.bot.Send(msg)
}

func (t *Telegram) editText(chatID int64, msgID int, text string) error {
	edit := tgbot.NewEditMessageText(chatID, msgID, text)
	_, err := t.bot.Request(edit)
	return err
}

// Start ...
func (t *Telegram) Start(ctx context.Context) error {
	u := tgbot.NewUpdate(0)
	u.Timeout = 30
	updates := t.bot.GetUpdatesChan(u)
	for update := range updates {
		t.handleUpdate(ctx, update)
	}
	return nil
}

func (t *Telegram) Stop() {}
