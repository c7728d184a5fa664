// Package telegram exposes the advisory chat panels as a Telegram bot.
package telegram

import (
	"context"
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// maxInFlight bounds how many chats are answered at once.
const maxInFlight = 32

type Bot struct {
	api     *tgbotapi.BotAPI
	replier *Replier
	log     *zap.Logger
}

func NewBot(token string, replier *Replier, log *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("failed to create bot: %w", err)
	}
	return NewBotWithAPI(api, replier, log), nil
}

func NewBotWithAPI(api *tgbotapi.BotAPI, replier *Replier, log *zap.Logger) *Bot {
	if log == nil {
		log = zap.NewNop()
	}
	return &Bot{api: api, replier: replier, log: log}
}

// Run long-polls for updates until ctx is done. Each message is answered in
// its own goroutine; Run returns after the in-flight replies finish.
func (b *Bot) Run(ctx context.Context) error {
	b.log.Info("telegram bot authorized", zap.String("account", b.api.Self.UserName))

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)
	defer b.api.StopReceivingUpdates()

	var g errgroup.Group
	g.SetLimit(maxInFlight)
	defer g.Wait()

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}
			if update.Message == nil {
				continue
			}
			m := update.Message
			g.Go(func() error {
				b.handle(ctx, m)
				return nil
			})
		}
	}
}

func (b *Bot) handle(ctx context.Context, m *tgbotapi.Message) {
	from := ""
	if m.From != nil {
		from = m.From.UserName
	}
	b.log.Debug("telegram message", zap.String("from", from), zap.Int64("chat", m.Chat.ID), zap.String("text", m.Text))

	text, err := b.replier.Reply(ctx, m)
	if err != nil {
		if ctx.Err() != nil {
			b.log.Debug("telegram reply abandoned on shutdown", zap.Int64("chat", m.Chat.ID))
			return
		}
		b.log.Warn("telegram reply failed", zap.Int64("chat", m.Chat.ID), zap.Error(err))
		text = "Sorry, something went wrong. Please try again later."
	}
	if _, err := b.api.Send(tgbotapi.NewMessage(m.Chat.ID, text)); err != nil {
		b.log.Warn("telegram send failed", zap.Int64("chat", m.Chat.ID), zap.Error(err))
	}
}
