package telegram

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/sandevgo/lapakbot/internal/config"
	"github.com/sandevgo/lapakbot/internal/core"
	"github.com/sandevgo/lapakbot/internal/service/cascade"
	"github.com/sandevgo/lapakbot/internal/service/command"
	"github.com/sandevgo/lapakbot/pkg/log"
	tele "gopkg.in/telebot.v3"
)

const baseContextKey = "base_context"

// Bot serves customers over Telegram long polling. Unlike the admin
// command surface, the cascade is open to every sender.
type Bot struct {
	bot      *tele.Bot
	cfg      *config.TelegramConfig
	orch     *cascade.Orchestrator
	commands *command.Router
	out      *sender
	adminID  int64
}

func NewBot(
	ctx context.Context,
	cfg *config.TelegramConfig,
	orch *cascade.Orchestrator,
	commands *command.Router,
) (*Bot, error) {
	pref := tele.Settings{
		Token:  cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}

	b, err := tele.NewBot(pref)
	if err != nil {
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	bot := &Bot{
		bot:      b,
		cfg:      cfg,
		orch:     orch,
		commands: commands,
		out:      newSender(b),
		adminID:  cfg.AdminID,
	}

	// Use context from Signal with logger
	b.Use(func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			c.Set(baseContextKey, ctx)
			return next(c)
		}
	})

	b.Handle(tele.OnText, bot.handleMessage)

	return bot, nil
}

func (b *Bot) Start(ctx context.Context) error {
	log.FromCtx(ctx).Info().Msg("starting telegram bot")
	b.bot.Start()
	return nil
}

func (b *Bot) Shutdown(ctx context.Context) error {
	b.bot.Stop()
	return nil
}

func (b *Bot) handleMessage(c tele.Context) error {
	ctx := c.Get(baseContextKey).(context.Context)

	in := core.Inbound{
		SenderID:  strconv.FormatInt(c.Sender().ID, 10),
		ChatID:    strconv.FormatInt(c.Chat().ID, 10),
		Text:      c.Text(),
		Timestamp: time.Now(),
		IsAdmin:   c.Sender().ID == b.adminID,
	}

	_ = c.Notify(tele.Typing)

	// Admin slash commands and guided sessions bypass the cascade.
	if in.IsAdmin && b.commands != nil {
		if reply, handled := b.commands.Execute(ctx, in); handled {
			return b.out.sendMarkdown(ctx, c.Chat(), reply)
		}
	}

	return b.out.sendMarkdown(ctx, c.Chat(), b.orch.Handle(ctx, in))
}
