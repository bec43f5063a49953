// Package bot implements the Telegram front door for TradeAnalyzer: a
// single-purpose bot that hands users the inline button opening the web
// application. Handler registration and lifecycle management live here; the
// command handlers themselves are in handlers.go.
package bot

import (
	"context"
	"errors"
	"fmt"

	tgbot "github.com/go-telegram/bot"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// Bot owns the Telegram client and its lifecycle.
type Bot struct {
	logger zerolog.Logger
	tg     *tgbot.Bot
}

// New creates the Telegram client, wires the default fallback handler, and
// registers the command table. The token must be non-empty; there is no
// default credential.
func New(token, webAppURL string, logger zerolog.Logger, opts ...tgbot.Option) (*Bot, error) {
	if token == "" {
		return nil, errors.New("bot token cannot be empty")
	}

	deps := HandlerDeps{Logger: logger, WebAppURL: webAppURL}

	opts = append([]tgbot.Option{
		tgbot.WithDefaultHandler(NewDefaultHandler(deps)),
	}, opts...)

	tg, err := tgbot.New(token, opts...)
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	RegisterHandlers(tg, RegisterAllCommands(deps))

	return &Bot{logger: logger, tg: tg}, nil
}

// Run starts long polling and blocks until ctx is cancelled or the listener
// stops on its own.
func (b *Bot) Run(ctx context.Context) error {
	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		b.logger.Info().Msg("telegram listener starting")
		b.tg.Start(gCtx)
		if gCtx.Err() == nil {
			return errors.New("telegram listener stopped unexpectedly")
		}
		b.logger.Info().Msg("telegram listener stopped")
		return nil
	})

	err := g.Wait()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
