// Package main provides the Telegram bot entry point for TradeAnalyzer.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/bot"
	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/config"
	"github.com/moscowfactory-tech/tradeanalyzer-backend/internal/sysutil"
)

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	if cfg.Bot.Token == "" {
		log.Fatal().Msg("BOT_TOKEN is required")
	}

	b, err := bot.New(cfg.Bot.Token, cfg.Bot.WebAppURL, log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("bot init failed")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info().Str("webapp_url", cfg.Bot.WebAppURL).Msg("bot starting")
	if err := b.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("bot stopped with error")
	}
	log.Info().Msg("bot stopped")
}
