// Telegram command handlers.
//
// The bot is a thin front door: every interaction funnels the user toward the
// single inline button that opens the TradeAnalyzer web application. Handlers
// never touch the database; all persistence happens through the web app and
// its API.
package bot

import (
	"context"

	tgbot "github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
)

const (
	welcomeText = "Привет! Нажми кнопку, чтобы открыть приложение:"
	helpText    = "Это бот TradeAnalyzer. Нажми кнопку ниже, чтобы открыть приложение и проанализировать сделку."
	openButton  = "Открыть сайт"
)

// HandlerDeps carries the dependencies injected into every handler.
type HandlerDeps struct {
	Logger    zerolog.Logger
	WebAppURL string
}

// webAppKeyboard builds the single-button inline keyboard opening the web
// application.
func webAppKeyboard(url string) *models.InlineKeyboardMarkup {
	return &models.InlineKeyboardMarkup{
		InlineKeyboard: [][]models.InlineKeyboardButton{
			{
				{Text: openButton, WebApp: &models.WebAppInfo{URL: url}},
			},
		},
	}
}

// NewStartHandler returns the /start handler.
func NewStartHandler(deps HandlerDeps) tgbot.HandlerFunc {
	return startHandler{deps}.Handle
}

type startHandler struct {
	deps HandlerDeps
}

func (h startHandler) Handle(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	log := h.deps.Logger.With().Str("handler", "start").Logger()

	if update.Message == nil || update.Message.From == nil {
		log.Warn().Int64("update_id", update.ID).Msg("update without message or sender")
		return
	}

	_, err := b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        welcomeText,
		ReplyMarkup: webAppKeyboard(h.deps.WebAppURL),
	})
	if err != nil {
		log.Error().Err(err).Int64("chat_id", update.Message.Chat.ID).Msg("send welcome failed")
		return
	}
	log.Info().Int64("chat_id", update.Message.Chat.ID).Int64("user_id", update.Message.From.ID).Msg("welcome sent")
}

// NewHelpHandler returns the /help handler.
func NewHelpHandler(deps HandlerDeps) tgbot.HandlerFunc {
	return helpHandler{deps}.Handle
}

type helpHandler struct {
	deps HandlerDeps
}

func (h helpHandler) Handle(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	log := h.deps.Logger.With().Str("handler", "help").Logger()

	if update.Message == nil {
		return
	}

	_, err := b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        helpText,
		ReplyMarkup: webAppKeyboard(h.deps.WebAppURL),
	})
	if err != nil {
		log.Error().Err(err).Int64("chat_id", update.Message.Chat.ID).Msg("send help failed")
	}
}

// NewDefaultHandler returns the fallback for any non-command text: the bot
// has no conversational features, so it re-offers the web app button.
func NewDefaultHandler(deps HandlerDeps) tgbot.HandlerFunc {
	return defaultHandler{deps}.Handle
}

type defaultHandler struct {
	deps HandlerDeps
}

func (h defaultHandler) Handle(ctx context.Context, b *tgbot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.From == nil {
		return
	}

	_, err := b.SendMessage(ctx, &tgbot.SendMessageParams{
		ChatID:      update.Message.Chat.ID,
		Text:        welcomeText,
		ReplyMarkup: webAppKeyboard(h.deps.WebAppURL),
	})
	if err != nil {
		h.deps.Logger.Error().Err(err).Int64("chat_id", update.Message.Chat.ID).Msg("send fallback failed")
	}
}
