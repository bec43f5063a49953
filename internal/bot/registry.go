package bot

import (
	tgbot "github.com/go-telegram/bot"
)

// RegisteredHandler represents a command handler with its routing metadata.
type RegisteredHandler struct {
	HandlerType tgbot.HandlerType
	Pattern     string
	Handler     tgbot.HandlerFunc
	MatchType   tgbot.MatchType
}

// RegisterAllCommands returns the routing table for every bot command.
func RegisterAllCommands(deps HandlerDeps) map[string]RegisteredHandler {
	handlers := make(map[string]RegisteredHandler)

	handlers["/start"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "start",
		Handler:     NewStartHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
	}
	handlers["/help"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "help",
		Handler:     NewHelpHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
	}
	// /app is a synonym for /start: it re-sends the web app button.
	handlers["/app"] = RegisteredHandler{
		HandlerType: tgbot.HandlerTypeMessageText,
		Pattern:     "app",
		Handler:     NewStartHandler(deps),
		MatchType:   tgbot.MatchTypeCommandStartOnly,
	}

	return handlers
}

// RegisterHandlers attaches the routing table to a bot instance.
func RegisterHandlers(b *tgbot.Bot, registered map[string]RegisteredHandler) {
	for _, rh := range registered {
		if rh.Handler == nil {
			continue
		}
		b.RegisterHandler(rh.HandlerType, rh.Pattern, rh.MatchType, rh.Handler)
	}
}
