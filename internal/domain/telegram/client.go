package telegram

import "gopkg.in/telebot.v3"

// Client defines an interface for sending messages via a Telegram bot.
// This helps in decoupling the application logic from the specific bot library.
type Client interface {
	SendMessage(recipientChatID int64, text string, options *telebot.SendOptions) error
	// ResolveChat verifies that the chat is reachable by the bot. Used by the
	// reminder cycle to detect a misconfigured channel before emitting.
	ResolveChat(chatID int64) error
}
