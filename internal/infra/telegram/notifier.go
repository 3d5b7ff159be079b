package telegram

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gopkg.in/telebot.v3"
)

// Notifier delivers serving notifications to a Telegram chat. It is a
// send-only client; the bot never polls for updates. The icon and tag
// arguments of Present have no Telegram equivalent and are ignored by
// this transport.
type Notifier struct {
	bot    *telebot.Bot
	chatID int64
}

func NewNotifier(token string, chatID int64) (*Notifier, error) {
	bot, err := telebot.NewBot(telebot.Settings{Token: token})
	if err != nil {
		return nil, fmt.Errorf("failed to create Telegram bot: %w", err)
	}
	return &Notifier{bot: bot, chatID: chatID}, nil
}

func (n *Notifier) Present(title, body, icon, tag string) error {
	text := title + "\n\n" + body
	if _, err := n.bot.Send(telebot.ChatID(n.chatID), text); err != nil {
		return fmt.Errorf("failed to send Telegram notification: %w", err)
	}
	return nil
}

// LogNotifier is the fallback transport used when no Telegram token is
// configured: notifications are only written to the log.
type LogNotifier struct {
	logger *logrus.Entry
}

func NewLogNotifier(logger *logrus.Entry) *LogNotifier {
	return &LogNotifier{logger: logger}
}

func (n *LogNotifier) Present(title, body, icon, tag string) error {
	n.logger.WithFields(logrus.Fields{"title": title, "tag": tag}).Info("Notification (log transport)")
	return nil
}
