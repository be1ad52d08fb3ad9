package internal

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// IAlertSink delivers operator notifications. Publish is fire-and-forget:
// a failed delivery is logged and never propagated to the caller.
type IAlertSink interface {
	Publish(message string)
}

type TelegramAlertSink struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	logger *zap.SugaredLogger
}

func NewTelegramAlertSink(token, chatID string, logger *zap.SugaredLogger) (*TelegramAlertSink, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	id, err := strconv.ParseInt(chatID, 10, 64)
	if err != nil {
		return nil, err
	}

	return &TelegramAlertSink{bot: bot, chatID: id, logger: logger}, nil
}

func (s TelegramAlertSink) Publish(message string) {
	_, err := s.bot.Send(tgbotapi.NewMessage(s.chatID, message))
	if err != nil {
		s.logger.Errorf("publish alert: %s", err)
	}
}

// LogAlertSink is the fallback when no chat credentials are configured.
type LogAlertSink struct {
	logger *zap.SugaredLogger
}

func NewLogAlertSink(logger *zap.SugaredLogger) *LogAlertSink {
	return &LogAlertSink{logger: logger}
}

func (s LogAlertSink) Publish(message string) {
	s.logger.Warnw("operator alert", "message", message)
}
