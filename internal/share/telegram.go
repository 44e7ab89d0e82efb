package share

import (
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/brainrotlabs/brainrot-api/internal/models"
)

// TelegramPublisher pushes saved posts to a Telegram channel.
type TelegramPublisher struct {
	bot       *tgbotapi.BotAPI
	channelID int64
	log       *slog.Logger
}

func NewTelegramPublisher(token string, channelID int64, log *slog.Logger) (*TelegramPublisher, error) {
	bot, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("init telegram bot: %w", err)
	}
	log.Info("telegram publisher ready", "bot", bot.Self.UserName, "channel_id", channelID)
	return &TelegramPublisher{bot: bot, channelID: channelID, log: log}, nil
}

// Publish posts the content to the channel, attributed to its satirical author.
func (p *TelegramPublisher) Publish(post *models.Post) error {
	text := post.Content
	if post.AuthorName != "" {
		text = fmt.Sprintf("%s\n\n— %s (%s)", post.Content, post.AuthorName, post.AuthorHandle)
	}
	msg := tgbotapi.NewMessage(p.channelID, text)
	msg.DisableWebPagePreview = true
	if _, err := p.bot.Send(msg); err != nil {
		return fmt.Errorf("send to channel: %w", err)
	}
	p.log.Info("post shared to telegram", "post_id", post.ID)
	return nil
}
