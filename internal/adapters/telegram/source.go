package telegram

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"github.com/bnema/linkdrop-bot/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
)

const DefaultPollTimeout = 60

type EventHandler func(ctx context.Context, event domain.Event) error

type updateClient interface {
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()
}

// Source long-polls Telegram and hands each supported update to a handler,
// one at a time, in arrival order.
type Source struct {
	bot         updateClient
	pollTimeout int
	log         zerolog.Logger
}

func NewSource(bot updateClient, pollTimeout int, log zerolog.Logger) (*Source, error) {
	if bot == nil {
		return nil, errors.New("telegram bot client is nil")
	}
	if pollTimeout <= 0 {
		pollTimeout = DefaultPollTimeout
	}

	return &Source{
		bot:         bot,
		pollTimeout: pollTimeout,
		log:         log.With().Str("component", "telegram_source").Logger(),
	}, nil
}

// Run drops updates that queued up while the bot was offline, then polls
// until ctx is done. Handler errors are logged and do not stop the loop.
func (s *Source) Run(ctx context.Context, handle EventHandler) error {
	if _, err := s.bot.Request(tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true}); err != nil {
		return fmt.Errorf("drop pending updates: %w", err)
	}

	config := tgbotapi.NewUpdate(0)
	config.Timeout = s.pollTimeout
	updates := s.bot.GetUpdatesChan(config)
	defer s.bot.StopReceivingUpdates()

	s.log.Info().Int("poll_timeout", s.pollTimeout).Msg("polling for updates")

	for {
		select {
		case <-ctx.Done():
			return nil
		case update, ok := <-updates:
			if !ok {
				return nil
			}

			event, ok := toEvent(update)
			if !ok {
				continue
			}
			if err := handle(ctx, event); err != nil {
				s.log.Warn().Err(err).Int("update_id", update.UpdateID).Msg("handle update")
			}
		}
	}
}

// toEvent keeps group messages with a known author: commands, text and the
// media kinds that count as activity.
func toEvent(update tgbotapi.Update) (domain.Event, bool) {
	msg := update.Message
	if msg == nil || msg.From == nil || msg.Chat == nil {
		return nil, false
	}

	userID := domain.UserID(msg.From.ID)
	chatID := domain.ChatID(msg.Chat.ID)

	if msg.IsCommand() {
		cmd := domain.Command{
			Name:     strings.ToLower(msg.Command()),
			Args:     strings.Fields(msg.CommandArguments()),
			IssuerID: userID,
			ChatID:   chatID,
		}
		if reply := msg.ReplyToMessage; reply != nil && reply.From != nil {
			cmd.ReplyTo = &domain.UserRef{ID: domain.UserID(reply.From.ID), Mention: mentionHTML(reply.From)}
		}
		return cmd, true
	}

	switch {
	case msg.Text != "":
		return domain.TextMessage{UserID: userID, ChatID: chatID, Text: msg.Text}, true
	case len(msg.Photo) > 0:
		return domain.MediaMessage{UserID: userID, ChatID: chatID, Kind: domain.MediaPhoto}, true
	case msg.Video != nil:
		return domain.MediaMessage{UserID: userID, ChatID: chatID, Kind: domain.MediaVideo}, true
	case msg.Document != nil:
		return domain.MediaMessage{UserID: userID, ChatID: chatID, Kind: domain.MediaDocument}, true
	default:
		return nil, false
	}
}

func mentionHTML(user *tgbotapi.User) string {
	name := strings.TrimSpace(user.FirstName + " " + user.LastName)
	if name == "" {
		name = user.UserName
	}
	return fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`, user.ID, html.EscapeString(name))
}
