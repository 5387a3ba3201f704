package telegram

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/bnema/linkdrop-bot/internal/domain"
	"github.com/bnema/linkdrop-bot/internal/ports"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// DefaultChunkSize stays under Telegram's 4096 character message limit with
// room for formatting.
const DefaultChunkSize = 3900

// botClient is the subset of *tgbotapi.BotAPI the gateway calls.
type botClient interface {
	Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error)
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
	GetChat(config tgbotapi.ChatInfoConfig) (tgbotapi.Chat, error)
}

type Gateway struct {
	bot       botClient
	chunkSize int
}

var _ ports.ChatGateway = (*Gateway)(nil)

func NewGateway(bot botClient, chunkSize int) (*Gateway, error) {
	if bot == nil {
		return nil, errors.New("telegram bot client is nil")
	}
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	return &Gateway{bot: bot, chunkSize: chunkSize}, nil
}

func (g *Gateway) Restrict(ctx context.Context, chatID domain.ChatID, userID domain.UserID, perms domain.Permissions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := g.bot.Request(tgbotapi.RestrictChatMemberConfig{
		ChatMemberConfig: memberConfig(chatID, userID),
		Permissions:      toChatPermissions(perms),
	})
	if err != nil {
		return fmt.Errorf("telegram restrictChatMember: %w", err)
	}
	return nil
}

func (g *Gateway) Ban(ctx context.Context, chatID domain.ChatID, userID domain.UserID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := g.bot.Request(tgbotapi.BanChatMemberConfig{ChatMemberConfig: memberConfig(chatID, userID)})
	if err != nil {
		return fmt.Errorf("telegram banChatMember: %w", err)
	}
	return nil
}

// Unban only lifts an existing ban; it never kicks a current member.
func (g *Gateway) Unban(ctx context.Context, chatID domain.ChatID, userID domain.UserID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := g.bot.Request(tgbotapi.UnbanChatMemberConfig{
		ChatMemberConfig: memberConfig(chatID, userID),
		OnlyIfBanned:     true,
	})
	if err != nil {
		return fmt.Errorf("telegram unbanChatMember: %w", err)
	}
	return nil
}

func (g *Gateway) SetChatPermissions(ctx context.Context, chatID domain.ChatID, perms domain.Permissions) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := g.bot.Request(tgbotapi.SetChatPermissionsConfig{
		ChatConfig:  tgbotapi.ChatConfig{ChatID: int64(chatID)},
		Permissions: toChatPermissions(perms),
	})
	if err != nil {
		return fmt.Errorf("telegram setChatPermissions: %w", err)
	}
	return nil
}

// ResolveDisplayName prefers the @username and falls back to the first name.
func (g *Gateway) ResolveDisplayName(ctx context.Context, userID domain.UserID) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	chat, err := g.bot.GetChat(tgbotapi.ChatInfoConfig{ChatConfig: tgbotapi.ChatConfig{ChatID: int64(userID)}})
	if err != nil {
		return "", fmt.Errorf("telegram getChat %d: %w", userID, err)
	}
	if chat.UserName != "" {
		return chat.UserName, nil
	}
	return strings.TrimSpace(chat.FirstName + " " + chat.LastName), nil
}

func (g *Gateway) SendMessage(ctx context.Context, chatID domain.ChatID, text string) error {
	return g.send(ctx, chatID, text, "")
}

func (g *Gateway) SendHTML(ctx context.Context, chatID domain.ChatID, html string) error {
	return g.send(ctx, chatID, html, tgbotapi.ModeHTML)
}

func (g *Gateway) send(ctx context.Context, chatID domain.ChatID, text string, parseMode string) error {
	for i, chunk := range splitText(text, g.chunkSize) {
		if err := ctx.Err(); err != nil {
			return err
		}

		msg := tgbotapi.NewMessage(int64(chatID), chunk)
		msg.ParseMode = parseMode
		msg.DisableWebPagePreview = true
		if _, err := g.bot.Send(msg); err != nil {
			return fmt.Errorf("telegram sendMessage chunk %d: %w", i+1, err)
		}
	}
	return nil
}

func memberConfig(chatID domain.ChatID, userID domain.UserID) tgbotapi.ChatMemberConfig {
	return tgbotapi.ChatMemberConfig{ChatID: int64(chatID), UserID: int64(userID)}
}

func toChatPermissions(perms domain.Permissions) *tgbotapi.ChatPermissions {
	return &tgbotapi.ChatPermissions{
		CanSendMessages:       perms.SendMessages,
		CanSendMediaMessages:  perms.SendMedia,
		CanSendPolls:          perms.SendPolls,
		CanSendOtherMessages:  perms.SendOther,
		CanAddWebPagePreviews: perms.WebPagePreviews,
	}
}

// splitText cuts text into consecutive chunks of limit runes, ignoring line
// and word boundaries. Blank text yields no chunks.
func splitText(text string, limit int) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}
	if utf8.RuneCountInString(text) <= limit {
		return []string{text}
	}

	runes := []rune(text)
	chunks := make([]string, 0, (len(runes)+limit-1)/limit)
	for len(runes) > limit {
		chunks = append(chunks, string(runes[:limit]))
		runes = runes[limit:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}

	return chunks
}
