package ports

import (
	"context"

	"github.com/bnema/linkdrop-bot/internal/domain"
)

// ChatGateway is the chat platform as seen by the moderation core. Every
// call is a single attempt; callers decide how to surface failures.
type ChatGateway interface {
	Restrict(ctx context.Context, chatID domain.ChatID, userID domain.UserID, perms domain.Permissions) error
	Ban(ctx context.Context, chatID domain.ChatID, userID domain.UserID) error
	Unban(ctx context.Context, chatID domain.ChatID, userID domain.UserID) error
	SetChatPermissions(ctx context.Context, chatID domain.ChatID, perms domain.Permissions) error
	ResolveDisplayName(ctx context.Context, userID domain.UserID) (string, error)
	SendMessage(ctx context.Context, chatID domain.ChatID, text string) error
	SendHTML(ctx context.Context, chatID domain.ChatID, html string) error
}
