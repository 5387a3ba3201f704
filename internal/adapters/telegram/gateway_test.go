package telegram

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/bnema/linkdrop-bot/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBot struct {
	mu       sync.Mutex
	requests []tgbotapi.Chattable
	sent     []tgbotapi.MessageConfig
	chats    map[int64]tgbotapi.Chat
	err      error
}

func (b *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.requests = append(b.requests, c)
	if b.err != nil {
		return nil, b.err
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return tgbotapi.Message{}, b.err
	}
	b.sent = append(b.sent, c.(tgbotapi.MessageConfig))
	return tgbotapi.Message{}, nil
}

func (b *fakeBot) GetChat(config tgbotapi.ChatInfoConfig) (tgbotapi.Chat, error) {
	if b.err != nil {
		return tgbotapi.Chat{}, b.err
	}
	chat, ok := b.chats[config.ChatID]
	if !ok {
		return tgbotapi.Chat{}, errors.New("Bad Request: chat not found")
	}
	return chat, nil
}

func newTestGateway(t *testing.T, bot *fakeBot, chunkSize int) *Gateway {
	t.Helper()
	gateway, err := NewGateway(bot, chunkSize)
	require.NoError(t, err)
	return gateway
}

func TestGatewayRestrictMapsPermissions(t *testing.T) {
	t.Parallel()

	bot := &fakeBot{}
	gateway := newTestGateway(t, bot, 0)

	require.NoError(t, gateway.Restrict(context.Background(), -100, 7, domain.NoPermissions()))
	require.NoError(t, gateway.Restrict(context.Background(), -100, 7, domain.FullPermissions()))

	require.Len(t, bot.requests, 2)
	muted := bot.requests[0].(tgbotapi.RestrictChatMemberConfig)
	assert.Equal(t, int64(-100), muted.ChatID)
	assert.Equal(t, int64(7), muted.UserID)
	assert.Equal(t, tgbotapi.ChatPermissions{}, *muted.Permissions)

	restored := bot.requests[1].(tgbotapi.RestrictChatMemberConfig)
	assert.Equal(t, tgbotapi.ChatPermissions{
		CanSendMessages:       true,
		CanSendMediaMessages:  true,
		CanSendPolls:          true,
		CanSendOtherMessages:  true,
		CanAddWebPagePreviews: true,
	}, *restored.Permissions)
}

func TestGatewayBanUnbanAndChatPermissions(t *testing.T) {
	t.Parallel()

	bot := &fakeBot{}
	gateway := newTestGateway(t, bot, 0)

	require.NoError(t, gateway.Ban(context.Background(), -100, 7))
	require.NoError(t, gateway.Unban(context.Background(), -100, 7))
	require.NoError(t, gateway.SetChatPermissions(context.Background(), -100, domain.TextOnlyPermissions()))

	require.Len(t, bot.requests, 3)
	ban := bot.requests[0].(tgbotapi.BanChatMemberConfig)
	assert.Equal(t, int64(7), ban.UserID)

	unban := bot.requests[1].(tgbotapi.UnbanChatMemberConfig)
	assert.True(t, unban.OnlyIfBanned)

	perms := bot.requests[2].(tgbotapi.SetChatPermissionsConfig)
	assert.Equal(t, int64(-100), perms.ChatID)
	assert.True(t, perms.Permissions.CanSendMessages)
	assert.False(t, perms.Permissions.CanSendMediaMessages)
}

func TestGatewayWrapsPlatformErrors(t *testing.T) {
	t.Parallel()

	cause := errors.New("Bad Request: not enough rights")
	gateway := newTestGateway(t, &fakeBot{err: cause}, 0)

	err := gateway.Restrict(context.Background(), -100, 7, domain.NoPermissions())
	require.ErrorIs(t, err, cause)
	assert.ErrorContains(t, err, "restrictChatMember")

	err = gateway.SendMessage(context.Background(), -100, "hello")
	require.ErrorIs(t, err, cause)
}

func TestGatewayResolveDisplayName(t *testing.T) {
	t.Parallel()

	bot := &fakeBot{chats: map[int64]tgbotapi.Chat{
		1: {ID: 1, UserName: "alice"},
		2: {ID: 2, FirstName: "Bob", LastName: "Stone"},
	}}
	gateway := newTestGateway(t, bot, 0)

	name, err := gateway.ResolveDisplayName(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "alice", name)

	name, err = gateway.ResolveDisplayName(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Bob Stone", name)

	_, err = gateway.ResolveDisplayName(context.Background(), 3)
	require.Error(t, err)
}

func TestGatewaySendSkipsEmptyText(t *testing.T) {
	t.Parallel()

	bot := &fakeBot{}
	gateway := newTestGateway(t, bot, 0)

	require.NoError(t, gateway.SendMessage(context.Background(), -100, ""))
	require.NoError(t, gateway.SendMessage(context.Background(), -100, " \n "))
	assert.Empty(t, bot.sent)
}

func TestGatewaySendHTMLSetsParseMode(t *testing.T) {
	t.Parallel()

	bot := &fakeBot{}
	gateway := newTestGateway(t, bot, 0)

	require.NoError(t, gateway.SendHTML(context.Background(), -100, `<a href="tg://user?id=1">A</a>`))
	require.NoError(t, gateway.SendMessage(context.Background(), -100, "plain"))

	require.Len(t, bot.sent, 2)
	assert.Equal(t, tgbotapi.ModeHTML, bot.sent[0].ParseMode)
	assert.Empty(t, bot.sent[1].ParseMode)
	assert.Equal(t, int64(-100), bot.sent[1].ChatID)
}

func TestGatewaySendChunksLongText(t *testing.T) {
	t.Parallel()

	bot := &fakeBot{}
	gateway := newTestGateway(t, bot, 10)

	require.NoError(t, gateway.SendMessage(context.Background(), -100, "line one\nline two\nline three"))

	texts := make([]string, 0, len(bot.sent))
	for _, msg := range bot.sent {
		texts = append(texts, msg.Text)
	}
	assert.Equal(t, []string{"line one\nl", "ine two\nli", "ne three"}, texts)
}

func TestSplitText(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		text  string
		limit int
		want  []string
	}{
		{name: "blank", text: "  ", limit: 5, want: nil},
		{name: "fits", text: "short", limit: 5, want: []string{"short"}},
		{name: "ignores line breaks", text: "ab\ncd\nef", limit: 4, want: []string{"ab\nc", "d\nef"}},
		{name: "hard split long line", text: "abcdefgh", limit: 3, want: []string{"abc", "def", "gh"}},
		{name: "exact multiple", text: "abcdef", limit: 3, want: []string{"abc", "def"}},
		{name: "counts runes not bytes", text: "ééé\nüü", limit: 4, want: []string{"ééé\n", "üü"}},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, splitText(tc.text, tc.limit))
		})
	}
}

func TestSplitTextNeverExceedsLimit(t *testing.T) {
	t.Parallel()

	text := strings.Repeat("1. 📬 X ID: @someone\n", 500)
	chunks := splitText(text, DefaultChunkSize)
	require.Greater(t, len(chunks), 1)
	assert.Equal(t, text, strings.Join(chunks, ""))
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len([]rune(chunk)), DefaultChunkSize)
	}
}
