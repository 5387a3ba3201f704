package telegram

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/linkdrop-bot/internal/domain"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUpdates struct {
	requests []tgbotapi.Chattable
	config   tgbotapi.UpdateConfig
	updates  chan tgbotapi.Update
	stopped  bool
	err      error
}

func (f *fakeUpdates) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	f.requests = append(f.requests, c)
	if f.err != nil {
		return nil, f.err
	}
	return &tgbotapi.APIResponse{Ok: true}, nil
}

func (f *fakeUpdates) GetUpdatesChan(config tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	f.config = config
	return f.updates
}

func (f *fakeUpdates) StopReceivingUpdates() {
	f.stopped = true
}

func commandMessage(text string, from int64) *tgbotapi.Message {
	name, _, _ := cutCommand(text)
	return &tgbotapi.Message{
		Text:     text,
		From:     &tgbotapi.User{ID: from},
		Chat:     &tgbotapi.Chat{ID: -100},
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: len(name)}},
	}
}

func cutCommand(text string) (string, string, bool) {
	for i, r := range text {
		if r == ' ' {
			return text[:i], text[i+1:], true
		}
	}
	return text, "", false
}

func TestSourceRunDropsPendingAndDispatchesInOrder(t *testing.T) {
	t.Parallel()

	client := &fakeUpdates{updates: make(chan tgbotapi.Update, 3)}
	client.updates <- tgbotapi.Update{UpdateID: 1, Message: &tgbotapi.Message{Text: "hi", From: &tgbotapi.User{ID: 1}, Chat: &tgbotapi.Chat{ID: -100}}}
	client.updates <- tgbotapi.Update{UpdateID: 2}
	client.updates <- tgbotapi.Update{UpdateID: 3, Message: commandMessage("/total", 2)}
	close(client.updates)

	source, err := NewSource(client, 0, zerolog.Nop())
	require.NoError(t, err)

	var got []domain.Event
	err = source.Run(context.Background(), func(_ context.Context, event domain.Event) error {
		got = append(got, event)
		return errors.New("handler errors are logged only")
	})
	require.NoError(t, err)

	require.Len(t, client.requests, 1)
	assert.Equal(t, tgbotapi.DeleteWebhookConfig{DropPendingUpdates: true}, client.requests[0])
	assert.Equal(t, DefaultPollTimeout, client.config.Timeout)
	assert.True(t, client.stopped)

	require.Len(t, got, 2)
	assert.Equal(t, domain.TextMessage{UserID: 1, ChatID: -100, Text: "hi"}, got[0])
	assert.Equal(t, domain.Command{Name: "total", Args: []string{}, IssuerID: 2, ChatID: -100}, got[1])
}

func TestSourceRunStopsOnContextCancel(t *testing.T) {
	t.Parallel()

	client := &fakeUpdates{updates: make(chan tgbotapi.Update)}
	source, err := NewSource(client, 30, zerolog.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- source.Run(ctx, func(context.Context, domain.Event) error { return nil })
	}()
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("source did not stop")
	}
	assert.Equal(t, 30, client.config.Timeout)
}

func TestSourceRunFailsWhenPendingUpdatesCannotBeDropped(t *testing.T) {
	t.Parallel()

	client := &fakeUpdates{err: errors.New("Unauthorized")}
	source, err := NewSource(client, 0, zerolog.Nop())
	require.NoError(t, err)

	err = source.Run(context.Background(), func(context.Context, domain.Event) error { return nil })
	require.Error(t, err)
	assert.ErrorContains(t, err, "drop pending updates")
}

func TestToEvent(t *testing.T) {
	t.Parallel()

	reply := commandMessage("/replymute", 9)
	reply.ReplyToMessage = &tgbotapi.Message{From: &tgbotapi.User{ID: 42, FirstName: "Eve", LastName: "<3"}}

	testCases := []struct {
		name   string
		update tgbotapi.Update
		want   domain.Event
		ok     bool
	}{
		{name: "no message", update: tgbotapi.Update{}, ok: false},
		{
			name:   "no author",
			update: tgbotapi.Update{Message: &tgbotapi.Message{Text: "x", Chat: &tgbotapi.Chat{ID: -100}}},
			ok:     false,
		},
		{
			name:   "text",
			update: tgbotapi.Update{Message: &tgbotapi.Message{Text: "https://x.com/a/status/1", From: &tgbotapi.User{ID: 5}, Chat: &tgbotapi.Chat{ID: -100}}},
			want:   domain.TextMessage{UserID: 5, ChatID: -100, Text: "https://x.com/a/status/1"},
			ok:     true,
		},
		{
			name:   "photo with caption counts as media",
			update: tgbotapi.Update{Message: &tgbotapi.Message{Caption: "done", Photo: []tgbotapi.PhotoSize{{FileID: "p"}}, From: &tgbotapi.User{ID: 5}, Chat: &tgbotapi.Chat{ID: -100}}},
			want:   domain.MediaMessage{UserID: 5, ChatID: -100, Kind: domain.MediaPhoto},
			ok:     true,
		},
		{
			name:   "video",
			update: tgbotapi.Update{Message: &tgbotapi.Message{Video: &tgbotapi.Video{FileID: "v"}, From: &tgbotapi.User{ID: 5}, Chat: &tgbotapi.Chat{ID: -100}}},
			want:   domain.MediaMessage{UserID: 5, ChatID: -100, Kind: domain.MediaVideo},
			ok:     true,
		},
		{
			name:   "document",
			update: tgbotapi.Update{Message: &tgbotapi.Message{Document: &tgbotapi.Document{FileID: "d"}, From: &tgbotapi.User{ID: 5}, Chat: &tgbotapi.Chat{ID: -100}}},
			want:   domain.MediaMessage{UserID: 5, ChatID: -100, Kind: domain.MediaDocument},
			ok:     true,
		},
		{
			name:   "sticker is ignored",
			update: tgbotapi.Update{Message: &tgbotapi.Message{Sticker: &tgbotapi.Sticker{FileID: "s"}, From: &tgbotapi.User{ID: 5}, Chat: &tgbotapi.Chat{ID: -100}}},
			ok:     false,
		},
		{
			name:   "command with args",
			update: tgbotapi.Update{Message: commandMessage("/Mute 123  2h", 9)},
			want:   domain.Command{Name: "mute", Args: []string{"123", "2h"}, IssuerID: 9, ChatID: -100},
			ok:     true,
		},
		{
			name:   "reply command carries escaped mention",
			update: tgbotapi.Update{Message: reply},
			want: domain.Command{
				Name:     "replymute",
				Args:     []string{},
				IssuerID: 9,
				ChatID:   -100,
				ReplyTo:  &domain.UserRef{ID: 42, Mention: `<a href="tg://user?id=42">Eve &lt;3</a>`},
			},
			ok: true,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := toEvent(tc.update)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}
