package telegram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient("test-token", WithBaseURL(srv.URL), WithHTTPClient(srv.Client()))
}

func TestGetChat(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/getChat", r.URL.Path)
		assert.Equal(t, "@prizes", r.URL.Query().Get("chat_id"))
		w.Write([]byte(`{"ok":true,"result":{"id":-100123,"type":"channel","title":"Prizes"}}`))
	})

	chat, err := client.GetChat(context.Background(), "@prizes")
	require.NoError(t, err)
	assert.Equal(t, int64(-100123), chat.ID())
	assert.Equal(t, "channel", chat.Type())
	require.NotNil(t, chat.Title())
	assert.Equal(t, "Prizes", *chat.Title())
}

func TestGetChatAPIError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found"}`))
	})

	_, err := client.GetChat(context.Background(), "@nope")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chat not found")
}

func TestRateLimit(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"ok":false,"description":"Too Many Requests","parameters":{"retry_after":7}}`))
	})

	_, _, err := client.GetGiveawayEvents(context.Background(), 0, time.Second)
	require.Error(t, err)

	var rps *RPSError
	require.ErrorAs(t, err, &rps)
	assert.Equal(t, 7*time.Second, rps.RetryAfter)
}

func TestGetGiveawayEvents(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/getUpdates", r.URL.Path)
		w.Write([]byte(`{"ok":true,"result":[
			{"update_id":500,"channel_post":{
				"message_id":42,
				"chat":{"id":-100123,"type":"channel"},
				"giveaway":{
					"chats":[{"id":-100123,"type":"channel"}],
					"winners_selection_date":1700000000,
					"winner_count":3,
					"prize_description":"stickers"
				}
			}},
			{"update_id":501,"message":{
				"message_id":43,
				"chat":{"id":77,"type":"private"},
				"text":"hello"
			}},
			{"update_id":502,"channel_post":{
				"message_id":44,
				"chat":{"id":-100123,"type":"channel"},
				"giveaway_completed":{"winner_count":3}
			}}
		]}`))
	})

	events, next, err := client.GetGiveawayEvents(context.Background(), 0, time.Second)
	require.NoError(t, err)
	assert.Equal(t, int64(503), next)
	require.Len(t, events, 2)

	first := events[0]
	assert.Equal(t, int64(500), first.UpdateID)
	assert.Equal(t, int64(-100123), first.ChatID)
	assert.Equal(t, int64(42), first.MessageID)
	require.NotNil(t, first.Giveaway)
	assert.Equal(t, 3, first.Giveaway.WinnerCount())
	assert.Equal(t, int64(1700000000), first.Giveaway.WinnersSelectionDate().Unix())

	second := events[1]
	require.NotNil(t, second.Completed)
	assert.Equal(t, 3, second.Completed.WinnerCount())
}

func TestGetGiveawayEventsSkipsMalformed(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true,"result":[
			{"update_id":600,"channel_post":{
				"message_id":50,
				"chat":{"id":-1,"type":"channel"},
				"giveaway":{"chats":"not-a-list","winners_selection_date":1,"winner_count":1}
			}},
			{"update_id":601,"channel_post":{
				"message_id":51,
				"chat":{"id":-1,"type":"channel"},
				"giveaway_created":{}
			}}
		]}`))
	})

	events, next, err := client.GetGiveawayEvents(context.Background(), 0, time.Second)
	require.NoError(t, err)
	assert.Equal(t, int64(602), next)
	require.Len(t, events, 1)
	assert.Equal(t, int64(601), events[0].UpdateID)
	assert.NotNil(t, events[0].Created)
}

func TestDefaultTimezoneApplied(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true,"result":[
			{"update_id":700,"channel_post":{
				"message_id":60,
				"chat":{"id":-1,"type":"channel"},
				"giveaway":{
					"chats":[{"id":-1,"type":"channel"}],
					"winners_selection_date":1700000000,
					"winner_count":1
				}
			}}
		]}`))
	}))
	t.Cleanup(srv.Close)

	client := NewClient("test-token",
		WithBaseURL(srv.URL),
		WithHTTPClient(srv.Client()),
		WithDefaults(Defaults{Timezone: loc}),
	)

	events, _, err := client.GetGiveawayEvents(context.Background(), 0, time.Second)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, loc, events[0].Giveaway.WinnersSelectionDate().Location())
}

func TestOffsetForwardedToAPI(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "123", r.URL.Query().Get("offset"))
		w.Write([]byte(`{"ok":true,"result":[]}`))
	})

	events, next, err := client.GetGiveawayEvents(context.Background(), 123, time.Second)
	require.NoError(t, err)
	assert.Empty(t, events)
	assert.Equal(t, int64(123), next)
}
