package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGiveawayCompletedKeepsFutureFields(t *testing.T) {
	data := json.RawMessage(`{"winner_count": 3, "unclaimed_prize_count": 1, "future_field": "x"}`)

	g, err := HydrateGiveawayCompleted(data, nil)
	require.NoError(t, err)
	require.NotNil(t, g)

	assert.Equal(t, 3, g.WinnerCount())
	require.NotNil(t, g.UnclaimedPrizeCount())
	assert.Equal(t, 1, *g.UnclaimedPrizeCount())
	assert.Equal(t, json.RawMessage(`"x"`), g.UnknownFields()["future_field"])
}

func TestGiveawayCompletedEquality(t *testing.T) {
	a, err := HydrateGiveawayCompleted(json.RawMessage(`{"winner_count": 3, "unclaimed_prize_count": 1}`), nil)
	require.NoError(t, err)
	b, err := HydrateGiveawayCompleted(json.RawMessage(`{"winner_count": 3, "unclaimed_prize_count": 1, "future_field": "x"}`), nil)
	require.NoError(t, err)
	c, err := HydrateGiveawayCompleted(json.RawMessage(`{"winner_count": 3}`), nil)
	require.NoError(t, err)

	assert.True(t, Equal(a, b))
	// unclaimed_prize_count is an identity attribute even when absent.
	assert.False(t, Equal(a, c))
}

func TestGiveawayEqualityIgnoresNonIdentityFields(t *testing.T) {
	base := `{
		"chats": [{"id": 1, "type": "channel"}],
		"winners_selection_date": 1700000000`
	a, err := HydrateGiveaway(json.RawMessage(base+`, "winner_count": 5, "prize_description": "mug"}`), nil)
	require.NoError(t, err)
	b, err := HydrateGiveaway(json.RawMessage(base+`, "winner_count": 5, "prize_description": "sticker pack"}`), nil)
	require.NoError(t, err)
	c, err := HydrateGiveaway(json.RawMessage(base+`, "winner_count": 6}`), nil)
	require.NoError(t, err)

	assert.True(t, Equal(a, b))
	assert.Equal(t, Hash(a), Hash(b))
	assert.False(t, Equal(a, c))
}

func TestGiveawayEqualityComparesChatsElementwise(t *testing.T) {
	a, err := HydrateGiveaway(json.RawMessage(`{
		"chats": [{"id": 1, "type": "channel"}, {"id": 2, "type": "channel"}],
		"winners_selection_date": 1700000000,
		"winner_count": 1
	}`), nil)
	require.NoError(t, err)
	b, err := HydrateGiveaway(json.RawMessage(`{
		"chats": [{"id": 2, "type": "channel"}, {"id": 1, "type": "channel"}],
		"winners_selection_date": 1700000000,
		"winner_count": 1
	}`), nil)
	require.NoError(t, err)

	// Same chats, different order: collections compare in order.
	assert.False(t, Equal(a, b))
}

func TestGiveawayWinnersIdentityIncludesWinners(t *testing.T) {
	base := func(winners string) json.RawMessage {
		return json.RawMessage(`{
			"chat": {"id": 1, "type": "group"},
			"giveaway_message_id": 555,
			"winners_selection_date": 1700000000,
			"winner_count": 2,
			"winners": ` + winners + `
		}`)
	}
	a, err := HydrateGiveawayWinners(base(`[{"id": 10}, {"id": 20}]`), nil)
	require.NoError(t, err)
	b, err := HydrateGiveawayWinners(base(`[{"id": 10}, {"id": 20}]`), nil)
	require.NoError(t, err)
	c, err := HydrateGiveawayWinners(base(`[{"id": 10}, {"id": 30}]`), nil)
	require.NoError(t, err)

	assert.True(t, Equal(a, b))
	assert.Equal(t, Hash(a), Hash(b))
	assert.False(t, Equal(a, c))
}

func TestGiveawayMarshalRoundTripKeepsUnknownFields(t *testing.T) {
	data := json.RawMessage(`{
		"chats": [{"id": 1, "type": "channel", "chat_future": true}],
		"winners_selection_date": 1700000000,
		"winner_count": 2,
		"future_field": {"nested": 1}
	}`)

	g, err := HydrateGiveaway(data, nil)
	require.NoError(t, err)

	out, err := json.Marshal(g)
	require.NoError(t, err)

	again, err := HydrateGiveaway(out, nil)
	require.NoError(t, err)

	assert.True(t, Equal(g, again))
	assert.JSONEq(t, `{"nested": 1}`, string(again.UnknownFields()["future_field"]))
	chats := again.Chats()
	require.Len(t, chats, 1)
	assert.JSONEq(t, `true`, string(chats[0].UnknownFields()["chat_future"]))
}

func TestGiveawayCompletedWithNestedMessage(t *testing.T) {
	data := json.RawMessage(`{
		"winner_count": 1,
		"giveaway_message": {
			"message_id": 777,
			"date": 1700000000,
			"chat": {"id": 9, "type": "channel"},
			"text": "Giveaway over"
		}
	}`)

	g, err := HydrateGiveawayCompleted(data, nil)
	require.NoError(t, err)

	msg := g.GiveawayMessage()
	require.NotNil(t, msg)
	assert.Equal(t, int64(777), msg.MessageID())
	require.NotNil(t, msg.Date())
	assert.True(t, msg.Date().Equal(time.Unix(1700000000, 0)))
	require.NotNil(t, msg.Chat())
	assert.Equal(t, int64(9), msg.Chat().ID())
}

func TestGiveawayCreatedRetainsUnknownOnly(t *testing.T) {
	g, err := HydrateGiveawayCreated(json.RawMessage(`{"prize_star_count": 500}`), nil)
	require.NoError(t, err)
	require.NotNil(t, g)
	assert.JSONEq(t, `500`, string(g.UnknownFields()["prize_star_count"]))
}

func TestGiveawayWinnerCountOutOfRange(t *testing.T) {
	_, err := HydrateGiveaway(json.RawMessage(`{
		"chats": [],
		"winners_selection_date": 1700000000,
		"winner_count": -2
	}`), nil)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "winner_count", se.Field)
}
