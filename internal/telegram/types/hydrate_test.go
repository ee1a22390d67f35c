package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHydrateAbsentPayload(t *testing.T) {
	for _, data := range []json.RawMessage{nil, json.RawMessage(`null`)} {
		c, err := HydrateChat(data, nil)
		require.NoError(t, err)
		assert.Nil(t, c)
	}
}

func TestHydrateRejectsNonObjectPayload(t *testing.T) {
	_, err := HydrateChat(json.RawMessage(`[1, 2]`), nil)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, KindChat, se.Object)
}

func TestHydrateDoesNotMutateCallerData(t *testing.T) {
	data := json.RawMessage(`{"id": 1, "type": "group", "future_field": "x"}`)
	before := string(data)

	_, err := HydrateChat(data, nil)
	require.NoError(t, err)
	assert.Equal(t, before, string(data))
}

func TestHydratePlainFieldRoundTrip(t *testing.T) {
	c, err := HydrateChat(json.RawMessage(`{"id": 99, "type": "channel", "title": "News", "username": "daily"}`), nil)
	require.NoError(t, err)
	require.NotNil(t, c)

	assert.Equal(t, int64(99), c.ID())
	assert.Equal(t, "channel", c.Type())
	require.NotNil(t, c.Title())
	assert.Equal(t, "News", *c.Title())
	require.NotNil(t, c.Username())
	assert.Equal(t, "daily", *c.Username())
}

func TestHydrateOptionalFieldAbsent(t *testing.T) {
	c, err := HydrateChat(json.RawMessage(`{"id": 1, "type": "private"}`), nil)
	require.NoError(t, err)

	assert.Nil(t, c.Title())
	assert.Nil(t, c.Username())
}

func TestHydrateDeclaredNullReadsAsAbsent(t *testing.T) {
	c, err := HydrateChat(json.RawMessage(`{"id": 1, "type": "private", "title": null}`), nil)
	require.NoError(t, err)

	assert.Nil(t, c.Title())
	// A declared key never lands in the unknown map, null or not.
	assert.NotContains(t, c.UnknownFields(), "title")
}

func TestHydratePlainFieldTypeMismatch(t *testing.T) {
	_, err := HydrateChat(json.RawMessage(`{"id": "not-a-number", "type": "group"}`), nil)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "id", se.Field)
}

func TestHydrateNestedScenario(t *testing.T) {
	data := json.RawMessage(`{
		"chat": {"id": 1, "type": "group"},
		"giveaway_message_id": 555,
		"winners_selection_date": 1700000000,
		"winner_count": 2,
		"winners": [{"id": 10}, {"id": 20}]
	}`)

	w, err := HydrateGiveawayWinners(data, nil)
	require.NoError(t, err)
	require.NotNil(t, w)

	require.NotNil(t, w.Chat())
	assert.Equal(t, int64(1), w.Chat().ID())

	winners := w.Winners()
	require.Len(t, winners, 2)
	assert.Equal(t, int64(10), winners[0].ID())
	assert.Equal(t, int64(20), winners[1].ID())
}

func TestHydrateNestedCollectionAbsentReadsAsEmpty(t *testing.T) {
	data := json.RawMessage(`{
		"chat": {"id": 1, "type": "group"},
		"giveaway_message_id": 555,
		"winners_selection_date": 1700000000,
		"winner_count": 2
	}`)

	w, err := HydrateGiveawayWinners(data, nil)
	require.NoError(t, err)

	winners := w.Winners()
	assert.NotNil(t, winners)
	assert.Len(t, winners, 0)
}

func TestHydrateMissingMandatoryField(t *testing.T) {
	data := json.RawMessage(`{
		"giveaway_message_id": 555,
		"winners_selection_date": 1700000000,
		"winner_count": 2
	}`)

	_, err := HydrateGiveawayWinners(data, nil)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "chat", se.Field)
}

func TestHydrateNestedFailureAbortsEnclosingObject(t *testing.T) {
	data := json.RawMessage(`{
		"chat": {"id": 1, "type": "group"},
		"giveaway_message_id": 555,
		"winners_selection_date": 1700000000,
		"winner_count": 2,
		"winners": [{"id": "bad"}]
	}`)

	_, err := HydrateGiveawayWinners(data, nil)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, KindUser, se.Object)
}

func TestHydrateTimestampUsesContextTimezone(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*3600)
	ctx := NewContext().WithTimezone(zone)
	data := json.RawMessage(`{
		"chats": [{"id": 1, "type": "channel"}],
		"winners_selection_date": 1700000000,
		"winner_count": 1
	}`)

	g, err := HydrateGiveaway(data, ctx)
	require.NoError(t, err)

	assert.Equal(t, zone, g.WinnersSelectionDate().Location())
	assert.True(t, g.WinnersSelectionDate().Equal(time.Unix(1700000000, 0)))
}

func TestHydrateTimestampDefaultsToUTC(t *testing.T) {
	data := json.RawMessage(`{
		"chats": [],
		"winners_selection_date": 1700000000,
		"winner_count": 1
	}`)

	g, err := HydrateGiveaway(data, nil)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, g.WinnersSelectionDate().Location())
}

func TestHydrateStringListPreservesOrder(t *testing.T) {
	data := json.RawMessage(`{
		"chats": [{"id": 1, "type": "channel"}],
		"winners_selection_date": 1700000000,
		"winner_count": 1,
		"country_codes": ["DE", "AT", "CH"]
	}`)

	g, err := HydrateGiveaway(data, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"DE", "AT", "CH"}, g.CountryCodes())
}

func TestHydrateListTypeMismatch(t *testing.T) {
	data := json.RawMessage(`{
		"chats": {"id": 1},
		"winners_selection_date": 1700000000,
		"winner_count": 1
	}`)

	_, err := HydrateGiveaway(data, nil)
	var se *SchemaError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, "chats", se.Field)
}
