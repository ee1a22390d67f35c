package telegram

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"giveaway-radar-backend/internal/telegram/types"
)

const defaultBaseURL = "https://api.telegram.org"

// RPSError reports a Telegram rate limit response (HTTP 429).
type RPSError struct {
	RetryAfter time.Duration
}

func (e *RPSError) Error() string {
	return fmt.Sprintf("telegram rate limit exceeded, retry after %s", e.RetryAfter)
}

// Defaults carries cross-request defaults applied when hydrating API
// payloads, mirroring what a bot session is configured with.
type Defaults struct {
	// Timezone applied to hydrated timestamps; nil keeps them in UTC.
	Timezone *time.Location
}

// Client talks to the Telegram Bot API and hydrates its JSON payloads
// into typed values.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	defaults   Defaults
	log        zerolog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL overrides the API base URL.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = base }
}

// WithDefaults sets the hydration defaults.
func WithDefaults(d Defaults) Option {
	return func(c *Client) { c.defaults = d }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// NewClient creates a Bot API client. The HTTP timeout leaves headroom
// over the getUpdates long-poll window.
func NewClient(token string, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 50 * time.Second},
		baseURL:    defaultBaseURL,
		token:      token,
		log:        log.With().Str("component", "telegram_client").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// hydrationContext exposes the client defaults to the bindings layer.
func (c *Client) hydrationContext() *types.Context {
	return types.NewContext().WithTimezone(c.defaults.Timezone)
}

type apiResponse struct {
	Ok          bool            `json:"ok"`
	Description string          `json:"description,omitempty"`
	Result      json.RawMessage `json:"result,omitempty"`
	Parameters  *struct {
		RetryAfter int `json:"retry_after"`
	} `json:"parameters,omitempty"`
}

func (c *Client) call(ctx context.Context, method string, params url.Values) (json.RawMessage, error) {
	endpoint := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	if len(params) > 0 {
		endpoint += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", method, err)
	}

	var apiResp apiResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", method, err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		retryAfter := time.Second
		if apiResp.Parameters != nil && apiResp.Parameters.RetryAfter > 0 {
			retryAfter = time.Duration(apiResp.Parameters.RetryAfter) * time.Second
		}
		return nil, &RPSError{RetryAfter: retryAfter}
	}
	if !apiResp.Ok {
		return nil, fmt.Errorf("%s: telegram API error: %s", method, apiResp.Description)
	}

	return apiResp.Result, nil
}

// GetChat fetches a chat by id or @username and hydrates it.
func (c *Client) GetChat(ctx context.Context, chatID string) (*types.Chat, error) {
	result, err := c.call(ctx, "getChat", url.Values{"chat_id": {chatID}})
	if err != nil {
		return nil, err
	}
	return types.HydrateChat(result, c.hydrationContext())
}

// GiveawayEvent is one giveaway-related payload extracted from an update.
// Exactly one of the typed fields is set.
type GiveawayEvent struct {
	UpdateID  int64
	ChatID    int64
	MessageID int64

	Giveaway  *types.Giveaway
	Created   *types.GiveawayCreated
	Winners   *types.GiveawayWinners
	Completed *types.GiveawayCompleted
}

type update struct {
	UpdateID    int64           `json:"update_id"`
	Message     json.RawMessage `json:"message,omitempty"`
	ChannelPost json.RawMessage `json:"channel_post,omitempty"`
}

// messageEnvelope scans a message for giveaway payloads without decoding
// the rest of the message.
type messageEnvelope struct {
	MessageID int64 `json:"message_id"`
	Chat      struct {
		ID int64 `json:"id"`
	} `json:"chat"`
	Giveaway          json.RawMessage `json:"giveaway,omitempty"`
	GiveawayCreated   json.RawMessage `json:"giveaway_created,omitempty"`
	GiveawayWinners   json.RawMessage `json:"giveaway_winners,omitempty"`
	GiveawayCompleted json.RawMessage `json:"giveaway_completed,omitempty"`
}

// GetGiveawayEvents long-polls getUpdates and hydrates every giveaway
// payload found in the returned messages. It returns the events and the
// offset to use for the next poll. Updates that fail to hydrate are
// logged and skipped, so one malformed payload does not stall the stream.
func (c *Client) GetGiveawayEvents(ctx context.Context, offset int64, timeout time.Duration) ([]GiveawayEvent, int64, error) {
	params := url.Values{
		"timeout":         {strconv.Itoa(int(timeout / time.Second))},
		"allowed_updates": {`["message","channel_post"]`},
	}
	if offset != 0 {
		params.Set("offset", strconv.FormatInt(offset, 10))
	}

	result, err := c.call(ctx, "getUpdates", params)
	if err != nil {
		return nil, offset, err
	}

	var updates []update
	if err := json.Unmarshal(result, &updates); err != nil {
		return nil, offset, fmt.Errorf("getUpdates: decode result: %w", err)
	}

	hctx := c.hydrationContext()
	next := offset
	var events []GiveawayEvent
	for _, u := range updates {
		if u.UpdateID >= next {
			next = u.UpdateID + 1
		}
		raw := u.Message
		if len(raw) == 0 {
			raw = u.ChannelPost
		}
		if len(raw) == 0 {
			continue
		}

		ev, err := c.extractEvent(u.UpdateID, raw, hctx)
		if err != nil {
			c.log.Warn().Err(err).Int64("update_id", u.UpdateID).Msg("Skipping malformed update")
			continue
		}
		if ev != nil {
			events = append(events, *ev)
		}
	}
	return events, next, nil
}

// extractEvent hydrates the giveaway payloads of one message. Messages
// without giveaway content yield (nil, nil).
func (c *Client) extractEvent(updateID int64, rawMessage json.RawMessage, hctx *types.Context) (*GiveawayEvent, error) {
	var env messageEnvelope
	if err := json.Unmarshal(rawMessage, &env); err != nil {
		return nil, fmt.Errorf("decode message envelope: %w", err)
	}

	ev := GiveawayEvent{
		UpdateID:  updateID,
		ChatID:    env.Chat.ID,
		MessageID: env.MessageID,
	}

	var err error
	if ev.Giveaway, err = types.HydrateGiveaway(env.Giveaway, hctx); err != nil {
		return nil, err
	}
	if ev.Created, err = types.HydrateGiveawayCreated(env.GiveawayCreated, hctx); err != nil {
		return nil, err
	}
	if ev.Winners, err = types.HydrateGiveawayWinners(env.GiveawayWinners, hctx); err != nil {
		return nil, err
	}
	if ev.Completed, err = types.HydrateGiveawayCompleted(env.GiveawayCompleted, hctx); err != nil {
		return nil, err
	}

	if ev.Giveaway == nil && ev.Created == nil && ev.Winners == nil && ev.Completed == nil {
		return nil, nil
	}
	return &ev, nil
}
