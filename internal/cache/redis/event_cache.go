package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	rplatform "giveaway-radar-backend/internal/platform/redis"
)

const (
	recentKey = "giveaway:events:recent"
	offsetKey = "giveaway:updates:offset"

	// How many events the recent list keeps.
	recentLimit = 100
)

// StoredEvent is the cached projection of one giveaway event. Payload is
// the marshaled value object, so unknown API fields survive the cache
// round-trip.
type StoredEvent struct {
	UpdateID  int64           `json:"update_id"`
	ChatID    int64           `json:"chat_id"`
	MessageID int64           `json:"message_id"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload"`
	StoredAt  time.Time       `json:"stored_at"`
}

// EventCache provides Redis-based storage for giveaway events.
type EventCache struct {
	client *rplatform.Client
	ttl    time.Duration
}

func NewEventCache(client *rplatform.Client, ttl time.Duration) *EventCache {
	return &EventCache{client: client, ttl: ttl}
}

func (c *EventCache) key(chatID, messageID int64) string {
	return fmt.Sprintf("giveaway:event:%d:%d", chatID, messageID)
}

// Store saves the event under its chat/message key and pushes it onto the
// recent list.
func (c *EventCache) Store(ctx context.Context, ev *StoredEvent) error {
	b, err := json.Marshal(ev)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	if err := c.client.Set(ctx, c.key(ev.ChatID, ev.MessageID), b, c.ttl).Err(); err != nil {
		return fmt.Errorf("store event: %w", err)
	}

	pipe := c.client.TxPipeline()
	pipe.LPush(ctx, recentKey, b)
	pipe.LTrim(ctx, recentKey, 0, recentLimit-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("push recent event: %w", err)
	}
	return nil
}

// Get returns the cached event for a chat/message pair, or nil when none
// is cached.
func (c *EventCache) Get(ctx context.Context, chatID, messageID int64) (*StoredEvent, error) {
	b, err := c.client.Get(ctx, c.key(chatID, messageID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}
	var ev StoredEvent
	if err := json.Unmarshal(b, &ev); err != nil {
		return nil, fmt.Errorf("unmarshal event: %w", err)
	}
	return &ev, nil
}

// Recent returns up to limit events, newest first.
func (c *EventCache) Recent(ctx context.Context, limit int) ([]StoredEvent, error) {
	if limit <= 0 || limit > recentLimit {
		limit = recentLimit
	}
	raw, err := c.client.LRange(ctx, recentKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("list recent events: %w", err)
	}
	out := make([]StoredEvent, 0, len(raw))
	for _, r := range raw {
		var ev StoredEvent
		if err := json.Unmarshal([]byte(r), &ev); err != nil {
			return nil, fmt.Errorf("unmarshal recent event: %w", err)
		}
		out = append(out, ev)
	}
	return out, nil
}

// Offset returns the persisted getUpdates offset; 0 when none was stored
// yet.
func (c *EventCache) Offset(ctx context.Context) (int64, error) {
	v, err := c.client.Get(ctx, offsetKey).Int64()
	if errors.Is(err, goredis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get offset: %w", err)
	}
	return v, nil
}

// SetOffset persists the getUpdates offset so restarts do not replay
// already-processed updates.
func (c *EventCache) SetOffset(ctx context.Context, offset int64) error {
	if err := c.client.Set(ctx, offsetKey, offset, 0).Err(); err != nil {
		return fmt.Errorf("set offset: %w", err)
	}
	return nil
}
