package watcher

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	rcache "giveaway-radar-backend/internal/cache/redis"
	"giveaway-radar-backend/internal/platform/telegram"
	"giveaway-radar-backend/internal/telegram/types"
)

const errBackoff = 3 * time.Second

// Client abstracts the Telegram transport the watcher polls.
type Client interface {
	GetGiveawayEvents(ctx context.Context, offset int64, timeout time.Duration) ([]telegram.GiveawayEvent, int64, error)
}

// Store abstracts the event storage the watcher writes to.
type Store interface {
	Store(ctx context.Context, ev *rcache.StoredEvent) error
	Offset(ctx context.Context) (int64, error)
	SetOffset(ctx context.Context, offset int64) error
}

// Service polls the Bot API for giveaway events and persists them.
type Service struct {
	client      Client
	store       Store
	pollTimeout time.Duration
	log         zerolog.Logger
}

func New(client Client, store Store, pollTimeout time.Duration) *Service {
	return &Service{
		client:      client,
		store:       store,
		pollTimeout: pollTimeout,
		log:         log.With().Str("component", "watcher").Logger(),
	}
}

// Run polls until the context is canceled. Rate limit responses honor the
// server-provided retry delay; other transport errors back off briefly.
func (s *Service) Run(ctx context.Context) error {
	offset, err := s.store.Offset(ctx)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to load update offset, starting from scratch")
		offset = 0
	}
	s.log.Info().Int64("offset", offset).Msg("Watcher started")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		events, next, err := s.client.GetGiveawayEvents(ctx, offset, s.pollTimeout)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			var rps *telegram.RPSError
			if errors.As(err, &rps) {
				s.log.Warn().Dur("retry_after", rps.RetryAfter).Msg("Rate limited by Telegram")
				if !sleep(ctx, rps.RetryAfter) {
					return ctx.Err()
				}
				continue
			}
			s.log.Error().Err(err).Msg("Failed to fetch updates")
			if !sleep(ctx, errBackoff) {
				return ctx.Err()
			}
			continue
		}

		for i := range events {
			s.storeEvent(ctx, &events[i])
		}

		if next != offset {
			offset = next
			if err := s.store.SetOffset(ctx, next); err != nil {
				s.log.Error().Err(err).Int64("offset", next).Msg("Failed to persist update offset")
			}
		}
	}
}

// storeEvent projects a hydrated event into its cached form. Marshaling a
// frozen value object keeps any unrecognized API fields in the payload.
func (s *Service) storeEvent(ctx context.Context, ev *telegram.GiveawayEvent) {
	kind, payload, err := eventPayload(ev)
	if err != nil {
		s.log.Error().Err(err).Int64("update_id", ev.UpdateID).Msg("Failed to marshal event payload")
		return
	}

	stored := &rcache.StoredEvent{
		UpdateID:  ev.UpdateID,
		ChatID:    ev.ChatID,
		MessageID: ev.MessageID,
		Kind:      kind,
		Payload:   payload,
		StoredAt:  time.Now().UTC(),
	}
	if err := s.store.Store(ctx, stored); err != nil {
		s.log.Error().Err(err).Int64("update_id", ev.UpdateID).Msg("Failed to store event")
		return
	}
	s.log.Info().
		Str("kind", kind).
		Int64("chat_id", ev.ChatID).
		Int64("message_id", ev.MessageID).
		Msg("Giveaway event stored")
}

func eventPayload(ev *telegram.GiveawayEvent) (string, json.RawMessage, error) {
	switch {
	case ev.Giveaway != nil:
		b, err := json.Marshal(ev.Giveaway)
		return types.KindGiveaway, b, err
	case ev.Created != nil:
		b, err := json.Marshal(ev.Created)
		return types.KindGiveawayCreated, b, err
	case ev.Winners != nil:
		b, err := json.Marshal(ev.Winners)
		return types.KindGiveawayWinners, b, err
	case ev.Completed != nil:
		b, err := json.Marshal(ev.Completed)
		return types.KindGiveawayCompleted, b, err
	default:
		return "", nil, errors.New("event carries no giveaway payload")
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(d):
		return true
	}
}
