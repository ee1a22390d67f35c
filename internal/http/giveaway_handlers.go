package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	rcache "giveaway-radar-backend/internal/cache/redis"
)

// EventSource provides access to stored giveaway events.
type EventSource interface {
	Get(ctx context.Context, chatID, messageID int64) (*rcache.StoredEvent, error)
	Recent(ctx context.Context, limit int) ([]rcache.StoredEvent, error)
}

// GiveawayHandler serves stored giveaway events.
type GiveawayHandler struct {
	events EventSource
}

func NewGiveawayHandler(events EventSource) *GiveawayHandler {
	return &GiveawayHandler{events: events}
}

// Recent returns the latest observed giveaway events, newest first. The
// limit query parameter caps the result; invalid values fall back to the
// server default.
func (h *GiveawayHandler) Recent(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be an integer"})
			return
		}
		limit = n
	}

	events, err := h.events.Recent(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load recent events"})
		return
	}
	if events == nil {
		events = []rcache.StoredEvent{}
	}
	c.JSON(http.StatusOK, gin.H{"events": events})
}

// Get returns the stored event for one chat/message pair.
func (h *GiveawayHandler) Get(c *gin.Context) {
	chatID, err := strconv.ParseInt(c.Param("chat_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "chat_id must be an integer"})
		return
	}
	messageID, err := strconv.ParseInt(c.Param("message_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message_id must be an integer"})
		return
	}

	ev, err := h.events.Get(c.Request.Context(), chatID, messageID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load event"})
		return
	}
	if ev == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "giveaway event not found"})
		return
	}
	c.JSON(http.StatusOK, ev)
}
