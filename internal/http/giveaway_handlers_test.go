package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rcache "giveaway-radar-backend/internal/cache/redis"
	"giveaway-radar-backend/internal/config"
)

type stubEventSource struct {
	byKey  map[[2]int64]*rcache.StoredEvent
	recent []rcache.StoredEvent
	err    error
}

func (s *stubEventSource) Get(ctx context.Context, chatID, messageID int64) (*rcache.StoredEvent, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.byKey[[2]int64{chatID, messageID}], nil
}

func (s *stubEventSource) Recent(ctx context.Context, limit int) ([]rcache.StoredEvent, error) {
	if s.err != nil {
		return nil, s.err
	}
	if limit > 0 && limit < len(s.recent) {
		return s.recent[:limit], nil
	}
	return s.recent, nil
}

type stubHealth struct{ err error }

func (s *stubHealth) Healthy(ctx context.Context) error { return s.err }

func newHandlerRouter(events EventSource) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewGiveawayHandler(events)
	r := gin.New()
	r.GET("/giveaways/recent", h.Recent)
	r.GET("/giveaways/:chat_id/:message_id", h.Get)
	return r
}

func sampleEvent(updateID, chatID, messageID int64) rcache.StoredEvent {
	return rcache.StoredEvent{
		UpdateID:  updateID,
		ChatID:    chatID,
		MessageID: messageID,
		Kind:      "giveaway",
		Payload:   json.RawMessage(`{"winner_count":1}`),
		StoredAt:  time.Unix(1700000000, 0).UTC(),
	}
}

func TestRecentReturnsEvents(t *testing.T) {
	src := &stubEventSource{recent: []rcache.StoredEvent{
		sampleEvent(2, -1, 20),
		sampleEvent(1, -1, 10),
	}}
	router := newHandlerRouter(src)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/giveaways/recent", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Events []rcache.StoredEvent `json:"events"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Events, 2)
	assert.Equal(t, int64(2), body.Events[0].UpdateID)
}

func TestRecentHonorsLimit(t *testing.T) {
	src := &stubEventSource{recent: []rcache.StoredEvent{
		sampleEvent(3, -1, 30),
		sampleEvent(2, -1, 20),
		sampleEvent(1, -1, 10),
	}}
	router := newHandlerRouter(src)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/giveaways/recent?limit=1", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Events []rcache.StoredEvent `json:"events"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Events, 1)
}

func TestRecentRejectsBadLimit(t *testing.T) {
	router := newHandlerRouter(&stubEventSource{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/giveaways/recent?limit=abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRecentEmptyIsNotNull(t *testing.T) {
	router := newHandlerRouter(&stubEventSource{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/giveaways/recent", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"events":[]}`, w.Body.String())
}

func TestGetReturnsStoredEvent(t *testing.T) {
	ev := sampleEvent(1, -100123, 42)
	src := &stubEventSource{byKey: map[[2]int64]*rcache.StoredEvent{
		{-100123, 42}: &ev,
	}}
	router := newHandlerRouter(src)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/giveaways/-100123/42", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var got rcache.StoredEvent
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, ev.UpdateID, got.UpdateID)
	assert.Equal(t, ev.Kind, got.Kind)
}

func TestGetNotFound(t *testing.T) {
	router := newHandlerRouter(&stubEventSource{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/giveaways/-1/99", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetRejectsNonNumericIDs(t *testing.T) {
	router := newHandlerRouter(&stubEventSource{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/giveaways/abc/42", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetStorageError(t *testing.T) {
	router := newHandlerRouter(&stubEventSource{err: errors.New("redis down")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/giveaways/-1/1", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func testConfig() *config.Config {
	cfg := &config.Config{Debug: true}
	cfg.Server.Origin = "http://localhost:3000"
	cfg.Telegram.BotToken = "test-token"
	return cfg
}

func TestRouterHealth(t *testing.T) {
	router := NewRouter(testConfig(), &stubEventSource{}, &stubHealth{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestRouterReadiness(t *testing.T) {
	router := NewRouter(testConfig(), &stubEventSource{}, &stubHealth{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouterReadinessUnavailable(t *testing.T) {
	router := NewRouter(testConfig(), &stubEventSource{}, &stubHealth{err: errors.New("no route to host")})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ready", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestAPIRequiresInitData(t *testing.T) {
	router := NewRouter(testConfig(), &stubEventSource{}, &stubHealth{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/giveaways/recent", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
