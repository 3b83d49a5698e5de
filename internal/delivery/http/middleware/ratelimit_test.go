package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeCounter struct {
	counts  map[string]int64
	err     error
	lastKey string
}

func (f *fakeCounter) IncrementRequestCount(_ context.Context, clientKey string) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	if f.counts == nil {
		f.counts = make(map[string]int64)
	}
	f.counts[clientKey]++
	f.lastKey = clientKey
	return f.counts[clientKey], nil
}

func limitedRouter(counter *fakeCounter, max int64, pre ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(pre...)
	router.Use(RateLimit(counter, max, zap.NewNop()))
	router.GET("/ping", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })
	return router
}

func TestRateLimitAllowsUnderLimit(t *testing.T) {
	router := limitedRouter(&fakeCounter{}, 3)

	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitRejectsOverLimit(t *testing.T) {
	router := limitedRouter(&fakeCounter{}, 2)

	var w *httptest.ResponseRecorder
	for i := 0; i < 3; i++ {
		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	}

	require.Equal(t, http.StatusTooManyRequests, w.Code)

	var body struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "RATE_LIMITED", body.Error.Code)
	assert.NotEmpty(t, body.Error.Message)
}

// A broken counter store must not take search down with it.
func TestRateLimitFailsOpen(t *testing.T) {
	router := limitedRouter(&fakeCounter{err: errors.New("redis gone")}, 1)

	for i := 0; i < 5; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimitKeysBySubjectWhenPresent(t *testing.T) {
	counter := &fakeCounter{}
	setSubject := func(c *gin.Context) { c.Set(SubjectKey, "user-42") }
	router := limitedRouter(counter, 10, setSubject)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", counter.lastKey)
}

func TestRateLimitFallsBackToClientIP(t *testing.T) {
	counter := &fakeCounter{}
	router := limitedRouter(counter, 10)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "203.0.113.7:9999"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "203.0.113.7", counter.lastKey)
}
