//go:build unit

package api_test

import (
	"context"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"
	"time"

	"seller-catalog/internal/handler/api"
	"seller-catalog/internal/infra/changefeed"
	"seller-catalog/internal/pkg/clock"
	"seller-catalog/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveChanges(t *testing.T, feed *changefeed.Feed, heartbeat time.Duration, ctx context.Context) (*nethttptest.ResponseRecorder, <-chan struct{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/api/changes", api.NewChangeHandler(feed, heartbeat).Stream)

	rec := nethttptest.NewRecorder()
	req := nethttptest.NewRequest(http.MethodGet, "/api/changes", nil).WithContext(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		router.ServeHTTP(rec, req)
	}()
	return rec, done
}

func waitDone(t *testing.T, done <-chan struct{}) {
	t.Helper()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("stream did not end")
	}
}

func TestChangeHandler_Stream(t *testing.T) {
	t0 := time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)

	t.Run("success: forwards published changes as change events", func(t *testing.T) {
		feed := changefeed.NewFeed(clock.NewMockClock(t0))
		rec, done := serveChanges(t, feed, time.Hour, context.Background())

		require.Eventually(t, func() bool { return feed.Subscribers() == 1 }, 2*time.Second, 5*time.Millisecond)
		feed.Publish(changefeed.KindProducts, "shop-a")
		feed.Close()
		waitDone(t, done)

		assert.Equal(t, http.StatusOK, rec.Code)
		httptest.AssertHeaders(t, rec, map[string]string{
			"Content-Type":      "text/event-stream",
			"Cache-Control":     "no-cache",
			"X-Accel-Buffering": "no",
		})
		body := rec.Body.String()
		assert.Contains(t, body, "event:change")
		assert.Contains(t, body, `"kind":"products"`)
		assert.Contains(t, body, `"shop":"shop-a"`)
	})

	t.Run("success: sends heartbeats while idle", func(t *testing.T) {
		feed := changefeed.NewFeed(clock.NewMockClock(t0))
		ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
		defer cancel()

		rec, done := serveChanges(t, feed, 10*time.Millisecond, ctx)
		waitDone(t, done)

		assert.Contains(t, rec.Body.String(), "event:ping")
		assert.NotContains(t, rec.Body.String(), "event:change")
	})

	t.Run("success: client disconnect ends the subscription", func(t *testing.T) {
		feed := changefeed.NewFeed(clock.NewMockClock(t0))
		ctx, cancel := context.WithCancel(context.Background())

		_, done := serveChanges(t, feed, time.Hour, ctx)
		require.Eventually(t, func() bool { return feed.Subscribers() == 1 }, 2*time.Second, 5*time.Millisecond)
		cancel()
		waitDone(t, done)

		assert.Equal(t, 0, feed.Subscribers())
	})
}
