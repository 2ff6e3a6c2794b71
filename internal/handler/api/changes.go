package api

import (
	"log/slog"
	"net/http"
	"time"

	"seller-catalog/internal/infra/changefeed"

	"github.com/gin-gonic/gin"
)

const DefaultHeartbeat = 15 * time.Second

type ChangeSubscriber interface {
	Subscribe() (<-chan changefeed.Change, func())
}

type ChangeHandler struct {
	feed      ChangeSubscriber
	heartbeat time.Duration
}

func NewChangeHandler(feed ChangeSubscriber, heartbeat time.Duration) *ChangeHandler {
	if heartbeat <= 0 {
		heartbeat = DefaultHeartbeat
	}
	return &ChangeHandler{feed: feed, heartbeat: heartbeat}
}

// @Summary Change stream
// @Description Server-sent events: a "change" event per catalog mutation and a periodic "ping"
// @Tags changes
// @Produce text/event-stream
// @Success 200 {object} changefeed.Change
// @Router /api/changes [get]
func (h *ChangeHandler) Stream(c *gin.Context) {
	changes, unsubscribe := h.feed.Subscribe()
	defer unsubscribe()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case change, ok := <-changes:
			if !ok {
				slog.Debug("Change feed closed, ending stream")
				return
			}
			c.SSEvent("change", change)
			c.Writer.Flush()
		case now := <-ticker.C:
			c.SSEvent("ping", gin.H{"at": now.UTC()})
			c.Writer.Flush()
		}
	}
}
