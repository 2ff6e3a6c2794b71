package middleware

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"seller-catalog/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const ctxRequestIDKey = "request_id"

// NewLogger builds the process logger and installs it as the slog default.
// Release mode logs JSON, other modes log text.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)
	opts := &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.In(timezone).Format(cfg.TimeFormat))
				}
			}
			return a
		},
	}

	var handler slog.Handler
	if gin.Mode() == gin.ReleaseMode {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// RequestLogger tags every request with an id and logs its start and
// completion. The acting seller is known only after RequireAuth ran, so it
// appears on the completion line.
func RequestLogger(logger *slog.Logger, cfg config.LogConfig) gin.HandlerFunc {
	timezone := time.FixedZone(cfg.TimeZone, cfg.TimeZoneOffset)

	return func(c *gin.Context) {
		startTime := time.Now()
		requestID := newRequestID(timezone)
		c.Set(ctxRequestIDKey, requestID)

		attrs := []slog.Attr{
			slog.String("request_id", requestID),
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.String("client_ip", c.ClientIP()),
		}
		logger.LogAttrs(c.Request.Context(), slog.LevelDebug, "Request started", attrs...)

		c.Next()

		statusCode := c.Writer.Status()
		attrs = append(attrs,
			slog.Int("status_code", statusCode),
			slog.Duration("duration", time.Since(startTime)),
		)
		if actor, ok := GetActor(c); ok {
			attrs = append(attrs,
				slog.String("subject", actor.Subject),
				slog.String("shops", strings.Join(actor.Shops, ",")),
			)
		}
		if size := c.Writer.Size(); size > 0 {
			attrs = append(attrs, slog.Int("response_size", size))
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("errors", c.Errors.String()))
		}

		level := slog.LevelInfo
		switch {
		case statusCode >= 500:
			level = slog.LevelError
		case statusCode >= 400:
			level = slog.LevelWarn
		}
		logger.LogAttrs(c.Request.Context(), level, "Request completed", attrs...)
	}
}

func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestIDKey)
}

func newRequestID(timezone *time.Location) string {
	timestamp := time.Now().In(timezone).Format("20060102150405")

	randomBytes := make([]byte, 4)
	if _, err := rand.Read(randomBytes); err != nil {
		return fmt.Sprintf("%s-fallback-%d", timestamp, time.Now().UnixNano()%100000000)
	}
	return timestamp + "-" + hex.EncodeToString(randomBytes)
}
