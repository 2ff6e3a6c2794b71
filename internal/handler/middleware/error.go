package middleware

import (
	"log/slog"
	"net/http"

	"seller-catalog/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes a response for handlers that recorded an error with
// c.Error but left the body empty. Public errors carry their httperr.Response;
// private ones are mapped through the errs taxonomy with a generic message.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			if !c.Writer.Written() && c.Writer.Status() != http.StatusOK {
				c.Writer.WriteHeaderNow()
			}
			return
		}
		// Search backward through the error stack
		for i := len(c.Errors) - 1; i >= 0; i-- {
			err := c.Errors[i]
			if err.IsType(gin.ErrorTypePublic) {
				if resp, ok := err.Meta.(httperr.Response); ok {
					c.JSON(resp.Status, resp)
					return
				}
			}
		}

		last := c.Errors.Last().Err
		status := httperr.Status(last)
		resp := httperr.Response{Status: status}
		resp.Error.Message = http.StatusText(status)
		if status >= http.StatusInternalServerError {
			resp.Error.Message = "Internal server error"
			slog.Error("unhandled request error", "path", c.FullPath(), "request_id", GetRequestID(c), "error", last)
		}
		c.JSON(status, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic", "error", err, "path", c.Request.URL.Path, "request_id", GetRequestID(c))

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.JSON(http.StatusInternalServerError, resp)
				c.Abort()
			}
		}()
		c.Next()
	}
}
