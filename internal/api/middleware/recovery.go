package middleware

import (
	"fmt"
	"net/http"
	"time"

	"teampulse-backend/internal/logger"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 response, logs it, and reports it to Sentry
// when a client is configured
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			hub := sentry.CurrentHub().Clone()
			hub.Scope().SetRequest(c.Request)
			hub.Scope().SetTag("request_id", c.GetString(RequestIDKey))
			hub.Recover(recovered)
			hub.Flush(2 * time.Second)

			logger.WithContext(c.Request.Context()).
				WithField("request_id", c.GetString(RequestIDKey)).
				WithField("panic", fmt.Sprint(recovered)).
				Error("recovered from panic")

			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}()

		c.Next()
	}
}
