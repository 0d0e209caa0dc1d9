package middleware

import (
	"time"

	"fractional-quest-backend/internal/domain"
	"fractional-quest-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID propagates an incoming X-Request-ID or assigns a new one
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 64 {
			id = uuid.New().String()
		}

		c.Set(string(domain.KeyRequestID), id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

// SessionID stores the :id path parameter of session routes for log correlation
func SessionID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.Param("id"); id != "" {
			c.Set(string(domain.KeySessionID), id)
		}
		c.Next()
	}
}

// RequestLogger logs every request on entry and exit without reading the body
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path
		requestID := c.GetString(string(domain.KeyRequestID))

		logger.Log.Info(">>> "+method+" "+path, "request_id", requestID)

		c.Next()

		attrs := []any{
			"request_id", requestID,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
		}
		if sessionID := c.GetString(string(domain.KeySessionID)); sessionID != "" {
			attrs = append(attrs, "session_id", sessionID)
		}
		logger.Log.Info("<<< "+method+" "+path, attrs...)
	}
}
