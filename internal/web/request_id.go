package web

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// requestID keeps the caller's X-Request-ID or issues a new one, and echoes
// it back on the response.
func requestID(c *gin.Context) {
	id := c.GetHeader(requestIDHeader)
	if len(id) == 0 {
		id = uuid.New().String()
	}
	c.Set(requestIDKey, id)
	c.Header(requestIDHeader, id)
	c.Next()
}
