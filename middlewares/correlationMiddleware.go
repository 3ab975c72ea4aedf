package middlewares

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const CorrelationIdHeader = "X-Correlation-Id"

// CorrelationId tags every request with an id so ledger failures can be traced
// back to the request that caused them. Caller-supplied ids are kept.
func CorrelationId() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(CorrelationIdHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("correlation_id", id)
		c.Header(CorrelationIdHeader, id)
		c.Next()
	}
}
