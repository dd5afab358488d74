package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ContextTraceID = "trace_id"

// TraceID tags every request with a fresh id, kept in the gin context
// for the response envelope and echoed in the X-Trace-ID header.
func TraceID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(ContextTraceID, id)
		c.Header("X-Trace-ID", id)
		c.Next()
	}
}
