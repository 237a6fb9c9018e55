package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"vehicle-inventory-frontend/internal/requestid"
)

const ContextKeyRequestID = "request_id"

// RequestID reuses an incoming X-Request-ID or mints one, echoes it on
// the response and stores it in the request context so calls to the
// inventory API carry it.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestid.Header)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set(ContextKeyRequestID, id)
		c.Header(requestid.Header, id)
		c.Request = c.Request.WithContext(requestid.NewContext(c.Request.Context(), id))

		c.Next()
	}
}
