package middleware

import (
	"net/http"

	"github.com/bizdash/backend/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// DefaultMaxBodySize caps request bodies at 1 MiB. Invoice submissions
// with a few dozen lines are the largest payload this API accepts, and
// they stay well under that.
const DefaultMaxBodySize int64 = 1 << 20

// BodyLimit rejects requests whose body exceeds maxBytes with a 413.
// Bodies without a Content-Length are capped while streaming instead.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBodySize
	}

	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponseWithRequestID(
				dto.ErrCodeRequestTooLarge,
				"Request body exceeds the allowed size",
				c.GetString("request_id"),
			))
			return
		}

		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
