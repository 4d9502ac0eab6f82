package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/packetery/backend/internal/infrastructure/logger"
	"github.com/packetery/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// BodyLimit rejects request bodies larger than maxBytes.
// A non-positive maxBytes disables the check.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes <= 0 || c.Request.Body == nil || c.Request.Body == http.NoBody {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBytes {
			logger.GetGinLogger(c).Warn("Request body too large",
				zap.Int64("content_length", c.Request.ContentLength),
				zap.Int64("limit", maxBytes),
			)
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeRequestTooLarge, "Request body exceeds maximum allowed size", getRequestID(c)))
			return
		}

		// chunked bodies have no Content-Length
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
