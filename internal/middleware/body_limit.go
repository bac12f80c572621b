package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/deniz/campuscare/internal/app/models/dto"
)

// BodyLimit caps request body size. Oversized payloads get a 413 before any
// handler reads the body into memory.
func BodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.ContentLength > maxBytes {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodePayloadTooLarge, "Request payload too large")
			c.AbortWithStatusJSON(http.StatusRequestEntityTooLarge, dto.NewErrorResponse(errorDetail))
			return
		}
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
