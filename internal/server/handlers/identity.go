package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/mamadbah2/stocktrack/internal/domain/models"
)

const identityKey = "caller-identity"

// IdentityMiddleware lifts the caller identity out of the headers the
// authentication gateway forwards. Authentication itself happens upstream;
// this service only consumes the result.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(identityKey, models.Identity{
			UserID:       c.GetHeader("X-User-Id"),
			Organization: c.GetHeader("X-User-Org"),
			Role:         c.GetHeader("X-User-Role"),
		})
		c.Next()
	}
}

func identityFrom(c *gin.Context) models.Identity {
	if value, ok := c.Get(identityKey); ok {
		if identity, ok := value.(models.Identity); ok {
			return identity
		}
	}
	return models.Identity{}
}
