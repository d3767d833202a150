package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/sharath018/event-management-backend/utils"
)

// AuditMiddleware resolves the client IP once and stores it for audit entries.
//
// The address comes from gin's ClientIP, so X-Forwarded-For and X-Real-IP only count
// when the direct peer is one of the engine's trusted proxies. Anything else records
// the socket address.
func AuditMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(utils.ContextClientIPKey, c.ClientIP())
		c.Next()
	}
}
