package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ParseID reads a positive integer path parameter. Anything else reports false, which
// handlers answer with 404 since no such resource can exist.
func ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// ContextClientIPKey holds the client address resolved by the audit middleware.
const ContextClientIPKey = "client_ip"

// ClientIP returns the address recorded in audit entries.
func ClientIP(c *gin.Context) string {
	if ip, ok := c.Get(ContextClientIPKey); ok {
		if s, ok := ip.(string); ok && s != "" {
			return s
		}
	}
	return c.ClientIP()
}
