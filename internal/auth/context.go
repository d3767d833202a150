package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/sharath018/event-management-backend/utils"
)

// ContextUserKey is the gin context key holding the authenticated User.
const ContextUserKey = "auth.user"

func SetCurrentUser(c *gin.Context, u User) {
	c.Set(ContextUserKey, u)
}

// CurrentUser returns the principal stored by the auth middleware.
func CurrentUser(c *gin.Context) (User, bool) {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return User{}, false
	}
	u, ok := v.(User)
	return u, ok
}

// RequireAdmin is the privilege check shared by middleware and services.
func RequireAdmin(u User) error {
	if !u.IsAdmin {
		return utils.Forbidden("You are not an admin")
	}
	return nil
}
