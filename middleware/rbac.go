package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharath018/event-management-backend/internal/auditlog"
	"github.com/sharath018/event-management-backend/internal/auth"
	"github.com/sharath018/event-management-backend/utils"
)

// RequireAdmin lets only admins through. It must run after AuthMiddleware.
func RequireAdmin(auditSvc auditlog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := auth.CurrentUser(c)
		if !ok {
			c.Header("WWW-Authenticate", BasicChallenge)
			utils.SendError(c, http.StatusUnauthorized, auth.MsgUnauthorized)
			return
		}

		if err := auth.RequireAdmin(user); err != nil {
			auditSvc.LogAction(c.Request.Context(), &user.ID, nil, "ADMIN_ACCESS_DENIED", map[string]interface{}{
				"method": c.Request.Method,
				"path":   c.FullPath(),
			}, utils.ClientIP(c), auditlog.StatusFailure)
			utils.RespondError(c, err)
			return
		}

		c.Next()
	}
}
