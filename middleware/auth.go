package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sharath018/event-management-backend/internal/auth"
	"github.com/sharath018/event-management-backend/internal/metrics"
	"github.com/sharath018/event-management-backend/utils"
)

// BasicChallenge is sent with every 401 so browsers and CLI clients prompt for credentials.
const BasicChallenge = `Basic realm="Authentication Required"`

var errNoCredentials = errors.New("no usable credentials")

// AuthMiddleware accepts HTTP Basic credentials or a bearer token from /api/v1/token and
// stores the user on the context. Requests without a valid principal never reach the handler.
func AuthMiddleware(authSvc auth.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, scheme, err := authenticate(c, authSvc)
		if err != nil {
			metrics.AuthFailures.WithLabelValues(scheme).Inc()
			c.Header("WWW-Authenticate", BasicChallenge)
			utils.SendError(c, http.StatusUnauthorized, auth.MsgUnauthorized)
			return
		}

		auth.SetCurrentUser(c, *user)
		c.Next()
	}
}

func authenticate(c *gin.Context, authSvc auth.Service) (*auth.User, string, error) {
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if header == "" {
		return nil, "none", errNoCredentials
	}

	scheme, credentials, _ := strings.Cut(header, " ")
	ctx := c.Request.Context()

	switch strings.ToLower(scheme) {
	case "basic":
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			return nil, "basic", errNoCredentials
		}
		user, err := authSvc.Verify(ctx, username, password)
		return user, "basic", err

	case "bearer":
		userID, err := authSvc.ParseToken(strings.TrimSpace(credentials))
		if err != nil {
			return nil, "bearer", err
		}
		user, err := authSvc.GetUserByID(ctx, userID)
		return user, "bearer", err

	default:
		return nil, "none", errNoCredentials
	}
}
