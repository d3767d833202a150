package utils

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorResponse is the uniform error envelope.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// StatusResponse is the envelope for operations that only report an outcome.
type StatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// SendError writes the error envelope and aborts the chain.
func SendError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{Status: status, Message: message})
}

// RespondError renders a service error. Internal failures are logged with their cause and
// reach the client only as a generic message.
func RespondError(c *gin.Context, err error) {
	status := StatusOf(err)
	if status >= http.StatusInternalServerError {
		log.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
	}
	SendError(c, status, MessageOf(err))
}

// SendStatus writes a {status, message} body with 200.
func SendStatus(c *gin.Context, status, message string) {
	c.JSON(http.StatusOK, StatusResponse{Status: status, Message: message})
}

// AbsoluteURL builds an external URL for path. baseURL wins when set; otherwise the scheme
// and host come from the request, honouring X-Forwarded-Proto.
func AbsoluteURL(c *gin.Context, baseURL, path string) string {
	if baseURL != "" {
		return strings.TrimRight(baseURL, "/") + path
	}
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}
	return scheme + "://" + c.Request.Host + path
}
