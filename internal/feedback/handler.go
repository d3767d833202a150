package feedback

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharath018/event-management-backend/internal/auth"
	"github.com/sharath018/event-management-backend/utils"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

// Submit godoc
// @Summary Leave feedback (once per user)
// @Description A second submission is answered with status "error" and leaves the first untouched.
// @Tags Feedback
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param body body SubmitRequest true "Feedback"
// @Success 200 {object} utils.StatusResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/feedback [post]
func (h *Handler) Submit(c *gin.Context) {
	principal, ok := auth.CurrentUser(c)
	if !ok {
		utils.SendError(c, http.StatusUnauthorized, auth.MsgUnauthorized)
		return
	}

	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, utils.BindingMessage(err, "Invalid request body"))
		return
	}

	_, err := h.service.Submit(c.Request.Context(), principal, *req.Stars, req.Comment, utils.ClientIP(c))
	if errors.Is(err, ErrAlreadySubmitted) {
		utils.SendStatus(c, utils.StatusError, "Feedback Already Submitted !")
		return
	}
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SendStatus(c, utils.StatusSuccess, "Feedback Submitted !")
}
