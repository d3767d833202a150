package reports

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sharath018/event-management-backend/internal/auth"
	"github.com/sharath018/event-management-backend/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ExportAttendees handles GET /going/:id/export
// @Summary Download the attendee list of an event (admin)
// @Tags Reports
// @Produce octet-stream
// @Security BasicAuth
// @Param id path int true "Event ID"
// @Param format query string false "csv (default), xlsx or pdf"
// @Success 200 {file} file
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/going/{id}/export [get]
func (h *Handler) ExportAttendees(c *gin.Context) {
	principal, ok := auth.CurrentUser(c)
	if !ok {
		utils.SendError(c, http.StatusUnauthorized, auth.MsgUnauthorized)
		return
	}

	id, ok := utils.ParseID(c, "id")
	if !ok {
		utils.SendError(c, http.StatusNotFound, "Event not found")
		return
	}

	data, fname, mime, err := h.service.ExportAttendees(c.Request.Context(), principal, id, c.Query("format"), utils.ClientIP(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", fname))
	c.Data(http.StatusOK, mime, data)
}
