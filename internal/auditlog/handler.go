package auditlog

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sharath018/event-management-backend/utils"
)

// Handler serves the admin audit log endpoints
type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetAuditLogs handles GET /auditlogs - retrieves audit logs with filtering and pagination
// @Summary Get audit logs
// @Description Retrieve audit logs with optional filters and pagination (admin only)
// @Tags AuditLog
// @Produce json
// @Security BasicAuth
// @Param user_id query uint false "Filter by acting user ID"
// @Param target_id query uint false "Filter by target ID"
// @Param action query string false "Filter by action (partial match)"
// @Param status query string false "Filter by status"
// @Param from_date query string false "Filter from date (YYYY-MM-DD)"
// @Param to_date query string false "Filter to date (YYYY-MM-DD)"
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Number of records per page (default: 20)"
// @Success 200 {object} PaginatedAuditLogs
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/auditlogs [get]
func (h *Handler) GetAuditLogs(c *gin.Context) {
	filter := AuditLogFilter{}

	if userIDStr := c.Query("user_id"); userIDStr != "" {
		if userID, err := strconv.ParseUint(userIDStr, 10, 32); err == nil {
			uid := uint(userID)
			filter.UserID = &uid
		}
	}

	if targetIDStr := c.Query("target_id"); targetIDStr != "" {
		if targetID, err := strconv.ParseUint(targetIDStr, 10, 32); err == nil {
			tid := uint(targetID)
			filter.TargetID = &tid
		}
	}

	filter.Action = c.Query("action")
	filter.Status = c.Query("status")

	if fromDateStr := c.Query("from_date"); fromDateStr != "" {
		fromDate, err := time.Parse("2006-01-02", fromDateStr)
		if err != nil {
			utils.SendError(c, http.StatusBadRequest, "Invalid from_date format. Use YYYY-MM-DD")
			return
		}
		filter.FromDate = &fromDate
	}

	if toDateStr := c.Query("to_date"); toDateStr != "" {
		toDate, err := time.Parse("2006-01-02", toDateStr)
		if err != nil {
			utils.SendError(c, http.StatusBadRequest, "Invalid to_date format. Use YYYY-MM-DD")
			return
		}
		// inclusive: up to the end of that day
		endOfDay := toDate.Add(24*time.Hour - time.Nanosecond)
		filter.ToDate = &endOfDay
	}

	filter.Page = 1
	if page, err := strconv.Atoi(c.Query("page")); err == nil && page > 0 {
		filter.Page = page
	}

	filter.Limit = 20
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 && limit <= 100 {
		filter.Limit = limit
	}

	result, err := h.service.GetAuditLogs(c.Request.Context(), filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAuditLogByID handles GET /auditlogs/:id
// @Summary Get audit log by ID
// @Tags AuditLog
// @Produce json
// @Security BasicAuth
// @Param id path uint true "Audit Log ID"
// @Success 200 {object} AuditLogResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/auditlogs/{id} [get]
func (h *Handler) GetAuditLogByID(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		utils.SendError(c, http.StatusNotFound, "Audit log not found")
		return
	}

	entry, err := h.service.GetAuditLogByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}
