package event

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sharath018/event-management-backend/internal/auth"
	"github.com/sharath018/event-management-backend/utils"
)

type Handler struct {
	Service *Service
	baseURL string
}

func NewHandler(s *Service, baseURL string) *Handler {
	return &Handler{Service: s, baseURL: baseURL}
}

type EventResponse struct {
	Status string    `json:"status" example:"success"`
	Event  EventJSON `json:"event"`
}

type EventListResponse struct {
	Status string      `json:"status" example:"success"`
	Events []EventJSON `json:"events"`
}

type GoingResponse struct {
	Status string   `json:"status" example:"success"`
	Count  int      `json:"count" example:"2"`
	Users  []string `json:"users" example:"Ada Lovelace,Alan Turing"`
}

// ===========================
// 🎯 Create Event
// @Summary Create an event (admin)
// @Tags Events
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param body body CreateEventRequest true "Event"
// @Success 201 {object} map[string]string
// @Header 201 {string} Location "URL of the new event"
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/events [post]
func (h *Handler) CreateEvent(c *gin.Context) {
	principal, ok := auth.CurrentUser(c)
	if !ok {
		utils.SendError(c, http.StatusUnauthorized, auth.MsgUnauthorized)
		return
	}

	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, utils.BindingMessage(err, "Invalid request body"))
		return
	}

	e, err := h.Service.CreateEvent(c.Request.Context(), principal, &req, utils.ClientIP(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.Header("Location", utils.AbsoluteURL(c, h.baseURL, "/api/v1/events/"+strconv.FormatUint(uint64(e.ID), 10)))
	c.JSON(http.StatusCreated, gin.H{"title": e.Title})
}

// ===========================
// 🔍 Get Event By ID
// @Summary Get an event
// @Tags Events
// @Produce json
// @Security BasicAuth
// @Param id path int true "Event ID"
// @Success 200 {object} EventResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/events/{id} [get]
func (h *Handler) GetEventByID(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		utils.SendError(c, http.StatusNotFound, "Event not found")
		return
	}

	e, err := h.Service.GetEventByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, EventResponse{Status: utils.StatusSuccess, Event: e.JSON(h.Service.Location())})
}

// ===========================
// 📆 List Events
// @Summary List past (0), today's (1) or future (2) events
// @Tags Events
// @Produce json
// @Security BasicAuth
// @Param when query int true "0 past, 1 today, 2 future"
// @Success 200 {object} EventListResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/events [get]
func (h *Handler) ListEvents(c *gin.Context) {
	when, ok := ParseWindow(c.Query("when"))
	if !ok {
		utils.SendError(c, http.StatusBadRequest, "Invalid query body")
		return
	}

	events, err := h.Service.ListEvents(c.Request.Context(), when)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	loc := h.Service.Location()
	out := make([]EventJSON, 0, len(events))
	for _, e := range events {
		out = append(out, e.JSON(loc))
	}

	c.JSON(http.StatusOK, EventListResponse{Status: utils.StatusSuccess, Events: out})
}

// ===========================
// 🙋 Join Event
// @Summary Join an event
// @Tags Events
// @Produce json
// @Security BasicAuth
// @Param id path int true "Event ID"
// @Success 200 {object} utils.StatusResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/join/{id} [post]
func (h *Handler) JoinEvent(c *gin.Context) {
	principal, ok := auth.CurrentUser(c)
	if !ok {
		utils.SendError(c, http.StatusUnauthorized, auth.MsgUnauthorized)
		return
	}

	id, ok := utils.ParseID(c, "id")
	if !ok {
		utils.SendError(c, http.StatusNotFound, "Event not found !")
		return
	}

	joined, err := h.Service.JoinEvent(c.Request.Context(), principal, id, utils.ClientIP(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	if !joined {
		utils.SendStatus(c, utils.StatusSuccess, "Already Joined")
		return
	}
	utils.SendStatus(c, utils.StatusSuccess, "Successfully Joined")
}

// ===========================
// 👥 Attendees
// @Summary Names of the users going to an event
// @Tags Events
// @Produce json
// @Security BasicAuth
// @Param id path int true "Event ID"
// @Success 200 {object} GoingResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/going/{id} [get]
func (h *Handler) Going(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		utils.SendError(c, http.StatusNotFound, "Event not found !")
		return
	}

	attendees, err := h.Service.Attendees(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	names := make([]string, 0, len(attendees))
	for _, a := range attendees {
		names = append(names, a.FullName())
	}

	c.JSON(http.StatusOK, GoingResponse{Status: utils.StatusSuccess, Count: len(names), Users: names})
}
