package auth

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sharath018/event-management-backend/utils"
)

type Handler struct {
	service Service
	baseURL string
}

func NewHandler(s Service, baseURL string) *Handler {
	return &Handler{service: s, baseURL: baseURL}
}

// ===============================
// Registration
// ===============================

type CreateUserRequest struct {
	Username  string `json:"username" binding:"max=32" example:"ada_l"`
	Password  string `json:"password" example:"secret123"`
	FirstName string `json:"first_name" binding:"max=16" example:"Ada"`
	LastName  string `json:"last_name" binding:"max=16" example:"Lovelace"`
	Email     string `json:"email" binding:"max=32" example:"ada@example.com"`
	Phone     string `json:"phone" binding:"max=13" example:"+15550100"`
}

// CreateUser godoc
// @Summary Register a user
// @Description The first user ever registered becomes an admin.
// @Tags Users
// @Accept json
// @Produce json
// @Param body body CreateUserRequest true "New user"
// @Success 201 {object} map[string]string
// @Header 201 {string} Location "URL of the new user"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/users [post]
func (h *Handler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendError(c, http.StatusBadRequest, utils.BindingMessage(err, "Invalid request body"))
		return
	}

	user, err := h.service.Register(c.Request.Context(), RegisterInput(req), utils.ClientIP(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.Header("Location", utils.AbsoluteURL(c, h.baseURL, "/api/v1/users/"+strconv.FormatUint(uint64(user.ID), 10)))
	c.JSON(http.StatusCreated, gin.H{"username": user.Username})
}

// GetUser godoc
// @Summary Public profile of a user
// @Tags Users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} UserProfile
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/users/{id} [get]
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := utils.ParseID(c, "id")
	if !ok {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	user, err := h.service.GetUserByID(c.Request.Context(), id)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user.Profile())
}

type UserListResponse struct {
	Status string        `json:"status" example:"success"`
	Count  int           `json:"count" example:"1"`
	Users  []UserSummary `json:"users"`
}

// ListUsers godoc
// @Summary List all users
// @Tags Users
// @Produce json
// @Security BasicAuth
// @Success 200 {object} UserListResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/users [get]
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	out := make([]UserSummary, 0, len(users))
	for _, u := range users {
		out = append(out, u.Summary())
	}

	c.JSON(http.StatusOK, UserListResponse{Status: utils.StatusSuccess, Count: len(out), Users: out})
}

// PromoteAdmin godoc
// @Summary Grant admin rights to a user
// @Tags Users
// @Produce json
// @Security BasicAuth
// @Param id path int true "User ID"
// @Success 200 {object} utils.StatusResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/admin/{id} [put]
func (h *Handler) PromoteAdmin(c *gin.Context) {
	principal, ok := CurrentUser(c)
	if !ok {
		utils.SendError(c, http.StatusUnauthorized, MsgUnauthorized)
		return
	}

	id, ok := utils.ParseID(c, "id")
	if !ok {
		utils.SendError(c, http.StatusNotFound, "User not found")
		return
	}

	if _, err := h.service.PromoteAdmin(c.Request.Context(), principal, id, utils.ClientIP(c)); err != nil {
		utils.RespondError(c, err)
		return
	}

	utils.SendStatus(c, utils.StatusSuccess, "new admin created")
}

// ===============================
// Tokens
// ===============================

type TokenResponse struct {
	Token    string `json:"token"`
	Duration int64  `json:"duration" example:"86400"` // seconds
}

// IssueToken godoc
// @Summary Exchange credentials for a bearer token
// @Tags Users
// @Produce json
// @Security BasicAuth
// @Success 200 {object} TokenResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /api/v1/token [get]
func (h *Handler) IssueToken(c *gin.Context) {
	principal, ok := CurrentUser(c)
	if !ok {
		utils.SendError(c, http.StatusUnauthorized, MsgUnauthorized)
		return
	}

	token, ttl, err := h.service.IssueToken(principal)
	if err != nil {
		utils.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, TokenResponse{Token: token, Duration: int64(ttl.Seconds())})
}
