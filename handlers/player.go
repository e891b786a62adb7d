package handlers

import (
	"net/http"

	"goodrunss/services/player"
	"goodrunss/utils"

	"github.com/gin-gonic/gin"
)

// PlayerHandler exposes player account endpoints.
type PlayerHandler struct {
	Svc player.PlayerService
}

func NewPlayerHandler(svc player.PlayerService) *PlayerHandler {
	return &PlayerHandler{Svc: svc}
}

// RegisterPlayer handles POST /api/players/register.
func (h *PlayerHandler) RegisterPlayer(c *gin.Context) {
	var req player.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Svc.Register(req)
	if err != nil {
		utils.JSONError(c, http.StatusConflict, "registration failed", err.Error())
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// AuthenticatePlayer handles POST /api/players/login.
func (h *PlayerHandler) AuthenticatePlayer(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Svc.Authenticate(req.Email, req.Password)
	if err != nil {
		utils.JSONError(c, http.StatusUnauthorized, "authentication failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GetPlayer handles GET /api/players/:id.
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	p, err := h.Svc.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "player not found", err.Error())
		return
	}
	c.JSON(http.StatusOK, p)
}

// UpdateFCMToken handles PUT /api/players/fcm-token for the caller.
func (h *PlayerHandler) UpdateFCMToken(c *gin.Context) {
	playerID := c.GetString("playerID")
	if playerID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated", "caller identity missing")
		return
	}

	var req struct {
		Token string `json:"token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Svc.UpdateFCMToken(playerID, req.Token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
