package handlers

import (
	"net/http"

	"goodrunss/models"
	"goodrunss/services/discovery"
	"goodrunss/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DiscoveryHandler exposes the matching and recommendation queries.
type DiscoveryHandler struct {
	Svc    discovery.DiscoveryService
	Logger *zap.Logger
}

func NewDiscoveryHandler(svc discovery.DiscoveryService, logger *zap.Logger) *DiscoveryHandler {
	return &DiscoveryHandler{Svc: svc, Logger: logger}
}

// callerID pulls the authenticated player's ID set by the auth middleware.
// Requests without one are rejected before any computation.
func callerID(c *gin.Context) (string, bool) {
	id := c.GetString("playerID")
	if id == "" {
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated", "caller identity missing")
		return "", false
	}
	return id, true
}

// FindSimilarPlayers handles GET /api/discovery/similar-players.
func (h *DiscoveryHandler) FindSimilarPlayers(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	var q discovery.SimilarPlayersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", err.Error())
		return
	}

	matches, err := h.Svc.FindSimilarPlayers(c, id, q)
	if err != nil {
		h.Logger.Error("FindSimilarPlayers failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"players": matches})
}

// SmartSlotRecommendations handles GET /api/discovery/slot-recommendations.
func (h *DiscoveryHandler) SmartSlotRecommendations(c *gin.Context) {
	id, ok := callerID(c)
	if !ok {
		return
	}

	set, err := h.Svc.SmartSlotRecommendations(c, id)
	if err != nil {
		h.Logger.Error("SmartSlotRecommendations failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	c.JSON(http.StatusOK, set)
}

// DiscoverTrainers handles POST /api/discovery/trainers.
func (h *DiscoveryHandler) DiscoverTrainers(c *gin.Context) {
	if _, ok := callerID(c); !ok {
		return
	}

	var prefs models.MatchPreferences
	if err := c.ShouldBindJSON(&prefs); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	matches, err := h.Svc.DiscoverTrainers(c, prefs)
	if err != nil {
		h.Logger.Error("DiscoverTrainers failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", err.Error())
		return
	}

	// Optional client-local re-sort of the fetched window.
	if by := c.Query("sort"); by != "" {
		matches = discovery.SortTrainerMatches(matches, by)
	}

	c.JSON(http.StatusOK, gin.H{"trainers": matches})
}
