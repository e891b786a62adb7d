package handlers

import (
	"net/http"

	"goodrunss/database/repository/venue"
	"goodrunss/models"
	"goodrunss/services/quality"
	"goodrunss/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// VenueHandler exposes venue records and their computed quality ratings.
type VenueHandler struct {
	Repo   venueRepo.VenueRepository
	Logger *zap.Logger
}

func NewVenueHandler(repo venueRepo.VenueRepository, logger *zap.Logger) *VenueHandler {
	return &VenueHandler{Repo: repo, Logger: logger}
}

// GetVenueRating handles GET /api/venues/:id/rating. The rating is computed
// fresh on every call and is never persisted.
func (h *VenueHandler) GetVenueRating(c *gin.Context) {
	id := c.Param("id")

	venue, err := h.Repo.GetByID(id)
	if err != nil {
		h.Logger.Error("GetVenueRating: fetch failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	if venue == nil {
		utils.JSONError(c, http.StatusNotFound, "venue not found", id)
		return
	}

	// A venue whose attributes can't be decoded still gets the neutral
	// default rather than an error.
	attrs, err := venue.QualityAttributes()
	if err != nil {
		h.Logger.Warn("GetVenueRating: attributes unavailable, using default",
			zap.String("venueID", id), zap.Error(err))
	}

	rating := quality.CalculateRating(venue.Sport, attrs, venue.ReviewCount)
	c.JSON(http.StatusOK, gin.H{"venueId": id, "rating": rating})
}

// GetVenue handles GET /api/venues/:id.
func (h *VenueHandler) GetVenue(c *gin.Context) {
	id := c.Param("id")

	venue, err := h.Repo.GetByID(id)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	if venue == nil {
		utils.JSONError(c, http.StatusNotFound, "venue not found", id)
		return
	}
	c.JSON(http.StatusOK, venue)
}

// ListVenuesBySport handles GET /api/venues?sport=...
func (h *VenueHandler) ListVenuesBySport(c *gin.Context) {
	sport := c.Query("sport")
	if sport == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid query", "sport is required")
		return
	}

	venues, err := h.Repo.GetBySport(sport, 50)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"venues": venues})
}

// AddVenueReview handles POST /api/venues/:id/reviews.
func (h *VenueHandler) AddVenueReview(c *gin.Context) {
	playerID := c.GetString("playerID")
	if playerID == "" {
		utils.JSONError(c, http.StatusUnauthorized, "unauthenticated", "caller identity missing")
		return
	}

	var review models.Review
	if err := c.ShouldBindJSON(&review); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	review.Author = playerID

	if err := h.Repo.AddReview(c.Param("id"), review); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// CreateVenue handles POST /api/venues.
func (h *VenueHandler) CreateVenue(c *gin.Context) {
	var venue models.Venue
	if err := c.ShouldBindJSON(&venue); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if venue.ID == "" {
		venue.ID = uuid.New().String()
	}

	if err := h.Repo.Create(&venue); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	c.JSON(http.StatusCreated, venue)
}
