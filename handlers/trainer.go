package handlers

import (
	"net/http"

	"goodrunss/database/repository/trainer"
	"goodrunss/services/payment"
	"goodrunss/utils"

	"github.com/gin-gonic/gin"
)

// TrainerHandler exposes trainer records and payout onboarding.
type TrainerHandler struct {
	Repo    trainerRepo.TrainerRepository
	Connect payment.ConnectService
}

func NewTrainerHandler(repo trainerRepo.TrainerRepository, connect payment.ConnectService) *TrainerHandler {
	return &TrainerHandler{Repo: repo, Connect: connect}
}

// GetTrainer handles GET /api/trainers/:id.
func (h *TrainerHandler) GetTrainer(c *gin.Context) {
	t, err := h.Repo.GetByID(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	if t == nil {
		utils.JSONError(c, http.StatusNotFound, "trainer not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, t)
}

// OnboardTrainerPayouts handles POST /api/trainers/:id/payouts/onboard.
func (h *TrainerHandler) OnboardTrainerPayouts(c *gin.Context) {
	var req struct {
		Email      string `json:"email" binding:"required,email"`
		RefreshURL string `json:"refreshUrl" binding:"required"`
		ReturnURL  string `json:"returnUrl" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	url, err := h.Connect.OnboardTrainer(c.Param("id"), req.Email, req.RefreshURL, req.ReturnURL)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"onboardingUrl": url})
}

// SyncTrainerPayoutStatus handles POST /api/trainers/:id/payouts/sync.
func (h *TrainerHandler) SyncTrainerPayoutStatus(c *gin.Context) {
	enabled, err := h.Connect.SyncPayoutStatus(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"payoutsEnabled": enabled})
}
