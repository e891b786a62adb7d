package player

import "goodrunss/models"

// RegisterRequest is the signup payload.
type RegisterRequest struct {
	Name           string   `json:"name" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	Password       string   `json:"password" binding:"required,min=8"`
	City           string   `json:"city"`
	FavoriteSports []string `json:"favoriteSports"`
	SkillLevel     string   `json:"skillLevel"`
}

// AuthResponse carries the signed-in player and their session token.
type AuthResponse struct {
	Player models.Player `json:"player"`
	Token  string        `json:"token"`
}

// PlayerService defines account operations for players.
type PlayerService interface {
	Register(req RegisterRequest) (*AuthResponse, error)
	Authenticate(email, password string) (*AuthResponse, error)
	GetByID(id string) (*models.Player, error)
	UpdateFCMToken(id, token string) error
}
