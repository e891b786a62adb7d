package playerRepo

import "goodrunss/models"

// PlayerRepository defines persistence operations for players.
type PlayerRepository interface {
	Create(p *models.Player) error
	GetByID(id string) (*models.Player, error)
	GetByEmail(email string) (*models.Player, error)
	// GetByCity returns a window of players in the given city, in catalog order.
	GetByCity(city string, limit int64) ([]models.Player, error)
	UpdateTokenHash(id, tokenHash string) error
	TouchLastActive(id string) error
	UpdateFCMToken(id, token string) error
}
