package trainerRepo

import "goodrunss/models"

// TrainerSearchCriteria describes a trainer catalog query.
type TrainerSearchCriteria struct {
	Activities    []string
	LocationGeo   models.GeoPoint
	MaxDistanceKm float64
}

// TrainerRepository defines persistence operations for trainers.
type TrainerRepository interface {
	Create(t *models.Trainer) error
	GetByID(id string) (*models.Trainer, error)
	// AdvancedSearch matches trainers by activity and proximity.
	AdvancedSearch(criteria TrainerSearchCriteria) ([]models.Trainer, error)
	UpdateStripeAccount(id, accountID string, payoutsEnabled bool) error
}
