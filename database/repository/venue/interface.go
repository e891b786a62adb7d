package venueRepo

import "goodrunss/models"

// VenueRepository defines persistence operations for venues.
type VenueRepository interface {
	Create(v *models.Venue) error
	GetByID(id string) (*models.Venue, error)
	GetBySport(sport string, limit int64) ([]models.Venue, error)
	AddPhoto(id, url string) error
	AddReview(id string, review models.Review) error
}
