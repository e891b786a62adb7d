package bookingRepo

import (
	"time"

	"goodrunss/models"
)

// BookingRepository defines persistence operations for bookings.
type BookingRepository interface {
	Create(b *models.Booking) error
	// GetRecentByPlayer returns the player's most recent bookings, newest first.
	GetRecentByPlayer(playerID string, limit int64) ([]models.Booking, error)
	// GetUpcoming returns confirmed bookings starting within the window.
	GetUpcoming(within time.Duration) ([]models.Booking, error)
}
