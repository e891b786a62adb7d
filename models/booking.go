package models

import "time"

// Booking is a confirmed session between a player and a trainer or venue.
type Booking struct {
	ID        string    `bson:"id" json:"id"`
	PlayerID  string    `bson:"playerId" json:"playerId"`
	TrainerID string    `bson:"trainerId,omitempty" json:"trainerId,omitempty"`
	VenueID   string    `bson:"venueId,omitempty" json:"venueId,omitempty"`
	Activity  string    `bson:"activity" json:"activity"`
	StartTime time.Time `bson:"startTime" json:"startTime"`
	Duration  int       `bson:"duration" json:"duration"` // minutes
	Status    string    `bson:"status" json:"status"`     // confirmed/completed/cancelled
	CreatedAt time.Time `bson:"createdAt" json:"createdAt,omitzero"`
}

// Reminder payload queued for the async reminder worker.
type ReminderPayload struct {
	PlayerID  string `json:"playerId"`
	BookingID string `json:"bookingId"`
	Title     string `json:"title"`
	Body      string `json:"body"`
}
