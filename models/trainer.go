package models

import "time"

// Trainer is a coach or instructor offering paid sessions.
type Trainer struct {
	ID              string    `bson:"id" json:"id"`
	Name            string    `bson:"name" json:"name"`
	Avatar          string    `bson:"avatar,omitempty" json:"avatar,omitempty"`
	Bio             string    `bson:"bio,omitempty" json:"bio,omitempty"`
	Activities      []string  `bson:"activities" json:"activities"` // sports/modalities taught
	City            string    `bson:"city" json:"city,omitempty"`
	LocationGeo     GeoPoint  `bson:"locationGeo" json:"locationGeo"`
	Rating          float64   `bson:"rating" json:"rating"` // 0-5 aggregate
	ReviewCount     int       `bson:"reviewCount" json:"reviewCount"`
	HourlyRate      float64   `bson:"hourlyRate" json:"hourlyRate"`
	Verified        bool      `bson:"verified" json:"verified"`
	StripeAccountID string    `bson:"stripeAccountID,omitempty" json:"-"`
	PayoutsEnabled  bool      `bson:"payoutsEnabled" json:"payoutsEnabled"`
	LastActiveAt    time.Time `bson:"lastActiveAt" json:"lastActiveAt,omitzero"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt       time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}
