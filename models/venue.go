package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// Venue is a playable location: a court, course, field or studio.
type Venue struct {
	ID          string   `bson:"id" json:"id"`
	Name        string   `bson:"name" json:"name"`
	Sport       string   `bson:"sport" json:"sport"`
	Address     string   `bson:"address" json:"address,omitempty"`
	City        string   `bson:"city" json:"city,omitempty"`
	LocationGeo GeoPoint `bson:"locationGeo" json:"locationGeo"`
	Photos      []string `bson:"photos,omitempty" json:"photos,omitempty"`

	// Quality holds the sport-specific condition sub-document. It stays raw
	// until decoded against the venue's sport.
	Quality bson.Raw `bson:"quality,omitempty" json:"-"`

	Reviews     []Review  `bson:"reviews,omitempty" json:"reviews,omitempty"`
	ReviewCount int       `bson:"reviewCount" json:"reviewCount"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// QualityAttributes decodes the stored quality sub-document into the variant
// for this venue's sport.
func (v *Venue) QualityAttributes() (QualityAttributes, error) {
	return DecodeQualityAttributes(v.Sport, v.Quality)
}
