package models

import "time"

// GeoPoint represents a GeoJSON Point.
type GeoPoint struct {
	Type        string    `bson:"type" json:"type"`               // Always "Point"
	Coordinates []float64 `bson:"coordinates" json:"coordinates"` // [longitude, latitude]
}

// NewGeoPoint builds a GeoJSON point from a longitude/latitude pair.
func NewGeoPoint(lon, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: []float64{lon, lat}}
}

type Review struct {
	Rating  float64   `bson:"rating" json:"rating"` // Expected value between 1 and 5.
	Comment string    `bson:"comment" json:"comment"`
	Author  string    `bson:"author" json:"author"`
	Date    time.Time `bson:"date" json:"date"`
}
