package models

// MatchPreferences are a seeker's criteria for trainer discovery. Built per
// search, never persisted.
type MatchPreferences struct {
	Activities    []string  `json:"activities"`
	Location      *GeoPoint `json:"location,omitempty"`
	MaxDistanceKm float64   `json:"maxDistanceKm,omitempty"`
	Limit         int       `json:"limit,omitempty"`
}

// PlayerMatch is a candidate player with its computed similarity score.
// Computed fresh per search and never mutated afterwards.
type PlayerMatch struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Avatar     string   `json:"avatar,omitempty"`
	Sports     []string `json:"sports"`
	SkillLevel string   `json:"skillLevel"`
	MatchScore int      `json:"matchScore"`
}

// TrainerMatch is a candidate trainer with its computed match score, the
// ordered reasons behind it, and the distance from the seeker.
type TrainerMatch struct {
	Trainer      Trainer  `json:"trainer"`
	MatchScore   int      `json:"matchScore"`
	MatchReasons []string `json:"matchReasons,omitempty"`
	Distance     float64  `json:"distance,omitempty"` // km
}

// SlotRecommendation is one suggested booking slot.
type SlotRecommendation struct {
	Date     string `json:"date"` // YYYY-MM-DD
	Time     string `json:"time"` // HH:00
	Reason   string `json:"reason"`
	Priority int    `json:"priority"`
}

// BookingPattern is the mined habit of a player's recent bookings.
type BookingPattern struct {
	PreferredHour string `json:"preferredHour"` // e.g. "18"
	PreferredDay  string `json:"preferredDay"`  // e.g. "Sat"
}

// SlotRecommendationSet is the full response of the smart-slot query.
type SlotRecommendationSet struct {
	Recommendations []SlotRecommendation `json:"recommendations"`
	UserPattern     BookingPattern       `json:"userPattern"`
}
