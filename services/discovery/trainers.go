package discovery

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"goodrunss/database/repository/trainer"
	"goodrunss/models"
)

// Trainer scoring constants.
const (
	trainerBaseScore     = 50
	activityBonus        = 30 // teaches the seeker's primary activity
	highRatingBonus      = 20 // aggregate rating of 4.5 or better
	trainerRecencyBonus  = 10 // active within the last 7 days
	highRatingThreshold  = 4.5
	defaultTrainerLimit  = 20
	defaultMaxDistanceKm = 50
)

// DiscoverTrainers composes the two trainer search modes. Without activities
// it degrades to a pure proximity search with no scoring; with activities it
// runs the scored fetch. Re-sorting a returned window is the client's concern
// (SortTrainerMatches) and never re-queries.
func (s *DefaultDiscoveryService) DiscoverTrainers(ctx context.Context, prefs models.MatchPreferences) ([]models.TrainerMatch, error) {
	if prefs.Limit <= 0 {
		prefs.Limit = defaultTrainerLimit
	}
	if prefs.MaxDistanceKm <= 0 {
		prefs.MaxDistanceKm = defaultMaxDistanceKm
	}

	if len(prefs.Activities) == 0 {
		return s.nearbyTrainers(prefs)
	}
	return s.scoredTrainers(prefs)
}

// nearbyTrainers returns trainers around the seeker, nearest first, without
// match scores.
func (s *DefaultDiscoveryService) nearbyTrainers(prefs models.MatchPreferences) ([]models.TrainerMatch, error) {
	if prefs.Location == nil || len(prefs.Location.Coordinates) < 2 {
		return nil, fmt.Errorf("nearby trainer search requires a location")
	}

	criteria := trainerRepo.TrainerSearchCriteria{
		LocationGeo:   *prefs.Location,
		MaxDistanceKm: prefs.MaxDistanceKm,
	}
	trainers, err := s.TrainerRepo.AdvancedSearch(criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to find nearby trainers: %w", err)
	}

	matches := make([]models.TrainerMatch, 0, len(trainers))
	for _, t := range trainers {
		matches = append(matches, models.TrainerMatch{
			Trainer:  t,
			Distance: distanceKm(*prefs.Location, t.LocationGeo),
		})
	}
	if len(matches) > prefs.Limit {
		matches = matches[:prefs.Limit]
	}
	return matches, nil
}

// scoredTrainers runs the scored recommendation fetch.
func (s *DefaultDiscoveryService) scoredTrainers(prefs models.MatchPreferences) ([]models.TrainerMatch, error) {
	criteria := trainerRepo.TrainerSearchCriteria{
		Activities:    prefs.Activities,
		MaxDistanceKm: prefs.MaxDistanceKm,
	}
	if prefs.Location != nil {
		criteria.LocationGeo = *prefs.Location
	}

	trainers, err := s.TrainerRepo.AdvancedSearch(criteria)
	if err != nil {
		return nil, fmt.Errorf("failed to match trainers: %w", err)
	}

	matches := scoreTrainers(prefs, trainers)
	if len(matches) > prefs.Limit {
		matches = matches[:prefs.Limit]
	}
	return matches, nil
}

// scoreTrainers computes a match score and its reasons per candidate. Reasons
// are appended in contribution order. Ranking is descending by score with
// distance, then id, as deterministic tie-breaks.
func scoreTrainers(prefs models.MatchPreferences, trainers []models.Trainer) []models.TrainerMatch {
	primary := prefs.Activities[0]

	matches := make([]models.TrainerMatch, 0, len(trainers))
	for _, t := range trainers {
		score := trainerBaseScore
		var reasons []string

		if containsString(t.Activities, primary) {
			score += activityBonus
			reasons = append(reasons, "Teaches "+primary)
		}
		if t.Rating >= highRatingThreshold {
			score += highRatingBonus
			reasons = append(reasons, "Highly rated")
		}
		if !t.LastActiveAt.IsZero() && time.Since(t.LastActiveAt) <= recencyWindow {
			score += trainerRecencyBonus
			reasons = append(reasons, "Recently active")
		}

		match := models.TrainerMatch{
			Trainer:      t,
			MatchScore:   score,
			MatchReasons: reasons,
		}
		if prefs.Location != nil && len(prefs.Location.Coordinates) >= 2 {
			match.Distance = distanceKm(*prefs.Location, t.LocationGeo)
		}
		matches = append(matches, match)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].MatchScore != matches[j].MatchScore {
			return matches[i].MatchScore > matches[j].MatchScore
		}
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Trainer.ID < matches[j].Trainer.ID
	})
	return matches
}

// SortTrainerMatches re-orders an already-fetched result window in place of
// the caller's copy. Switching sort criteria never changes the candidate set,
// only its order.
func SortTrainerMatches(matches []models.TrainerMatch, by string) []models.TrainerMatch {
	sorted := make([]models.TrainerMatch, len(matches))
	copy(sorted, matches)

	switch by {
	case "distance":
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Distance < sorted[j].Distance
		})
	case "rating":
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Trainer.Rating > sorted[j].Trainer.Rating
		})
	case "price":
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Trainer.HourlyRate < sorted[j].Trainer.HourlyRate
		})
	default: // "match"
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].MatchScore > sorted[j].MatchScore
		})
	}
	return sorted
}

func distanceKm(from, to models.GeoPoint) float64 {
	if len(from.Coordinates) < 2 || len(to.Coordinates) < 2 {
		return 0
	}
	return haversine(from.Coordinates[1], from.Coordinates[0], to.Coordinates[1], to.Coordinates[0])
}

// haversine calculates the great-circle distance (in km) between two lat/lon points.
func haversine(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371
	dLat := (lat2 - lat1) * (math.Pi / 180)
	dLon := (lon2 - lon1) * (math.Pi / 180)
	lat1Rad := lat1 * (math.Pi / 180)
	lat2Rad := lat2 * (math.Pi / 180)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return R * c
}
