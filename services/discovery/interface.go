package discovery

import (
	"context"

	"goodrunss/database/repository/booking"
	"goodrunss/database/repository/player"
	"goodrunss/database/repository/trainer"
	"goodrunss/models"

	"github.com/go-redis/redis/v8"
)

// SimilarPlayersQuery is the criteria for a similar-players search.
type SimilarPlayersQuery struct {
	Sport      string `form:"sport" json:"sport"`
	SkillLevel string `form:"skillLevel" json:"skillLevel"`
	City       string `form:"city" json:"city"`
	Limit      int    `form:"limit" json:"limit"`
}

// DiscoveryService defines the matching and recommendation queries. All three
// are read-only; the scoring itself is pure computation over a snapshot of
// fetched records.
type DiscoveryService interface {
	// FindSimilarPlayers ranks players in the query city by similarity to the
	// caller's criteria. The caller never appears in its own results.
	FindSimilarPlayers(ctx context.Context, callerID string, q SimilarPlayersQuery) ([]models.PlayerMatch, error)
	// SmartSlotRecommendations mines the caller's recent bookings for a
	// preferred hour and weekday and projects booking slots a week ahead.
	SmartSlotRecommendations(ctx context.Context, callerID string) (*models.SlotRecommendationSet, error)
	// DiscoverTrainers runs a scored search when activities are given, or a
	// plain proximity search when they are not.
	DiscoverTrainers(ctx context.Context, prefs models.MatchPreferences) ([]models.TrainerMatch, error)
}

// DefaultDiscoveryService is the production implementation.
type DefaultDiscoveryService struct {
	PlayerRepo  playerRepo.PlayerRepository
	TrainerRepo trainerRepo.TrainerRepository
	BookingRepo bookingRepo.BookingRepository
	CacheClient *redis.Client
}
