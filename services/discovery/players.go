package discovery

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"goodrunss/models"
	"goodrunss/utils"
)

// Scoring constants. Bonuses are independent and stack.
const (
	baseCityScore = 50 // every candidate in the query city starts here
	sportBonus    = 30 // candidate's favorite sports contain the queried sport
	skillBonus    = 20 // exact skill level match
	recencyBonus  = 10 // active within the last 7 days

	recencyWindow = 7 * 24 * time.Hour

	// catalogWindow bounds how many candidates a single search scores over.
	catalogWindow = 200

	defaultPlayerLimit = 10
)

// FindSimilarPlayers retrieves a ranked list of players similar to the
// caller's criteria. It first attempts to retrieve the result from cache; if
// not found, it computes the match and caches it.
func (s *DefaultDiscoveryService) FindSimilarPlayers(ctx context.Context, callerID string, q SimilarPlayersQuery) ([]models.PlayerMatch, error) {
	if q.Limit <= 0 {
		q.Limit = defaultPlayerLimit
	}

	// Create a cache key based on the JSON representation of the query.
	queryBytes, err := json.Marshal(q)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal similar-players query: %w", err)
	}
	cacheKey := fmt.Sprintf("similar:%s:%x", callerID, queryBytes)

	// Try to get from cache.
	cached, err := s.CacheClient.Get(ctx, cacheKey).Result()
	if err == nil && cached != "" {
		var matches []models.PlayerMatch
		if err := json.Unmarshal([]byte(cached), &matches); err == nil {
			return matches, nil
		}
		// If unmarshal fails, we fall through to re-computation.
	}

	candidates, err := s.PlayerRepo.GetByCity(q.City, catalogWindow)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve players: %w", err)
	}

	matches := scorePlayers(callerID, q, candidates, time.Now())
	if len(matches) > q.Limit {
		matches = matches[:q.Limit]
	}

	// Cache the result for 5 minutes.
	if matchedBytes, err := json.Marshal(matches); err == nil {
		s.CacheClient.Set(ctx, cacheKey, matchedBytes, utils.MatchCacheTTL)
	}

	return matches, nil
}

// scorePlayers computes a match score per candidate and ranks descending.
// Ties keep catalog order: the sort is stable and no secondary key is
// applied, so equal scores come back in the order the store returned them.
func scorePlayers(callerID string, q SimilarPlayersQuery, candidates []models.Player, now time.Time) []models.PlayerMatch {
	matches := make([]models.PlayerMatch, 0, len(candidates))
	for _, p := range candidates {
		if p.ID == callerID {
			continue
		}

		score := baseCityScore
		if q.Sport != "" && containsString(p.FavoriteSports, q.Sport) {
			score += sportBonus
		}
		if q.SkillLevel != "" && p.SkillLevel == q.SkillLevel {
			score += skillBonus
		}
		if !p.LastActiveAt.IsZero() && now.Sub(p.LastActiveAt) <= recencyWindow {
			score += recencyBonus
		}

		matches = append(matches, models.PlayerMatch{
			ID:         p.ID,
			Name:       p.Name,
			Avatar:     p.Avatar,
			Sports:     p.FavoriteSports,
			SkillLevel: p.SkillLevel,
			MatchScore: score,
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchScore > matches[j].MatchScore
	})
	return matches
}

func containsString(list []string, want string) bool {
	for _, s := range list {
		if s == want {
			return true
		}
	}
	return false
}
