package discovery

import (
	"context"
	"errors"
	"testing"
	"time"

	"goodrunss/database/repository/trainer"
	"goodrunss/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTrainerRepo struct {
	trainers     []models.Trainer
	err          error
	lastCriteria trainerRepo.TrainerSearchCriteria
	calls        int
}

func (f *fakeTrainerRepo) Create(*models.Trainer) error            { return nil }
func (f *fakeTrainerRepo) GetByID(string) (*models.Trainer, error) { return nil, nil }
func (f *fakeTrainerRepo) UpdateStripeAccount(string, string, bool) error {
	return nil
}
func (f *fakeTrainerRepo) AdvancedSearch(criteria trainerRepo.TrainerSearchCriteria) ([]models.Trainer, error) {
	f.calls++
	f.lastCriteria = criteria
	return f.trainers, f.err
}

func austin() *models.GeoPoint {
	p := models.NewGeoPoint(-97.7431, 30.2672)
	return &p
}

func sampleTrainers(now time.Time) []models.Trainer {
	return []models.Trainer{
		{
			ID: "t1", Name: "Ace", Activities: []string{"Tennis"},
			Rating: 4.8, HourlyRate: 90,
			LocationGeo:  models.NewGeoPoint(-97.75, 30.27),
			LastActiveAt: now.Add(-time.Hour),
		},
		{
			ID: "t2", Name: "Budget", Activities: []string{"Tennis", "Pickleball"},
			Rating: 4.0, HourlyRate: 40,
			LocationGeo:  models.NewGeoPoint(-97.70, 30.25),
			LastActiveAt: now.Add(-30 * 24 * time.Hour),
		},
		{
			ID: "t3", Name: "Other", Activities: []string{"Golf"},
			Rating: 4.9, HourlyRate: 120,
			LocationGeo:  models.NewGeoPoint(-97.74, 30.26),
			LastActiveAt: now.Add(-time.Hour),
		},
	}
}

func TestDiscoverTrainersScoredMode(t *testing.T) {
	repo := &fakeTrainerRepo{trainers: sampleTrainers(time.Now())}
	svc := &DefaultDiscoveryService{TrainerRepo: repo}

	matches, err := svc.DiscoverTrainers(context.Background(), models.MatchPreferences{
		Activities: []string{"Tennis"},
		Location:   austin(),
	})
	require.NoError(t, err)
	require.Len(t, matches, 3)

	// t1: base 50 + activity 30 + rating 20 + recency 10.
	assert.Equal(t, "t1", matches[0].Trainer.ID)
	assert.Equal(t, 110, matches[0].MatchScore)
	assert.Equal(t, []string{"Teaches Tennis", "Highly rated", "Recently active"},
		matches[0].MatchReasons)

	// t3: base 50 + rating 20 + recency 10, no activity match.
	byID := map[string]int{}
	for _, m := range matches {
		byID[m.Trainer.ID] = m.MatchScore
	}
	assert.Equal(t, 80, byID["t2"]) // base + activity only
	assert.Equal(t, 80, byID["t3"])

	assert.Equal(t, []string{"Tennis"}, repo.lastCriteria.Activities)
	assert.Greater(t, matches[0].Distance, 0.0)
}

func TestDiscoverTrainersNearbyModeSkipsScoring(t *testing.T) {
	repo := &fakeTrainerRepo{trainers: sampleTrainers(time.Now())}
	svc := &DefaultDiscoveryService{TrainerRepo: repo}

	matches, err := svc.DiscoverTrainers(context.Background(), models.MatchPreferences{Location: austin()})
	require.NoError(t, err)
	require.Len(t, matches, 3)

	for _, m := range matches {
		assert.Zero(t, m.MatchScore)
		assert.Empty(t, m.MatchReasons)
		assert.Greater(t, m.Distance, 0.0)
	}
	// No activity filter reaches the store.
	assert.Empty(t, repo.lastCriteria.Activities)
}

func TestDiscoverTrainersSurfacesStoreFailure(t *testing.T) {
	repo := &fakeTrainerRepo{err: errors.New("no reachable servers")}
	svc := &DefaultDiscoveryService{TrainerRepo: repo}

	_, err := svc.DiscoverTrainers(context.Background(), models.MatchPreferences{
		Activities: []string{"Tennis"},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no reachable servers")
	assert.Equal(t, 1, repo.calls) // no retry
}

func TestDiscoverTrainersNearbyRequiresLocation(t *testing.T) {
	svc := &DefaultDiscoveryService{TrainerRepo: &fakeTrainerRepo{}}
	_, err := svc.DiscoverTrainers(context.Background(), models.MatchPreferences{})
	assert.Error(t, err)
}

func TestSortTrainerMatchesNeverReQueries(t *testing.T) {
	repo := &fakeTrainerRepo{trainers: sampleTrainers(time.Now())}
	svc := &DefaultDiscoveryService{TrainerRepo: repo}

	matches, err := svc.DiscoverTrainers(context.Background(), models.MatchPreferences{
		Activities: []string{"Tennis"},
		Location:   austin(),
	})
	require.NoError(t, err)
	fetches := repo.calls

	byPrice := SortTrainerMatches(matches, "price")
	byRating := SortTrainerMatches(matches, "rating")
	byDistance := SortTrainerMatches(matches, "distance")

	assert.Equal(t, fetches, repo.calls)

	assert.Equal(t, "t2", byPrice[0].Trainer.ID)
	assert.Equal(t, "t3", byRating[0].Trainer.ID)
	assert.Len(t, byDistance, len(matches))

	// Re-sorting never mutates the fetched window.
	assert.Equal(t, "t1", matches[0].Trainer.ID)
}
