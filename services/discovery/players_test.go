package discovery

import (
	"context"
	"errors"
	"testing"
	"time"

	"goodrunss/models"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlayerRepo struct {
	players []models.Player
	err     error
	calls   int
}

func (f *fakePlayerRepo) Create(*models.Player) error                  { return nil }
func (f *fakePlayerRepo) GetByID(string) (*models.Player, error)       { return nil, nil }
func (f *fakePlayerRepo) GetByEmail(string) (*models.Player, error)    { return nil, nil }
func (f *fakePlayerRepo) UpdateTokenHash(string, string) error         { return nil }
func (f *fakePlayerRepo) TouchLastActive(string) error                 { return nil }
func (f *fakePlayerRepo) UpdateFCMToken(string, string) error          { return nil }
func (f *fakePlayerRepo) GetByCity(city string, limit int64) ([]models.Player, error) {
	f.calls++
	return f.players, f.err
}

func newPlayerService(t *testing.T, repo *fakePlayerRepo) *DefaultDiscoveryService {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return &DefaultDiscoveryService{
		PlayerRepo:  repo,
		CacheClient: client,
	}
}

func testCatalog(now time.Time) []models.Player {
	return []models.Player{
		{
			ID: "caller", Name: "Caller", City: "Austin",
			FavoriteSports: []string{"Basketball"}, SkillLevel: "Advanced",
			LastActiveAt: now,
		},
		{
			ID: "full-match", Name: "Full", City: "Austin",
			FavoriteSports: []string{"Basketball", "Tennis"}, SkillLevel: "Advanced",
			LastActiveAt: now.Add(-24 * time.Hour),
		},
		{
			ID: "no-sport", Name: "NoSport", City: "Austin",
			FavoriteSports: []string{"Soccer"}, SkillLevel: "Advanced",
			LastActiveAt: now.Add(-24 * time.Hour),
		},
		{
			ID: "stale", Name: "Stale", City: "Austin",
			FavoriteSports: []string{"Basketball"}, SkillLevel: "Advanced",
			LastActiveAt: now.Add(-30 * 24 * time.Hour),
		},
		{
			ID: "base-only", Name: "Base", City: "Austin",
			FavoriteSports: []string{"Golf"}, SkillLevel: "Beginner",
		},
	}
}

func TestFindSimilarPlayersScoring(t *testing.T) {
	repo := &fakePlayerRepo{players: testCatalog(time.Now())}
	svc := newPlayerService(t, repo)

	matches, err := svc.FindSimilarPlayers(context.Background(), "caller", SimilarPlayersQuery{
		Sport: "Basketball", SkillLevel: "Advanced", City: "Austin",
	})
	require.NoError(t, err)
	require.Len(t, matches, 4)

	// 50 base + 30 sport + 20 skill + 10 recency.
	assert.Equal(t, "full-match", matches[0].ID)
	assert.Equal(t, 110, matches[0].MatchScore)

	// Dropping the sport match costs 30: 50 + 20 + 10.
	byID := map[string]int{}
	for _, m := range matches {
		byID[m.ID] = m.MatchScore
	}
	assert.Equal(t, 80, byID["no-sport"])
	assert.Equal(t, 100, byID["stale"]) // no recency bonus
	assert.Equal(t, 50, byID["base-only"])
}

func TestFindSimilarPlayersExcludesCaller(t *testing.T) {
	repo := &fakePlayerRepo{players: testCatalog(time.Now())}
	svc := newPlayerService(t, repo)

	matches, err := svc.FindSimilarPlayers(context.Background(), "caller", SimilarPlayersQuery{
		Sport: "Basketball", SkillLevel: "Advanced", City: "Austin",
	})
	require.NoError(t, err)
	for _, m := range matches {
		assert.NotEqual(t, "caller", m.ID)
	}
}

func TestFindSimilarPlayersRespectsLimit(t *testing.T) {
	repo := &fakePlayerRepo{players: testCatalog(time.Now())}
	svc := newPlayerService(t, repo)

	matches, err := svc.FindSimilarPlayers(context.Background(), "caller", SimilarPlayersQuery{
		Sport: "Basketball", City: "Austin", Limit: 2,
	})
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestFindSimilarPlayersTiesKeepCatalogOrder(t *testing.T) {
	now := time.Now()
	repo := &fakePlayerRepo{players: []models.Player{
		{ID: "a", City: "Austin", LastActiveAt: now},
		{ID: "b", City: "Austin", LastActiveAt: now},
		{ID: "c", City: "Austin", LastActiveAt: now},
	}}
	svc := newPlayerService(t, repo)

	matches, err := svc.FindSimilarPlayers(context.Background(), "caller", SimilarPlayersQuery{City: "Austin"})
	require.NoError(t, err)
	require.Len(t, matches, 3)
	assert.Equal(t, []string{"a", "b", "c"},
		[]string{matches[0].ID, matches[1].ID, matches[2].ID})
}

func TestFindSimilarPlayersSurfacesStoreFailure(t *testing.T) {
	repo := &fakePlayerRepo{err: errors.New("connection reset by peer")}
	svc := newPlayerService(t, repo)

	_, err := svc.FindSimilarPlayers(context.Background(), "caller", SimilarPlayersQuery{City: "Austin"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset by peer")
	assert.Equal(t, 1, repo.calls) // no retry
}

func TestFindSimilarPlayersServesFromCache(t *testing.T) {
	repo := &fakePlayerRepo{players: testCatalog(time.Now())}
	svc := newPlayerService(t, repo)

	q := SimilarPlayersQuery{Sport: "Basketball", City: "Austin"}
	first, err := svc.FindSimilarPlayers(context.Background(), "caller", q)
	require.NoError(t, err)

	// The second identical query must not hit the store again.
	second, err := svc.FindSimilarPlayers(context.Background(), "caller", q)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, repo.calls)
}
