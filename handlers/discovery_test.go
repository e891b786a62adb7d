package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"goodrunss/models"
	"goodrunss/services/discovery"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubDiscoveryService struct {
	err error
}

func (s *stubDiscoveryService) FindSimilarPlayers(context.Context, string, discovery.SimilarPlayersQuery) ([]models.PlayerMatch, error) {
	return nil, s.err
}

func (s *stubDiscoveryService) SmartSlotRecommendations(context.Context, string) (*models.SlotRecommendationSet, error) {
	return nil, s.err
}

func (s *stubDiscoveryService) DiscoverTrainers(context.Context, models.MatchPreferences) ([]models.TrainerMatch, error) {
	return nil, s.err
}

func errorBody(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestDiscoveryEndpointsRejectMissingIdentity(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewDiscoveryHandler(&stubDiscoveryService{}, zap.NewNop())

	r := gin.New()
	r.GET("/similar-players", h.FindSimilarPlayers)
	r.GET("/slot-recommendations", h.SmartSlotRecommendations)
	r.POST("/trainers", h.DiscoverTrainers)

	for _, tc := range []struct{ method, path string }{
		{http.MethodGet, "/similar-players"},
		{http.MethodGet, "/slot-recommendations"},
		{http.MethodPost, "/trainers"},
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(tc.method, tc.path, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
		assert.Equal(t, "unauthenticated", errorBody(t, w)["message"], "%s %s", tc.method, tc.path)
	}
}

func TestDiscoveryStoreFailureKeepsOriginalMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := NewDiscoveryHandler(&stubDiscoveryService{
		err: errors.New("failed to retrieve players: connection reset"),
	}, zap.NewNop())

	r := gin.New()
	r.GET("/similar-players", func(c *gin.Context) {
		c.Set("playerID", "p1")
		h.FindSimilarPlayers(c)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/similar-players?city=Austin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	body := errorBody(t, w)
	assert.Equal(t, "internal", body["message"])
	assert.Contains(t, body["details"], "connection reset")
}
