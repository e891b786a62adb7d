package routes

import (
	"testing"

	"goodrunss/handlers"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registeredPaths(t *testing.T) map[string]bool {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	RegisterRoutes(r, &HandlerBundle{
		Players:   &handlers.PlayerHandler{},
		Discovery: &handlers.DiscoveryHandler{},
		Venues:    &handlers.VenueHandler{},
		Trainers:  &handlers.TrainerHandler{},
		Storage:   &handlers.StorageHandler{},
	})

	paths := make(map[string]bool)
	for _, ri := range r.Routes() {
		paths[ri.Method+" "+ri.Path] = true
	}
	require.NotEmpty(t, paths)
	return paths
}

func TestVenueRoutesUseBareIDSegment(t *testing.T) {
	paths := registeredPaths(t)

	assert.True(t, paths["GET /api/venues/:id"])
	assert.True(t, paths["GET /api/venues/:id/rating"])
	assert.True(t, paths["POST /api/venues/:id/reviews"])
	assert.True(t, paths["POST /api/venues/:id/photos"])
	assert.False(t, paths["GET /api/venues/id/:id"])
}

func TestCoreEndpointsAreRegistered(t *testing.T) {
	paths := registeredPaths(t)

	for _, p := range []string{
		"GET /health",
		"POST /api/players/register",
		"POST /api/players/login",
		"GET /api/discovery/similar-players",
		"GET /api/discovery/slot-recommendations",
		"POST /api/discovery/trainers",
		"POST /api/trainers/:id/payouts/onboard",
	} {
		assert.True(t, paths[p], p)
	}
}
