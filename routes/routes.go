package routes

import (
	"net/http"
	"time"

	"goodrunss/database/repository/player"
	"goodrunss/handlers"
	"goodrunss/middleware"
	"goodrunss/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups the constructed handlers for route registration.
type HandlerBundle struct {
	PlayerRepo playerRepo.PlayerRepository

	Players   *handlers.PlayerHandler
	Discovery *handlers.DiscoveryHandler
	Venues    *handlers.VenueHandler
	Trainers  *handlers.TrainerHandler
	Storage   *handlers.StorageHandler
}

// RegisterRoutes wires all endpoints onto the router.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})

	auth := middleware.JWTAuthPlayerMiddleware(hb.PlayerRepo)

	players := r.Group("/api/players")
	{
		players.POST("/register", hb.Players.RegisterPlayer)
		players.POST("/login", hb.Players.AuthenticatePlayer)

		players.Use(auth)
		players.GET("/:id", hb.Players.GetPlayer)
		players.PUT("/fcm-token", hb.Players.UpdateFCMToken)
	}

	discovery := r.Group("/api/discovery")
	discovery.Use(auth)
	{
		discovery.GET("/similar-players", hb.Discovery.FindSimilarPlayers)
		discovery.GET("/slot-recommendations", hb.Discovery.SmartSlotRecommendations)
		discovery.POST("/trainers", hb.Discovery.DiscoverTrainers)
	}

	venues := r.Group("/api/venues")
	{
		venues.GET("/:id", hb.Venues.GetVenue)
		venues.GET("/:id/rating", hb.Venues.GetVenueRating)
		venues.GET("", hb.Venues.ListVenuesBySport)

		venues.Use(auth)
		venues.POST("", hb.Venues.CreateVenue)
		venues.POST("/:id/reviews", hb.Venues.AddVenueReview)
		venues.POST("/:id/photos", hb.Storage.UploadVenuePhoto)
	}

	trainers := r.Group("/api/trainers")
	trainers.Use(auth)
	{
		trainers.GET("/:id", hb.Trainers.GetTrainer)
		trainers.POST("/:id/payouts/onboard", hb.Trainers.OnboardTrainerPayouts)
		trainers.POST("/:id/payouts/sync", hb.Trainers.SyncTrainerPayoutStatus)
	}
}
