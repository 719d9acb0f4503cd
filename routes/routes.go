package routes

import (
	"net/http"
	"time"

	"quickfind/handlers"
	"quickfind/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterQuickFindRoutes sets up the endpoints for the matching and
// negotiation protocol.
func RegisterQuickFindRoutes(r *gin.Engine, qf *handlers.QuickFindHandler) {
	api := r.Group("/api/quickfind")
	{
		// Client-facing steps require a user session.
		client := api.Group("")
		client.Use(middleware.JWTAuthUserMiddleware())
		client.GET("/nearby", qf.SearchNearbyHandler)
		client.POST("/request", qf.RequestHandler)
		client.POST("/confirm", qf.ConfirmHandler)

		// Providers answer solicitations with their own session.
		provider := api.Group("")
		provider.Use(middleware.JWTAuthProviderMiddleware())
		provider.POST("/respond", qf.RespondHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm QuickFind"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, qf *handlers.QuickFindHandler) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterQuickFindRoutes(r, qf)
}
