package routes

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"music_recsys/internal/handlers"
)

func SetupRoutes(
	recommendationHandler *handlers.RecommendationHandler,
	searchHandler *handlers.SearchHandler,
	catalogHandler *handlers.CatalogHandler,
) *gin.Engine {

	router := gin.New()

	// =========================
	// GLOBAL MIDDLEWARE
	// =========================
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// =========================
	// CORS CONFIG (DEV / PROD)
	// =========================
	env := os.Getenv("ENV") // development | production
	frontendURL := os.Getenv("CORS_ORIGIN")

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}

	if env == "production" {
		if frontendURL == "" {
			log.Fatal("❌ CORS_ORIGIN environment variable is NOT set in production!")
		}
		corsConfig.AllowOrigins = []string{frontendURL}
		log.Printf("✅ CORS configured for production: %s", frontendURL)
	} else {
		allowedOrigins := []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:3000",
			"http://127.0.0.1:5173",
		}
		if frontendURL != "" {
			allowedOrigins = append(allowedOrigins, frontendURL)
		}

		corsConfig.AllowOriginFunc = func(origin string) bool {
			for _, allowed := range allowedOrigins {
				if origin == allowed {
					return true
				}
			}
			// Allow local network IPs (192.168.x.x, 10.x.x.x)
			return strings.HasPrefix(origin, "http://192.168.") || strings.HasPrefix(origin, "http://10.")
		}
		log.Printf("✅ CORS configured for development with %d allowed origins", len(allowedOrigins))
	}

	router.Use(cors.New(corsConfig))

	// =========================
	// SECURITY HEADERS MIDDLEWARE
	// =========================
	router.Use(func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	})

	// =========================
	// API ROUTES
	// =========================
	api := router.Group("/api")
	{
		api.GET("/health", catalogHandler.HealthCheck)
		api.GET("/songs", catalogHandler.GetAllSongs)
		api.GET("/genres", catalogHandler.GetGenres)
		api.GET("/artists", catalogHandler.GetArtists)
		api.GET("/languages", catalogHandler.GetLanguages)

		api.POST("/recommendations", recommendationHandler.GetRecommendations)
		api.GET("/search", searchHandler.SearchSongs)
	}

	// =========================
	// HEALTH & ROOT
	// =========================
	router.GET("/health", catalogHandler.HealthCheck)

	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "success",
			"message": "Music Recommendation API",
			"version": "1.0.0",
		})
	})

	return router
}
