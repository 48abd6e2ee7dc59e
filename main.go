// main.go
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"music_recsys/internal/catalog"
	"music_recsys/internal/config"
	"music_recsys/internal/handlers"
	"music_recsys/internal/routes"
	"music_recsys/internal/services"
)

func main() {

	// =========================
	// LOAD CONFIG (SAFE)
	// =========================
	if err := config.LoadConfig(); err != nil {
		log.Println("⚠️ Config load warning:", err)
		log.Println("⚠️ Using environment variables only")
	}
	cfg := config.GlobalConfig

	// =========================
	// LOAD CATALOG (SAFE)
	// =========================
	store, err := catalog.Load(cfg)
	if err != nil {
		log.Println("⚠️ Catalog load failed:", err)
		log.Println("⚠️ Falling back to bundled sample dataset")
		store = catalog.NewStore(catalog.SampleSongs())
	}

	// =========================
	// BUILD INDEX
	// =========================
	engine := services.NewEngine(store)
	engine.Build()
	log.Printf("✅ Similarity index ready: %d songs, %d terms", store.Len(), engine.VocabularySize())

	// =========================
	// INIT SERVICES
	// =========================
	recommendService := services.NewRecommendationService(engine)
	searchService := services.NewSearchService(engine)

	// =========================
	// INIT HANDLERS
	// =========================
	recommendationHandler := handlers.NewRecommendationHandler(recommendService)
	searchHandler := handlers.NewSearchHandler(searchService)
	catalogHandler := handlers.NewCatalogHandler(store)

	// =========================
	// ROUTES
	// =========================
	router := routes.SetupRoutes(
		recommendationHandler,
		searchHandler,
		catalogHandler,
	)

	// =========================
	// PORT
	// =========================
	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.ServerPort
	}
	if port == "" {
		port = "8080"
	}

	bindAddr := "0.0.0.0:" + port

	// =========================
	// SERVER CONFIG
	// =========================
	server := &http.Server{
		Addr:         bindAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// =========================
	// START SERVER
	// =========================
	go func() {
		log.Println("🎵 =======================================")
		log.Println("🎵   MUSIC RECOMMENDATION API SERVER")
		log.Println("🎵 =======================================")
		log.Printf("🎵   Running on: %s", bindAddr)
		log.Println("🎵 =======================================")
		log.Println("🚀 Server started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Println("❌ Server error:", err)
		}
	}()

	// =========================
	// GRACEFUL SHUTDOWN
	// =========================
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Println("❌ Forced shutdown:", err)
	}

	log.Println("✅ Server exited properly")
}
