package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"music_recsys/internal/catalog"
)

// CatalogHandler serves read-only catalog metadata.
type CatalogHandler struct {
	store *catalog.Store
}

func NewCatalogHandler(store *catalog.Store) *CatalogHandler {
	return &CatalogHandler{store: store}
}

func (h *CatalogHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Music Recommendation API is running",
	})
}

func (h *CatalogHandler) GetAllSongs(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"songs": h.store.Songs()})
}

func (h *CatalogHandler) GetGenres(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"genres": h.store.Genres()})
}

func (h *CatalogHandler) GetArtists(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"artists": h.store.Artists()})
}

func (h *CatalogHandler) GetLanguages(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"languages": h.store.Languages()})
}
