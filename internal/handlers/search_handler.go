package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"music_recsys/internal/services"
)

type SearchHandler struct {
	searchService services.SearchService
}

func NewSearchHandler(searchService services.SearchService) *SearchHandler {
	return &SearchHandler{searchService: searchService}
}

// SearchSongs handles GET /api/search. An empty query yields an empty result
// set rather than an error.
func (h *SearchHandler) SearchSongs(c *gin.Context) {
	results := h.searchService.Search(c.Query("q"))
	c.JSON(http.StatusOK, gin.H{"results": results})
}
