package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"music_recsys/internal/services"
)

type RecommendationHandler struct {
	recommendService services.RecommendationService
}

func NewRecommendationHandler(recommendService services.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{recommendService: recommendService}
}

type recommendationRequest struct {
	SongTitle string `json:"song_title"`
	TopN      int    `json:"top_n"`
}

// GetRecommendations handles POST /api/recommendations. Bad input and
// resolver misses are reported in-band as {"error": ...} with status 200,
// matching how the client reads response.data.error.
func (h *RecommendationHandler) GetRecommendations(c *gin.Context) {
	var req recommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.recommendService.Recommend(req.SongTitle, req.TopN)
	if err != nil {
		if errors.Is(err, services.ErrMissingQuery) || errors.Is(err, services.ErrSongNotFound) {
			c.JSON(http.StatusOK, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate recommendations"})
		return
	}

	c.JSON(http.StatusOK, result)
}
