package services

import (
	"errors"
	"fmt"
	"strings"

	"music_recsys/internal/config"
	"music_recsys/internal/models"
)

var (
	ErrMissingQuery = errors.New("song title is required")
	ErrSongNotFound = errors.New("song not found in the dataset")
)

type RecommendationService interface {
	Recommend(songTitle string, topN int) (*models.RecommendationResult, error)
}

type recommendationService struct {
	engine *Engine
	config *config.Config
}

func NewRecommendationService(engine *Engine) RecommendationService {
	return &recommendationService{
		engine: engine,
		config: config.GlobalConfig,
	}
}

// Recommend resolves songTitle to a catalog entry and returns its topN most
// similar songs. A title the resolver cannot place is a normal, reportable
// outcome, not a server failure.
func (s *recommendationService) Recommend(songTitle string, topN int) (*models.RecommendationResult, error) {
	title := strings.TrimSpace(songTitle)
	if title == "" {
		return nil, ErrMissingQuery
	}

	if topN <= 0 {
		topN = s.config.DefaultTopN
	}
	if topN > s.config.MaxTopN {
		topN = s.config.MaxTopN
	}

	song, ok := s.engine.Resolver().Resolve(title)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSongNotFound, title)
	}

	index := s.engine.Index()
	ranked := index.TopSimilar(index.VectorFor(song.ID), song.ID, topN)

	recommendations := make([]models.Song, len(ranked))
	for i, r := range ranked {
		recommendations[i] = r.Song
	}

	return &models.RecommendationResult{
		QuerySong:       song.TrackName,
		Recommendations: recommendations,
	}, nil
}
