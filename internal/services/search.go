package services

import (
	"strings"

	"music_recsys/internal/config"
	"music_recsys/internal/models"
)

type SearchService interface {
	Search(query string) []models.Song
}

type searchService struct {
	engine *Engine
	config *config.Config
}

func NewSearchService(engine *Engine) SearchService {
	return &searchService{
		engine: engine,
		config: config.GlobalConfig,
	}
}

// Search returns catalog entries whose title, artist or genre contains the
// query case-insensitively, in catalog order. An empty or whitespace-only
// query matches nothing. Results are capped to bound the payload.
func (s *searchService) Search(query string) []models.Song {
	results := []models.Song{}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return results
	}

	for _, song := range s.engine.Store().Songs() {
		if strings.Contains(strings.ToLower(song.TrackName), q) ||
			strings.Contains(strings.ToLower(song.ArtistName), q) ||
			strings.Contains(strings.ToLower(song.Genre), q) {
			results = append(results, song)
			if len(results) >= s.config.SearchLimit {
				break
			}
		}
	}
	return results
}
