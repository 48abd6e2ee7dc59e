package services

import (
	"testing"

	"music_recsys/internal/catalog"
	"music_recsys/internal/config"
	"music_recsys/internal/models"
)

func setTestConfig(t *testing.T) {
	t.Helper()
	config.GlobalConfig = &config.Config{
		DefaultTopN: 10,
		MaxTopN:     50,
		SearchLimit: 50,
	}
}

// Three-song corpus: Imagine and Let It Be share the Rock genre token, so
// Let It Be should outrank Yesterday for an Imagine query.
func testStore(t *testing.T) *catalog.Store {
	t.Helper()
	return catalog.NewStore([]models.Song{
		{TrackName: "Imagine", ArtistName: "John Lennon", Genre: "Rock", Year: 1971, Language: "English"},
		{TrackName: "Let It Be", ArtistName: "The Beatles", Genre: "Rock", Year: 1970, Language: "English"},
		{TrackName: "Yesterday", ArtistName: "The Beatles", Genre: "Pop", Year: 1965, Language: "English"},
	})
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	setTestConfig(t)
	engine := NewEngine(testStore(t))
	engine.Build()
	return engine
}
