package catalog

import (
	"strings"

	"music_recsys/internal/models"
)

// Store is the immutable in-memory song table. It is built once at startup
// and read-only for the rest of the process, so any number of requests may
// read it concurrently without locks.
type Store struct {
	songs []models.Song
}

// NewStore assigns catalog ids by load order. Records without a track name
// are dropped; everything else is kept as loaded.
func NewStore(songs []models.Song) *Store {
	kept := make([]models.Song, 0, len(songs))
	for _, song := range songs {
		if strings.TrimSpace(song.TrackName) == "" {
			continue
		}
		song.ID = len(kept)
		kept = append(kept, song)
	}
	return &Store{songs: kept}
}

func (s *Store) Songs() []models.Song {
	return s.songs
}

func (s *Store) Len() int {
	return len(s.songs)
}

func (s *Store) Get(id int) (*models.Song, bool) {
	if id < 0 || id >= len(s.songs) {
		return nil, false
	}
	return &s.songs[id], true
}

// Genres returns the distinct genres in first-seen catalog order.
func (s *Store) Genres() []string {
	return s.distinct(func(song models.Song) string { return song.Genre })
}

// Artists returns the distinct artist names in first-seen catalog order.
func (s *Store) Artists() []string {
	return s.distinct(func(song models.Song) string { return song.ArtistName })
}

// Languages returns the distinct languages in first-seen catalog order.
func (s *Store) Languages() []string {
	return s.distinct(func(song models.Song) string { return song.Language })
}

func (s *Store) distinct(field func(models.Song) string) []string {
	seen := make(map[string]bool)
	values := []string{}
	for _, song := range s.songs {
		v := field(song)
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		values = append(values, v)
	}
	return values
}
