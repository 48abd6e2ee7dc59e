package services

import (
	"strings"

	"music_recsys/internal/models"
)

// TitleResolver maps a free-form, possibly partial, user string to exactly
// one catalog entry.
type TitleResolver struct {
	songs []models.Song
}

func NewTitleResolver(songs []models.Song) *TitleResolver {
	return &TitleResolver{songs: songs}
}

// Resolve tries an exact lowercased title match first, then falls back to
// substring containment in either direction, which covers users typing a
// subset or superset of the real title. Among substring candidates the one
// closest in length to the query wins; the first-loaded song wins any
// remaining tie.
func (r *TitleResolver) Resolve(query string) (*models.Song, bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil, false
	}

	for i := range r.songs {
		if strings.ToLower(r.songs[i].TrackName) == q {
			return &r.songs[i], true
		}
	}

	best := -1
	bestDiff := 0
	for i := range r.songs {
		title := strings.ToLower(r.songs[i].TrackName)
		if !strings.Contains(title, q) && !strings.Contains(q, title) {
			continue
		}
		diff := len(title) - len(q)
		if diff < 0 {
			diff = -diff
		}
		if best == -1 || diff < bestDiff {
			best = i
			bestDiff = diff
		}
	}
	if best == -1 {
		return nil, false
	}
	return &r.songs[best], true
}
