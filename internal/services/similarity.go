package services

import (
	"sort"

	"music_recsys/internal/models"
)

// ScoredSong pairs a catalog entry with its similarity to the query vector.
type ScoredSong struct {
	Song  models.Song
	Score float64
}

// SimilarityIndex holds the document-vector matrix and answers nearest-song
// queries. Read-only after construction.
type SimilarityIndex struct {
	songs   []models.Song
	vectors []Vector
}

func NewSimilarityIndex(songs []models.Song, vectors []Vector) *SimilarityIndex {
	return &SimilarityIndex{songs: songs, vectors: vectors}
}

// VectorFor returns the document vector for a catalog id, or nil when the id
// is out of range.
func (idx *SimilarityIndex) VectorFor(id int) Vector {
	if id < 0 || id >= len(idx.vectors) {
		return nil
	}
	return idx.vectors[id]
}

// TopSimilar returns up to n songs ranked by cosine similarity to query.
// Document vectors are unit length, so cosine reduces to a dot product.
// Ties are broken by ascending catalog id to keep rankings reproducible; the
// excludeID entry is never part of the result.
func (idx *SimilarityIndex) TopSimilar(query Vector, excludeID, n int) []ScoredSong {
	if n <= 0 {
		return nil
	}

	scored := make([]ScoredSong, 0, len(idx.songs))
	for i := range idx.songs {
		if idx.songs[i].ID == excludeID {
			continue
		}
		scored = append(scored, ScoredSong{Song: idx.songs[i], Score: dot(query, idx.vectors[i])})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].Song.ID < scored[j].Song.ID
	})

	if len(scored) > n {
		scored = scored[:n]
	}
	return scored
}

func dot(a, b Vector) float64 {
	// Iterate the smaller vector.
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for col, w := range a {
		sum += w * b[col]
	}
	return sum
}
