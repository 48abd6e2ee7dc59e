package services

import (
	"math"
	"regexp"
	"strings"

	"music_recsys/internal/models"
)

// Vector is a sparse TF-IDF document vector keyed by vocabulary column.
type Vector map[int]float64

var tokenPattern = regexp.MustCompile(`[^a-z0-9]+`)

// Tokenize lowercases text and splits it on runs of non-alphanumeric
// characters, dropping empty tokens.
func Tokenize(text string) []string {
	parts := tokenPattern.Split(strings.ToLower(text), -1)
	tokens := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			tokens = append(tokens, p)
		}
	}
	return tokens
}

// BuildVectors fits a vocabulary over the songs' composite text and returns
// one unit-normalized TF-IDF vector per song, in catalog order. A song whose
// composite text yields no tokens keeps the zero vector.
func BuildVectors(songs []models.Song) (map[string]int, []Vector) {
	vocab := make(map[string]int)
	docTerms := make([]map[string]int, len(songs))
	docFreq := make(map[string]int)

	for i := range songs {
		counts := make(map[string]int)
		for _, tok := range Tokenize(songs[i].CompositeText()) {
			counts[tok]++
		}
		docTerms[i] = counts
		for term := range counts {
			docFreq[term]++
			if _, ok := vocab[term]; !ok {
				vocab[term] = len(vocab)
			}
		}
	}

	n := float64(len(songs))
	idf := make(map[string]float64, len(docFreq))
	for term, df := range docFreq {
		// Smoothed IDF, strictly positive even for terms in every document.
		idf[term] = math.Log((1+n)/(1+float64(df))) + 1
	}

	vectors := make([]Vector, len(songs))
	for i, counts := range docTerms {
		vec := make(Vector, len(counts))
		var norm float64
		for term, tf := range counts {
			w := float64(tf) * idf[term]
			vec[vocab[term]] = w
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for col, w := range vec {
				vec[col] = w / norm
			}
		}
		vectors[i] = vec
	}
	return vocab, vectors
}
