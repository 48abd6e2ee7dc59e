package services

import (
	"log"
	"sync"

	"music_recsys/internal/catalog"
)

// Engine owns the one-time TF-IDF build over the catalog. Catalog,
// vocabulary and document vectors are immutable once built, so any number of
// requests may read them concurrently without coordination.
type Engine struct {
	store *catalog.Store

	once     sync.Once
	vocab    map[string]int
	index    *SimilarityIndex
	resolver *TitleResolver
}

func NewEngine(store *catalog.Store) *Engine {
	return &Engine{store: store}
}

// Build indexes the catalog. Safe to call from any number of goroutines: the
// first caller builds and the rest block until the index is ready, so a
// request can never observe a half-built index.
func (e *Engine) Build() {
	e.once.Do(func() {
		songs := e.store.Songs()
		vocab, vectors := BuildVectors(songs)
		e.vocab = vocab
		e.index = NewSimilarityIndex(songs, vectors)
		e.resolver = NewTitleResolver(songs)
		log.Printf("[Engine] Indexed %d songs, vocabulary size %d", len(songs), len(vocab))
	})
}

func (e *Engine) Store() *catalog.Store {
	return e.store
}

func (e *Engine) Index() *SimilarityIndex {
	e.Build()
	return e.index
}

func (e *Engine) Resolver() *TitleResolver {
	e.Build()
	return e.resolver
}

func (e *Engine) VocabularySize() int {
	e.Build()
	return len(e.vocab)
}
