package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"music_recsys/internal/catalog"
	"music_recsys/internal/config"
	"music_recsys/internal/handlers"
	"music_recsys/internal/models"
	"music_recsys/internal/routes"
	"music_recsys/internal/services"
)

func setupRouter(t *testing.T, songs []models.Song) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.GlobalConfig = &config.Config{
		DefaultTopN: 10,
		MaxTopN:     50,
		SearchLimit: 50,
	}

	store := catalog.NewStore(songs)
	engine := services.NewEngine(store)
	engine.Build()

	return routes.SetupRoutes(
		handlers.NewRecommendationHandler(services.NewRecommendationService(engine)),
		handlers.NewSearchHandler(services.NewSearchService(engine)),
		handlers.NewCatalogHandler(store),
	)
}

func threeSongCorpus() []models.Song {
	return []models.Song{
		{TrackName: "Imagine", ArtistName: "John Lennon", Genre: "Rock", Year: 1971, Language: "English"},
		{TrackName: "Let It Be", ArtistName: "The Beatles", Genre: "Rock", Year: 1970, Language: "English"},
		{TrackName: "Yesterday", ArtistName: "The Beatles", Genre: "Pop", Year: 1965, Language: "English"},
	}
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) (int, map[string]json.RawMessage) {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return w.Code, payload
}

func TestRecommendationsEndpoint(t *testing.T) {
	router := setupRouter(t, threeSongCorpus())

	code, payload := doJSON(t, router, http.MethodPost, "/api/recommendations",
		`{"song_title": "Imagine", "top_n": 2}`)
	require.Equal(t, http.StatusOK, code)
	assert.NotContains(t, payload, "error")

	var querySong string
	require.NoError(t, json.Unmarshal(payload["query_song"], &querySong))
	assert.Equal(t, "Imagine", querySong)

	var recs []map[string]any
	require.NoError(t, json.Unmarshal(payload["recommendations"], &recs))
	require.Len(t, recs, 2)
	assert.Equal(t, "Let It Be", recs[0]["track_name"])
	assert.Equal(t, "Yesterday", recs[1]["track_name"])

	// Display fields only; no internal ids or scores leak out.
	for _, rec := range recs {
		assert.Contains(t, rec, "track_name")
		assert.Contains(t, rec, "artist_name")
		assert.Contains(t, rec, "genre")
		assert.Contains(t, rec, "year")
		assert.NotContains(t, rec, "id")
		assert.NotContains(t, rec, "score")
	}
}

func TestRecommendationsPartialTitle(t *testing.T) {
	router := setupRouter(t, threeSongCorpus())

	code, payload := doJSON(t, router, http.MethodPost, "/api/recommendations",
		`{"song_title": "imagin", "top_n": 5}`)
	require.Equal(t, http.StatusOK, code)

	var querySong string
	require.NoError(t, json.Unmarshal(payload["query_song"], &querySong))
	assert.Equal(t, "Imagine", querySong)
}

func TestRecommendationsUnknownTitleInBandError(t *testing.T) {
	router := setupRouter(t, threeSongCorpus())

	code, payload := doJSON(t, router, http.MethodPost, "/api/recommendations",
		`{"song_title": "Nonexistent Song XYZ", "top_n": 5}`)
	require.Equal(t, http.StatusOK, code)

	var errMsg string
	require.NoError(t, json.Unmarshal(payload["error"], &errMsg))
	assert.Contains(t, errMsg, "Nonexistent Song XYZ")
	assert.NotContains(t, payload, "recommendations")
}

func TestRecommendationsMissingTitleInBandError(t *testing.T) {
	router := setupRouter(t, threeSongCorpus())

	code, payload := doJSON(t, router, http.MethodPost, "/api/recommendations", `{"top_n": 5}`)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, payload, "error")

	code, payload = doJSON(t, router, http.MethodPost, "/api/recommendations", `not json`)
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, payload, "error")
}

func TestSearchEndpoint(t *testing.T) {
	router := setupRouter(t, threeSongCorpus())

	code, payload := doJSON(t, router, http.MethodGet, "/api/search?q=beatles", "")
	require.Equal(t, http.StatusOK, code)

	var results []map[string]any
	require.NoError(t, json.Unmarshal(payload["results"], &results))
	require.Len(t, results, 2)
	assert.Equal(t, "Let It Be", results[0]["track_name"])
	assert.Equal(t, "Yesterday", results[1]["track_name"])
}

func TestSearchEndpointEmptyQuery(t *testing.T) {
	router := setupRouter(t, threeSongCorpus())

	code, payload := doJSON(t, router, http.MethodGet, "/api/search", "")
	require.Equal(t, http.StatusOK, code)

	var results []map[string]any
	require.NoError(t, json.Unmarshal(payload["results"], &results))
	assert.Empty(t, results)
}

func TestCatalogEndpoints(t *testing.T) {
	router := setupRouter(t, catalog.SampleSongs())

	code, payload := doJSON(t, router, http.MethodGet, "/api/songs", "")
	require.Equal(t, http.StatusOK, code)
	var songs []map[string]any
	require.NoError(t, json.Unmarshal(payload["songs"], &songs))
	assert.Len(t, songs, 41)

	code, payload = doJSON(t, router, http.MethodGet, "/api/genres", "")
	require.Equal(t, http.StatusOK, code)
	var genres []string
	require.NoError(t, json.Unmarshal(payload["genres"], &genres))
	assert.Contains(t, genres, "Bollywood")

	code, payload = doJSON(t, router, http.MethodGet, "/api/artists", "")
	require.Equal(t, http.StatusOK, code)
	var artists []string
	require.NoError(t, json.Unmarshal(payload["artists"], &artists))
	assert.Contains(t, artists, "Queen")

	code, payload = doJSON(t, router, http.MethodGet, "/api/languages", "")
	require.Equal(t, http.StatusOK, code)
	var languages []string
	require.NoError(t, json.Unmarshal(payload["languages"], &languages))
	assert.Equal(t, []string{"English", "Hindi", "Punjabi"}, languages)
}

func TestHealthEndpoints(t *testing.T) {
	router := setupRouter(t, threeSongCorpus())

	for _, path := range []string{"/health", "/api/health"} {
		code, payload := doJSON(t, router, http.MethodGet, path, "")
		require.Equal(t, http.StatusOK, code)

		var status string
		require.NoError(t, json.Unmarshal(payload["status"], &status))
		assert.Equal(t, "healthy", status)
	}
}
