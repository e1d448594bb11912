package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/catalog"
	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// router con las mismas rutas de catálogo que el server real
func newCatalogRouter(t *testing.T) http.Handler {
	t.Helper()
	cat, err := catalog.Load()
	require.NoError(t, err)
	h := NewCatalogHandler(cat)

	r := chi.NewRouter()
	r.Route("/catalog/{type}", func(r chi.Router) {
		r.Get("/", h.All)
		r.Get("/genre-distribution", h.GenreDistribution)
		r.Get("/{sentiment}", h.Bucket)
	})
	r.Get("/genres", Genres)
	r.Get("/genres/{sentiment}", GenresBySentiment)
	return r
}

func TestCatalogAllEndpoint(t *testing.T) {
	router := newCatalogRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/catalog/movies", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var buckets map[models.SentimentLabel][]models.MediaItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &buckets))
	require.Len(t, buckets, 3)
	for _, label := range models.SentimentLabels {
		assert.Len(t, buckets[label], 10)
	}
}

func TestCatalogBucketEndpoint(t *testing.T) {
	router := newCatalogRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/catalog/books/Negative", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var items []models.MediaItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 10)
	for _, item := range items {
		assert.Equal(t, models.SentimentNegative, item.Sentiment)
		assert.NotEmpty(t, item.Author)
	}
}

func TestCatalogUnknownType(t *testing.T) {
	router := newCatalogRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/catalog/podcasts", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCatalogUnknownSentiment(t *testing.T) {
	router := newCatalogRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/catalog/movies/Happy", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenreDistributionEndpoint(t *testing.T) {
	router := newCatalogRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/catalog/movies/genre-distribution", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var dist map[models.SentimentLabel]map[string]int
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dist))
	require.Len(t, dist, 3)
	assert.NotEmpty(t, dist[models.SentimentPositive])
}

func TestGenresEndpoint(t *testing.T) {
	router := newCatalogRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/genres", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var all map[models.SentimentLabel][]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	require.Len(t, all, 3)
	for _, label := range models.SentimentLabels {
		assert.Len(t, all[label], 10)
	}
}

func TestGenresBySentimentEndpoint(t *testing.T) {
	router := newCatalogRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/genres/Positive", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var genres []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &genres))
	assert.Contains(t, genres, "Comedy")

	req = httptest.NewRequest(http.MethodGet, "/genres/Angry", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
