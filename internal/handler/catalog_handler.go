package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/catalog"
	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/models"

	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	cat *catalog.Catalog
}

func NewCatalogHandler(c *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{cat: c}
}

// @Summary Catálogo completo de un tipo de media, por sentimiento
// @Tags catalog
// @Produce json
// @Param type path string true "books o movies"
// @Success 200 {object} map[string][]models.MediaItem
// @Router /catalog/{type} [get]
func (h *CatalogHandler) All(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	mediaType, err := models.ParseMediaType(chi.URLParam(r, "type"))
	if err != nil {
		http.Error(w, err.Error(), 404)
		return
	}
	buckets, err := h.cat.All(mediaType)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(buckets)
}

// @Summary Ítems de un bucket (sentimiento, tipo de media)
// @Tags catalog
// @Produce json
// @Param type path string true "books o movies"
// @Param sentiment path string true "Negative, Neutral o Positive"
// @Success 200 {array} models.MediaItem
// @Router /catalog/{type}/{sentiment} [get]
func (h *CatalogHandler) Bucket(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	mediaType, err := models.ParseMediaType(chi.URLParam(r, "type"))
	if err != nil {
		http.Error(w, err.Error(), 404)
		return
	}
	sentiment, err := models.ParseSentimentLabel(chi.URLParam(r, "sentiment"))
	if err != nil {
		http.Error(w, err.Error(), 404)
		return
	}

	items, err := h.cat.ItemsFor(sentiment, mediaType)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(items)
}

// @Summary Distribución de géneros del catálogo por sentimiento (gráfico apilado)
// @Tags catalog
// @Produce json
// @Param type path string true "books o movies"
// @Success 200 {object} map[string]map[string]int
// @Router /catalog/{type}/genre-distribution [get]
func (h *CatalogHandler) GenreDistribution(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	mediaType, err := models.ParseMediaType(chi.URLParam(r, "type"))
	if err != nil {
		http.Error(w, err.Error(), 404)
		return
	}
	dist, err := h.cat.GenreDistribution(mediaType)
	if err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
	_ = json.NewEncoder(w).Encode(dist)
}
