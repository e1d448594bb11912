package handler

import (
	"encoding/json"
	"net/http"

	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/catalog"
	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/models"

	"github.com/go-chi/chi/v5"
)

// @Summary Mapeo completo sentimiento -> géneros
// @Tags genres
// @Produce json
// @Success 200 {object} map[string][]string
// @Router /genres [get]
func Genres(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(catalog.AllGenres())
}

// @Summary Géneros asociados a un sentimiento
// @Tags genres
// @Produce json
// @Param sentiment path string true "Negative, Neutral o Positive"
// @Success 200 {array} string
// @Router /genres/{sentiment} [get]
func GenresBySentiment(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	sentiment, err := models.ParseSentimentLabel(chi.URLParam(r, "sentiment"))
	if err != nil {
		http.Error(w, err.Error(), 404)
		return
	}
	genres, err := catalog.GenresFor(sentiment)
	if err != nil {
		http.Error(w, err.Error(), 404)
		return
	}
	_ = json.NewEncoder(w).Encode(genres)
}
