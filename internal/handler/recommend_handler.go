package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/models"
	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/service"
)

type RecommendHandler struct {
	svc *service.RecommendService
}

func NewRecommendHandler(s *service.RecommendService) *RecommendHandler {
	return &RecommendHandler{svc: s}
}

// @Summary Recomendaciones de libros o películas según el sentimiento del texto
// @Tags recommend
// @Accept json
// @Produce json
// @Param request body models.RecommendationRequest true "texto (o perfil ya calculado), tipo de media y cantidad"
// @Success 200 {object} models.RecommendationResponse
// @Router /recommendations [post]
func (h *RecommendHandler) Recommend(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido", 400)
		return
	}

	out, err := h.svc.Recommend(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrInvalidMediaType), errors.Is(err, models.ErrEmptyText):
			http.Error(w, err.Error(), 400)
		default:
			http.Error(w, err.Error(), 502)
		}
		return
	}
	_ = json.NewEncoder(w).Encode(out)
}
