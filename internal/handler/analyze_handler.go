package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/models"
	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/service"
)

type AnalyzeHandler struct {
	svc *service.RecommendService
}

func NewAnalyzeHandler(s *service.RecommendService) *AnalyzeHandler {
	return &AnalyzeHandler{svc: s}
}

// @Summary Analiza el sentimiento de un texto
// @Tags analyze
// @Accept json
// @Produce json
// @Param request body models.AnalyzeRequest true "texto a analizar"
// @Success 200 {object} models.AnalyzeResponse
// @Router /analyze [post]
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido", 400)
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		http.Error(w, models.ErrEmptyText.Error(), 400)
		return
	}

	out, err := h.svc.Analyze(r.Context(), req.Text)
	if err != nil {
		// fallo del modelo: se reporta tal cual, nunca un perfil inventado
		http.Error(w, err.Error(), 502)
		return
	}
	_ = json.NewEncoder(w).Encode(out)
}
