package service

import (
	"context"
	"strings"
	"time"

	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/catalog"
	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/models"
	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/recommend"
)

const (
	DefaultCount = 5
	MaxCount     = 10 // el slider original va de 3 a 10, no dejamos pedir más
)

// Classifier es el contrato con el modelo de sentimiento. Cualquier
// modelo de tres etiquetas con softmax sirve; el servicio no asume
// ninguna arquitectura en particular.
type Classifier interface {
	Classify(ctx context.Context, text string) (models.SentimentProfile, error)
}

type RecommendService struct {
	classifier Classifier
	catalog    *catalog.Catalog
	alloc      *recommend.Allocator
}

func NewRecommendService(c Classifier, cat *catalog.Catalog, alloc *recommend.Allocator) *RecommendService {
	return &RecommendService{classifier: c, catalog: cat, alloc: alloc}
}

// Recommend clasifica el texto (o usa el perfil que venga en el request)
// y reparte los cupos de recomendación con el allocator ponderado.
func (s *RecommendService) Recommend(ctx context.Context, req models.RecommendationRequest) (*models.RecommendationResponse, error) {
	mediaType, err := models.ParseMediaType(req.MediaType)
	if err != nil {
		return nil, err
	}

	// defaults y límites para count
	count := req.Count
	if count <= 0 {
		count = DefaultCount
	} else if count > MaxCount {
		count = MaxCount
	}

	profile := req.Profile
	if len(profile) == 0 {
		if strings.TrimSpace(req.Text) == "" {
			return nil, models.ErrEmptyText
		}
		profile, err = s.classifier.Classify(ctx, req.Text)
		if err != nil {
			return nil, err
		}
	}

	pools, err := s.catalog.All(mediaType)
	if err != nil {
		return nil, err
	}

	items := s.alloc.Allocate(profile, pools, count)

	dominant := profile.Dominant()
	genres, _ := catalog.GenresFor(dominant)

	return &models.RecommendationResponse{
		Profile:     profile,
		Dominant:    dominant,
		Genres:      genres,
		MediaType:   mediaType,
		Items:       items,
		GeneratedAt: time.Now(),
	}, nil
}

// Analyze clasifica un texto suelto y devuelve el perfil completo más
// los géneros asociados al sentimiento dominante.
func (s *RecommendService) Analyze(ctx context.Context, text string) (*models.AnalyzeResponse, error) {
	profile, err := s.classifier.Classify(ctx, text)
	if err != nil {
		return nil, err
	}

	dominant := profile.Dominant()
	genres, _ := catalog.GenresFor(dominant)

	return &models.AnalyzeResponse{
		Text:     text,
		Profile:  profile,
		Dominant: dominant,
		Genres:   genres,
	}, nil
}
