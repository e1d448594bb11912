package service

import (
	"context"
	"time"

	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/models"

	"github.com/google/uuid"
)

// BatchClassifier es lo que BatchService necesita del coordinador de
// nodos; en tests se reemplaza por un stub.
type BatchClassifier interface {
	ClassifyBatch(ctx context.Context, texts []string, onShard func(ShardProgress)) ([]models.BatchRow, error)
}

type BatchService struct {
	classifier BatchClassifier
}

func NewBatchService(c BatchClassifier) *BatchService {
	return &BatchService{classifier: c}
}

// Analyze corre el batch completo y arma el resumen: conteos por
// sentimiento, filas inválidas y frecuencia de palabras por sentimiento
// (la data de los word clouds).
func (s *BatchService) Analyze(ctx context.Context, texts []string, onShard func(ShardProgress)) (*models.BatchResult, error) {
	rows, err := s.classifier.ClassifyBatch(ctx, texts, onShard)
	if err != nil {
		return nil, err
	}

	counts := make(map[models.SentimentLabel]int, len(models.SentimentLabels))
	for _, label := range models.SentimentLabels {
		counts[label] = 0
	}
	invalid := 0
	for _, row := range rows {
		if row.MaxSentiment == models.InvalidRowSentiment {
			invalid++
			continue
		}
		counts[models.SentimentLabel(row.MaxSentiment)]++
	}

	return &models.BatchResult{
		BatchID:         uuid.NewString(),
		Rows:            rows,
		Counts:          counts,
		Invalid:         invalid,
		WordFrequencies: WordFrequencies(texts, rows),
		GeneratedAt:     time.Now(),
	}, nil
}
