package service

import (
	"context"
	"testing"

	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubBatchClassifier devuelve filas fijas sin tocar la red.
type stubBatchClassifier struct {
	rows []models.BatchRow
	err  error
}

func (s *stubBatchClassifier) ClassifyBatch(ctx context.Context, texts []string, onShard func(ShardProgress)) ([]models.BatchRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	if onShard != nil {
		onShard(ShardProgress{ShardID: 0, Rows: len(s.rows)})
	}
	return s.rows, nil
}

func row(text string, label models.SentimentLabel) models.BatchRow {
	return models.BatchRow{Text: text, MaxSentiment: string(label)}
}

func TestBatchAnalyzeSummary(t *testing.T) {
	texts := []string{
		"loving this amazing movie tonight",
		"amazing soundtrack amazing cast",
		"worst sequel ever",
		"",
	}
	stub := &stubBatchClassifier{rows: []models.BatchRow{
		row(texts[0], models.SentimentPositive),
		row(texts[1], models.SentimentPositive),
		row(texts[2], models.SentimentNegative),
		models.InvalidBatchRow(),
	}}

	called := 0
	result, err := NewBatchService(stub).Analyze(context.Background(), texts, func(ShardProgress) { called++ })
	require.NoError(t, err)

	assert.NotEmpty(t, result.BatchID)
	assert.Len(t, result.Rows, 4)
	assert.Equal(t, 1, called)
	assert.False(t, result.GeneratedAt.IsZero())

	assert.Equal(t, 2, result.Counts[models.SentimentPositive])
	assert.Equal(t, 0, result.Counts[models.SentimentNeutral])
	assert.Equal(t, 1, result.Counts[models.SentimentNegative])
	assert.Equal(t, 1, result.Invalid)

	// "amazing" aparece 3 veces en los textos positivos y encabeza la lista
	pos := result.WordFrequencies[models.SentimentPositive]
	require.NotEmpty(t, pos)
	assert.Equal(t, models.WordCount{Word: "amazing", Count: 3}, pos[0])
}

func TestBatchAnalyzePropagatesError(t *testing.T) {
	stub := &stubBatchClassifier{err: assert.AnError}

	_, err := NewBatchService(stub).Analyze(context.Background(), []string{"a"}, nil)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBatchAnalyzeEmpty(t *testing.T) {
	stub := &stubBatchClassifier{rows: []models.BatchRow{}}

	result, err := NewBatchService(stub).Analyze(context.Background(), nil, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Rows)
	assert.Zero(t, result.Invalid)
	for _, label := range models.SentimentLabels {
		assert.Zero(t, result.Counts[label])
	}
}

func TestWordFrequenciesGrouping(t *testing.T) {
	texts := []string{
		"The soundtrack was beautiful, truly beautiful!",
		"terrible plot and terrible acting",
		"",
	}
	rows := []models.BatchRow{
		row(texts[0], models.SentimentPositive),
		row(texts[1], models.SentimentNegative),
		models.InvalidBatchRow(),
	}

	freqs := WordFrequencies(texts, rows)

	pos := freqs[models.SentimentPositive]
	require.NotEmpty(t, pos)
	assert.Equal(t, models.WordCount{Word: "beautiful", Count: 2}, pos[0])
	// stopwords y tokens cortos quedan fuera
	for _, wc := range pos {
		assert.NotEqual(t, "the", wc.Word)
		assert.NotEqual(t, "was", wc.Word)
	}

	neg := freqs[models.SentimentNegative]
	require.NotEmpty(t, neg)
	assert.Equal(t, models.WordCount{Word: "terrible", Count: 2}, neg[0])

	// la fila inválida no aporta palabras a ningún sentimiento
	assert.Empty(t, freqs[models.SentimentNeutral])
}

func TestWordFrequenciesTieBreakAlphabetical(t *testing.T) {
	texts := []string{"zebra apple zebra apple"}
	rows := []models.BatchRow{row(texts[0], models.SentimentNeutral)}

	neu := WordFrequencies(texts, rows)[models.SentimentNeutral]
	require.Len(t, neu, 2)
	assert.Equal(t, "apple", neu[0].Word)
	assert.Equal(t, "zebra", neu[1].Word)
}

func TestTokenize(t *testing.T) {
	got := tokenize("Check http://t.co/x out, it's GREAT!!! ok")
	assert.Contains(t, got, "check")
	assert.Contains(t, got, "great")
	assert.Contains(t, got, "out")
	assert.NotContains(t, got, "it") // stopword
	assert.NotContains(t, got, "ok") // <= 2 caracteres
}
