package models

import "time"

// ====== Análisis batch (CSV o lista de textos) ======

// Una fila del resultado batch. Mismas columnas que exporta el CSV:
// text, max_sentiment, positive, neutral, negative.
type BatchRow struct {
	Text         string  `json:"text"` // preview truncado a 100 chars
	MaxSentiment string  `json:"max_sentiment"`
	Positive     float64 `json:"positive"`
	Neutral      float64 `json:"neutral"`
	Negative     float64 `json:"negative"`
}

// Fila centinela para entradas no analizables (celda vacía, fila corta,
// o fallo del clasificador en esa fila). El batch nunca se aborta por una fila.
const (
	InvalidRowText      = "Invalid text"
	InvalidRowSentiment = "N/A"
)

func InvalidBatchRow() BatchRow {
	return BatchRow{Text: InvalidRowText, MaxSentiment: InvalidRowSentiment}
}

type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

type BatchResult struct {
	BatchID string     `json:"batchId"`
	Rows    []BatchRow `json:"rows"`

	// resumen para los gráficos: conteo por sentimiento + filas inválidas
	Counts  map[SentimentLabel]int `json:"counts"`
	Invalid int                    `json:"invalid"`

	// frecuencia de palabras por sentimiento (word clouds)
	WordFrequencies map[SentimentLabel][]WordCount `json:"wordFrequencies"`

	GeneratedAt time.Time `json:"generatedAt"`
}
