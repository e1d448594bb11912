package models

import "time"

// ====== Petición / respuesta de recomendaciones ======

// Se puede mandar texto (el servicio clasifica primero) o un perfil
// de probabilidades ya calculado (ej. reusar el de /analyze).
type RecommendationRequest struct {
	Text      string           `json:"text,omitempty"`
	Profile   SentimentProfile `json:"profile,omitempty"`
	MediaType string           `json:"media_type"`
	Count     int              `json:"count,omitempty"`
}

type RecommendationResponse struct {
	Profile     SentimentProfile `json:"profile"`
	Dominant    SentimentLabel   `json:"dominant"`
	Genres      []string         `json:"genres"`
	MediaType   MediaType        `json:"media_type"`
	Items       []MediaItem      `json:"items"`
	GeneratedAt time.Time        `json:"generatedAt"`
}

// ====== Análisis de un solo texto ======

type AnalyzeRequest struct {
	Text string `json:"text"`
}

type AnalyzeResponse struct {
	Text     string           `json:"text"`
	Profile  SentimentProfile `json:"probabilities"`
	Dominant SentimentLabel   `json:"max_sentiment"`
	Genres   []string         `json:"genres"`
}
