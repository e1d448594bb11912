package models

// Etiquetas de sentimiento, en el mismo orden en que las emite el
// clasificador (cardiffnlp/twitter-roberta-base-sentiment).
// Ese orden también decide los empates en Dominant().
type SentimentLabel string

const (
	SentimentNegative SentimentLabel = "Negative"
	SentimentNeutral  SentimentLabel = "Neutral"
	SentimentPositive SentimentLabel = "Positive"
)

// Orden canónico de etiquetas. Conjunto cerrado: no hay más sentimientos.
var SentimentLabels = []SentimentLabel{
	SentimentNegative,
	SentimentNeutral,
	SentimentPositive,
}

// ParseSentimentLabel valida un sentimiento que llega como string
// (path params, fixtures). Cualquier otro valor es ErrUnknownSentiment.
func ParseSentimentLabel(s string) (SentimentLabel, error) {
	switch SentimentLabel(s) {
	case SentimentNegative, SentimentNeutral, SentimentPositive:
		return SentimentLabel(s), nil
	}
	return "", ErrUnknownSentiment
}

// Probabilidades softmax por etiqueta. Se espera que sumen ~1.0 pero
// no lo validamos: confiamos en lo que devuelve el clasificador.
type SentimentProfile map[SentimentLabel]float64

// Dominant devuelve la etiqueta con mayor probabilidad.
// Empate exacto: gana la primera en el orden canónico
// (Negative > Neutral > Positive), no el orden de iteración del map.
func (p SentimentProfile) Dominant() SentimentLabel {
	best := SentimentLabels[0]
	for _, l := range SentimentLabels[1:] {
		if p[l] > p[best] {
			best = l
		}
	}
	return best
}
