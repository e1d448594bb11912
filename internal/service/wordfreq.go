package service

import (
	"sort"
	"strings"
	"unicode"

	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/models"
)

// máximo de palabras por sentimiento (igual que max_words del word cloud)
const maxWordsPerSentiment = 100

// stopwords mínimas en inglés (los textos de entrada son tweets en inglés)
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "but": true, "by": true, "for": true, "from": true,
	"has": true, "have": true, "i": true, "in": true, "is": true, "it": true,
	"its": true, "my": true, "of": true, "on": true, "or": true, "so": true,
	"that": true, "the": true, "this": true, "to": true, "was": true,
	"we": true, "were": true, "with": true, "you": true, "your": true,
}

// WordFrequencies agrupa los textos originales (no truncados) por el
// sentimiento dominante de su fila y cuenta palabras. Las filas
// inválidas no aportan texto.
func WordFrequencies(texts []string, rows []models.BatchRow) map[models.SentimentLabel][]models.WordCount {
	byLabel := make(map[models.SentimentLabel]map[string]int, len(models.SentimentLabels))
	for _, label := range models.SentimentLabels {
		byLabel[label] = make(map[string]int)
	}

	for i, row := range rows {
		if i >= len(texts) || row.MaxSentiment == models.InvalidRowSentiment {
			continue
		}
		label := models.SentimentLabel(row.MaxSentiment)
		counts, ok := byLabel[label]
		if !ok {
			continue
		}
		for _, word := range tokenize(texts[i]) {
			counts[word]++
		}
	}

	out := make(map[models.SentimentLabel][]models.WordCount, len(byLabel))
	for label, counts := range byLabel {
		words := make([]models.WordCount, 0, len(counts))
		for w, n := range counts {
			words = append(words, models.WordCount{Word: w, Count: n})
		}
		// por frecuencia descendente; empates en orden alfabético
		// para que la salida sea estable
		sort.Slice(words, func(i, j int) bool {
			if words[i].Count != words[j].Count {
				return words[i].Count > words[j].Count
			}
			return words[i].Word < words[j].Word
		})
		if len(words) > maxWordsPerSentiment {
			words = words[:maxWordsPerSentiment]
		}
		out[label] = words
	}
	return out
}

// tokenize baja a minúsculas, parte por todo lo que no sea letra o
// dígito y filtra stopwords y tokens de 1-2 caracteres.
func tokenize(text string) []string {
	raw := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	out := make([]string, 0, len(raw))
	for _, w := range raw {
		if len(w) <= 2 || stopwords[w] {
			continue
		}
		out = append(out, w)
	}
	return out
}
