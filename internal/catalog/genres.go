package catalog

import "github.com/mvharsh/Movie-and-Book-Recommendations/internal/models"

// Mapeo estático sentimiento -> géneros asociados. Es solo informativo
// (se muestra junto a las recomendaciones), no participa en el allocator.
var genresBySentiment = map[models.SentimentLabel][]string{
	models.SentimentPositive: {
		"Comedy", "Animation", "Family", "Adventure", "Musical",
		"Romance", "Fantasy", "Inspirational", "Biography", "Sport",
	},
	models.SentimentNeutral: {
		"Documentary", "History", "Science Fiction", "Action", "Western",
		"Mystery", "Drama", "Superhero", "Animation", "Thriller",
	},
	models.SentimentNegative: {
		"Horror", "Thriller", "Crime", "War", "Drama",
		"Mystery", "Film-Noir", "Psychological", "Disaster", "Dystopian",
	},
}

// GenresFor devuelve la lista ordenada de géneros de un sentimiento (copia).
func GenresFor(sentiment models.SentimentLabel) ([]string, error) {
	genres, ok := genresBySentiment[sentiment]
	if !ok {
		return nil, models.ErrUnknownSentiment
	}
	out := make([]string, len(genres))
	copy(out, genres)
	return out, nil
}

// AllGenres devuelve el mapeo completo, en el orden canónico de etiquetas.
func AllGenres() map[models.SentimentLabel][]string {
	out := make(map[models.SentimentLabel][]string, len(models.SentimentLabels))
	for _, label := range models.SentimentLabels {
		genres, _ := GenresFor(label)
		out[label] = genres
	}
	return out
}
