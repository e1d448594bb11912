package catalog

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/models"
)

//go:embed data/books.json data/movies.json
var fixtures embed.FS

// Registro tal cual viene en los JSON embebidos. Los campos que no
// aplican al tipo de media simplemente quedan en cero.
type fixtureItem struct {
	Title       string  `json:"title"`
	Genre       string  `json:"genre"`
	Description string  `json:"description"`
	Author      string  `json:"author"`
	Year        int     `json:"year"`
	ReleaseYear int     `json:"release_year"`
	Rating      float64 `json:"rating"`
}

var fixtureFiles = map[models.MediaType]string{
	models.MediaBooks:  "data/books.json",
	models.MediaMovies: "data/movies.json",
}

// Catálogo estático de libros y películas por sentimiento.
// Se construye una sola vez al arrancar y nunca se muta: los métodos
// devuelven copias de los slices para que nadie toque los pools internos.
type Catalog struct {
	items map[models.MediaType]map[models.SentimentLabel][]models.MediaItem
}

// Load construye el catálogo desde los fixtures embebidos.
// Garantiza que los tres buckets de sentimiento existan para cada tipo
// de media aunque algún bucket venga vacío en el JSON.
func Load() (*Catalog, error) {
	c := &Catalog{
		items: make(map[models.MediaType]map[models.SentimentLabel][]models.MediaItem, len(fixtureFiles)),
	}

	for mt, file := range fixtureFiles {
		raw, err := fixtures.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("leyendo fixture %s: %w", file, err)
		}

		var byBucket map[string][]fixtureItem
		if err := json.Unmarshal(raw, &byBucket); err != nil {
			return nil, fmt.Errorf("parseando fixture %s: %w", file, err)
		}

		// validar que el JSON no traiga buckets con typos
		for bucket := range byBucket {
			if _, err := models.ParseSentimentLabel(bucket); err != nil {
				return nil, fmt.Errorf("fixture %s: bucket %q: %w", file, bucket, err)
			}
		}

		buckets := make(map[models.SentimentLabel][]models.MediaItem, len(models.SentimentLabels))
		for _, label := range models.SentimentLabels {
			pool := make([]models.MediaItem, 0, len(byBucket[string(label)]))
			for _, f := range byBucket[string(label)] {
				pool = append(pool, models.MediaItem{
					Title:       f.Title,
					Genre:       f.Genre,
					Sentiment:   label,
					Description: f.Description,
					Author:      f.Author,
					Year:        f.Year,
					ReleaseYear: f.ReleaseYear,
					Rating:      f.Rating,
				})
			}
			buckets[label] = pool
		}
		c.items[mt] = buckets
	}

	return c, nil
}

// ItemsFor devuelve los ítems de un bucket (sentimiento, tipo de media).
// Bucket vacío no es error; tipo o sentimiento desconocido sí.
func (c *Catalog) ItemsFor(sentiment models.SentimentLabel, mediaType models.MediaType) ([]models.MediaItem, error) {
	buckets, ok := c.items[mediaType]
	if !ok {
		return nil, models.ErrInvalidMediaType
	}
	pool, ok := buckets[sentiment]
	if !ok {
		return nil, models.ErrUnknownSentiment
	}
	out := make([]models.MediaItem, len(pool))
	copy(out, pool)
	return out, nil
}

// All devuelve los tres buckets de un tipo de media (copias).
func (c *Catalog) All(mediaType models.MediaType) (map[models.SentimentLabel][]models.MediaItem, error) {
	buckets, ok := c.items[mediaType]
	if !ok {
		return nil, models.ErrInvalidMediaType
	}
	out := make(map[models.SentimentLabel][]models.MediaItem, len(buckets))
	for label, pool := range buckets {
		cp := make([]models.MediaItem, len(pool))
		copy(cp, pool)
		out[label] = cp
	}
	return out, nil
}

// Size cuenta el total de ítems de un tipo de media (todos los buckets).
func (c *Catalog) Size(mediaType models.MediaType) (int, error) {
	buckets, ok := c.items[mediaType]
	if !ok {
		return 0, models.ErrInvalidMediaType
	}
	n := 0
	for _, pool := range buckets {
		n += len(pool)
	}
	return n, nil
}

// GenreDistribution cuenta, por sentimiento, cuántas veces aparece cada
// género en el catálogo de un tipo de media (datos para el gráfico apilado).
func (c *Catalog) GenreDistribution(mediaType models.MediaType) (map[models.SentimentLabel]map[string]int, error) {
	buckets, ok := c.items[mediaType]
	if !ok {
		return nil, models.ErrInvalidMediaType
	}

	out := make(map[models.SentimentLabel]map[string]int, len(buckets))
	for label, pool := range buckets {
		counts := make(map[string]int)
		for _, item := range pool {
			for _, g := range strings.Split(item.Genre, ",") {
				g = strings.TrimSpace(g)
				if g != "" {
					counts[g]++
				}
			}
		}
		out[label] = counts
	}
	return out, nil
}
