package models

type MediaType string

const (
	MediaBooks  MediaType = "books"
	MediaMovies MediaType = "movies"
)

var MediaTypes = []MediaType{MediaBooks, MediaMovies}

func ParseMediaType(s string) (MediaType, error) {
	switch MediaType(s) {
	case MediaBooks, MediaMovies:
		return MediaType(s), nil
	}
	return "", ErrInvalidMediaType
}

// Un ítem del catálogo (libro o película). Struct comparable a propósito:
// la igualdad de todos los campos define la identidad, y así deduplicamos
// durante el backfill del allocator.
type MediaItem struct {
	Title       string         `json:"title"`
	Genre       string         `json:"genre"` // tags unidos por coma, ej. "Drama, Biography"
	Sentiment   SentimentLabel `json:"sentiment"`
	Description string         `json:"description,omitempty"`

	// solo libros
	Author string `json:"author,omitempty"`
	Year   int    `json:"year,omitempty"`

	// solo películas
	ReleaseYear int     `json:"releaseYear,omitempty"`
	Rating      float64 `json:"rating,omitempty"`
}
