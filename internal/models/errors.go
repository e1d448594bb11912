package models

import "errors"

// Errores sentinela del dominio. Ninguno es fatal para el proceso:
// los handlers los traducen a 400/404 y el allocator degrada devolviendo
// menos ítems en vez de fallar.
var (
	ErrInvalidMediaType = errors.New("media type inválido (use 'books' o 'movies')")
	ErrUnknownSentiment = errors.New("sentimiento desconocido (use Negative, Neutral o Positive)")
	ErrEmptyText        = errors.New("texto vacío")
)
