package cluster

import "strings"

// Preprocess normaliza un tweet igual que el pipeline de entrenamiento
// del modelo RoBERTa: menciones -> "@user", URLs -> "http".
// Cambiar esto cambia la distribución de salida del modelo, así que
// vive junto al protocolo y lo usan tanto el nodo como la API (cache key).
func Preprocess(tweet string) string {
	words := strings.Split(tweet, " ")
	for i, w := range words {
		if strings.HasPrefix(w, "@") && len(w) > 1 {
			words[i] = "@user"
		} else if strings.HasPrefix(w, "http") {
			words[i] = "http"
		}
	}
	return strings.Join(words, " ")
}
