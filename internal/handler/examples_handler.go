package handler

import (
	"encoding/json"
	"math/rand"
	"net/http"
)

// Textos de ejemplo para probar el análisis sin escribir nada.
var exampleTexts = []string{
	"Just watched an amazing sunset at the beach! Life is beautiful! #blessed #grateful",
	"Feeling so frustrated with this terrible customer service. Been on hold for 45 minutes! 😡",
	"Interesting documentary about climate change. Makes you think about our future.",
	"My new job is amazing! The team is so supportive and I'm learning so much every day!",
	"Just finished reading a depressing book. Can't shake off the heavy feeling.",
	"Not sure how I feel about the new restaurant that opened nearby. Food was okay, I guess.",
}

// @Summary Un texto de ejemplo al azar
// @Tags examples
// @Produce json
// @Success 200 {object} map[string]string
// @Router /examples/random [get]
func RandomExample(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"text": exampleTexts[rand.Intn(len(exampleTexts))],
	})
}
