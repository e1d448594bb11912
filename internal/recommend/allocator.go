package recommend

import (
	"math"
	"math/rand"
	"sync"

	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/models"
)

const (
	// Probabilidades <= 0.1 no aportan ítems de su bucket.
	ProbabilityThreshold = 0.1
)

// Allocator reparte los cupos de recomendación entre los buckets de
// sentimiento, ponderando por probabilidad. El muestreo es aleatorio pero
// acotado: nunca más de count ítems, nunca duplicados, nunca relleno
// sintético.
type Allocator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New crea un allocator con su propia fuente aleatoria.
// En tests se pasa una semilla fija para que el muestreo sea determinista.
// La fuente se comparte entre requests; el mutex evita data races.
func New(seed int64) *Allocator {
	return &Allocator{rng: rand.New(rand.NewSource(seed))}
}

// Allocate implementa el reparto ponderado:
//
//  1. Por cada etiqueta (orden canónico): si p <= 0.1 no aporta nada;
//     si no, aporta max(1, round(count*p)) ítems muestreados sin reemplazo
//     de su pool. round = mitad lejos de cero (math.Round); con count=5 y
//     p=0.5, round(2.5) = 3.
//  2. Si faltan ítems, se rellena desde el pool del sentimiento dominante
//     con los ítems aún no elegidos.
//  3. Si sobran (varios buckets redondearon hacia arriba), se recorta con
//     un submuestreo uniforme a exactamente count.
//
// Pools vacíos devuelven resultado vacío, nunca error. No se valida que
// las probabilidades sumen 1 (eso es problema del clasificador).
func (a *Allocator) Allocate(profile models.SentimentProfile, pools map[models.SentimentLabel][]models.MediaItem, count int) []models.MediaItem {
	if count < 1 {
		return []models.MediaItem{}
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	result := make([]models.MediaItem, 0, count)
	chosen := make(map[models.MediaItem]bool, count)

	// 1) asignación proporcional
	for _, label := range models.SentimentLabels {
		p := profile[label]
		if p <= ProbabilityThreshold {
			continue
		}
		want := int(math.Round(float64(count) * p))
		if want < 1 {
			// la etiqueta cruzó el umbral: aporta al menos un ítem
			want = 1
		}
		result = a.drawInto(result, chosen, pools[label], want)
	}

	// 2) backfill desde el sentimiento dominante
	if len(result) < count {
		result = a.drawInto(result, chosen, pools[profile.Dominant()], count-len(result))
	}

	// 3) recorte por sobre-asignación
	if len(result) > count {
		a.rng.Shuffle(len(result), func(i, j int) {
			result[i], result[j] = result[j], result[i]
		})
		result = result[:count]
	}

	return result
}

// drawInto muestrea hasta n ítems del pool sin reemplazo (permutación
// Fisher-Yates sobre los índices), saltando los ya elegidos. Si el pool
// no alcanza, devuelve lo que haya.
func (a *Allocator) drawInto(result []models.MediaItem, chosen map[models.MediaItem]bool, pool []models.MediaItem, n int) []models.MediaItem {
	if n <= 0 || len(pool) == 0 {
		return result
	}
	taken := 0
	for _, i := range a.rng.Perm(len(pool)) {
		if taken == n {
			break
		}
		item := pool[i]
		if chosen[item] {
			continue
		}
		chosen[item] = true
		result = append(result, item)
		taken++
	}
	return result
}
