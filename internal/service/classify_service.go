package service

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/cache"
	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/cluster"
	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/models"
)

// El modelo remoto puede tardar en el primer request (cold start),
// por eso el timeout es más generoso que para un servicio normal.
const classifyTimeout = 30 * time.Second

// ClassifyService coordina los nodos de modelo: un texto suelto va a un
// solo nodo (round-robin), un batch se reparte por shards entre todos.
type ClassifyService struct {
	nodeAddrs []string

	mu   sync.Mutex
	next int // round-robin para textos sueltos
}

func NewClassifyService(nodeAddrs []string) *ClassifyService {
	return &ClassifyService{nodeAddrs: nodeAddrs}
}

// La key del cache usa el texto ya preprocesado: dos tweets que solo
// difieren en la URL o la mención producen el mismo perfil.
func cacheKey(text string) string {
	sum := sha1.Sum([]byte(cluster.Preprocess(text)))
	return "sent:text:" + hex.EncodeToString(sum[:])
}

// Classify clasifica un texto suelto. Si el modelo falla, el error se
// propaga tal cual: nunca inventamos un perfil.
func (s *ClassifyService) Classify(ctx context.Context, text string) (models.SentimentProfile, error) {
	if strings.TrimSpace(text) == "" {
		return nil, models.ErrEmptyText
	}

	// 1) cache Redis
	var cached models.SentimentProfile
	if ok, err := cache.GetJSON(ctx, cacheKey(text), &cached); err == nil && ok {
		return cached, nil
	}

	if len(s.nodeAddrs) == 0 {
		return nil, fmt.Errorf("no hay nodos de modelo configurados (MODEL_NODE_ADDRS vacío)")
	}

	addr := s.pickNode()

	ctxTimeout, cancel := context.WithTimeout(ctx, classifyTimeout)
	defer cancel()

	resp, err := cluster.SendTask(ctxTimeout, addr, &cluster.ClassifyTask{
		ShardID: 0,
		Shards:  1,
		Texts:   []string{text},
	})
	if err != nil {
		return nil, fmt.Errorf("nodo de modelo %s: %w", addr, err)
	}
	if len(resp.Results) == 0 {
		return nil, fmt.Errorf("nodo de modelo %s: respuesta vacía", addr)
	}
	res := resp.Results[0]
	if res.Err != "" {
		return nil, fmt.Errorf("clasificador: %s", res.Err)
	}

	// 2) cachear el perfil (1 hora)
	if err := cache.SetJSON(ctx, cacheKey(text), res.Profile, 60*60); err != nil {
		log.Printf("error cacheando perfil en Redis: %v", err)
	}

	return res.Profile, nil
}

func (s *ClassifyService) pickNode() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	addr := s.nodeAddrs[s.next%len(s.nodeAddrs)]
	s.next++
	return addr
}

// Progreso de un batch, para el WS: cuántos shards terminaron.
type ShardProgress struct {
	ShardID int
	Rows    int
	Err     error
}

// ClassifyBatch reparte los textos entre todos los nodos (fila i -> shard
// i % n) y junta los parciales en orden. Cada fila falla de forma aislada:
// celdas vacías o filas que el modelo no pudo clasificar salen como fila
// centinela, el batch nunca se aborta entero. onShard (opcional) se llama
// cuando cada shard termina, para reportar progreso.
func (s *ClassifyService) ClassifyBatch(ctx context.Context, texts []string, onShard func(ShardProgress)) ([]models.BatchRow, error) {
	if len(texts) == 0 {
		return []models.BatchRow{}, nil
	}
	if len(s.nodeAddrs) == 0 {
		return nil, fmt.Errorf("no hay nodos de modelo configurados (MODEL_NODE_ADDRS vacío)")
	}

	shards := len(s.nodeAddrs)
	if shards > len(texts) {
		shards = len(texts)
	}

	ctxTimeout, cancel := context.WithTimeout(ctx, classifyTimeout)
	defer cancel()

	resCh := make(chan *cluster.ClassifyResponse, shards)
	errCh := make(chan error, shards)

	var wg sync.WaitGroup
	for shardID := 0; shardID < shards; shardID++ {
		wg.Add(1)
		go func(addr string, shardID int) {
			defer wg.Done()
			resp, err := cluster.SendTask(ctxTimeout, addr, &cluster.ClassifyTask{
				ShardID: shardID,
				Shards:  shards,
				Texts:   texts,
			})
			if onShard != nil {
				p := ShardProgress{ShardID: shardID, Err: err}
				if resp != nil {
					p.Rows = len(resp.Results)
				}
				onShard(p)
			}
			if err != nil {
				errCh <- fmt.Errorf("shard %d (%s): %w", shardID, addr, err)
				return
			}
			resCh <- resp
		}(s.nodeAddrs[shardID], shardID)
	}

	wg.Wait()
	close(resCh)
	close(errCh)

	if len(resCh) == 0 && len(errCh) > 0 {
		// si todos los nodos fallaron, sí es error del batch completo
		return nil, <-errCh
	}
	for err := range errCh {
		log.Printf("[batch] shard caído, sus filas salen como inválidas: %v", err)
	}

	// combinar parciales: toda fila sin resultado queda como centinela
	rows := make([]models.BatchRow, len(texts))
	for i := range rows {
		rows[i] = models.InvalidBatchRow()
	}

	for resp := range resCh {
		for _, res := range resp.Results {
			if res.Index < 0 || res.Index >= len(rows) {
				continue
			}
			if res.Err != "" {
				continue // ya está la fila centinela
			}
			rows[res.Index] = models.BatchRow{
				Text:         truncateText(texts[res.Index]),
				MaxSentiment: string(res.Dominant),
				Positive:     res.Profile[models.SentimentPositive],
				Neutral:      res.Profile[models.SentimentNeutral],
				Negative:     res.Profile[models.SentimentNegative],
			}
		}
	}

	return rows, nil
}

// preview de 100 caracteres, igual que la tabla de resultados original
func truncateText(text string) string {
	r := []rune(text)
	if len(r) > 100 {
		return string(r[:100]) + "..."
	}
	return text
}
