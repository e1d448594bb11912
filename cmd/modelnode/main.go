package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/cluster"
	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/config"
	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/models"
)

func main() {
	cfg := config.Load()

	addr := cfg.ModelNodeAddr
	nodeID := cfg.NodeID

	log.Printf("[MODEL NODE %s] escuchando en %s (modelo %s)", nodeID, addr, cfg.ModelName)

	model := newModelClient(cfg)

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		log.Fatal(err)
	}

	for {
		conn, err := ln.Accept()
		if err != nil {
			log.Println("accept error:", err)
			continue
		}
		go handleConn(nodeID, conn, model)
	}
}

func handleConn(nodeID string, conn net.Conn, model *modelClient) {
	defer conn.Close()

	dec := json.NewDecoder(bufio.NewReader(conn))
	var task cluster.ClassifyTask
	if err := dec.Decode(&task); err != nil {
		log.Printf("[MODEL NODE %s] decode task error: %v", nodeID, err)
		return
	}

	log.Printf("[MODEL NODE %s] tarea recibida: batch=%s shard=%d/%d textos=%d",
		nodeID, task.BatchID, task.ShardID, task.Shards, len(task.Texts))

	start := time.Now()

	results := classifyAssigned(context.Background(), task, model)

	elapsed := time.Since(start)

	log.Printf(
		"[MODEL NODE %s] completado: shard=%d/%d filas=%d tiempo=%s",
		nodeID, task.ShardID, task.Shards, len(results), elapsed,
	)

	resp := cluster.ClassifyResponse{
		ShardID: task.ShardID,
		Results: results,
	}

	if err := json.NewEncoder(conn).Encode(&resp); err != nil {
		log.Printf("[MODEL NODE %s] encode resp error: %v", nodeID, err)
	}
}

// classifyAssigned clasifica solo las filas de este shard. Cada fila
// falla por separado (Err por fila), nunca se corta la tarea entera.
func classifyAssigned(ctx context.Context, task cluster.ClassifyTask, model *modelClient) []cluster.ClassifyResult {
	var results []cluster.ClassifyResult

	for idx, text := range task.Texts {
		if task.Shards > 0 && idx%task.Shards != task.ShardID {
			continue
		}

		res := cluster.ClassifyResult{Index: idx}
		if strings.TrimSpace(text) == "" {
			res.Err = "texto vacío"
		} else if profile, err := model.classify(ctx, text); err != nil {
			res.Err = err.Error()
		} else {
			res.Profile = profile
			res.Dominant = profile.Dominant()
		}
		results = append(results, res)
	}

	return results
}

// ====== Cliente del modelo (HuggingFace Inference API) ======

type modelClient struct {
	url    string
	token  string
	client *http.Client
}

func newModelClient(cfg *config.Config) *modelClient {
	return &modelClient{
		url:    strings.TrimRight(cfg.HFAPIBaseURL, "/") + "/" + cfg.ModelName,
		token:  cfg.HFAPIToken,
		client: &http.Client{Timeout: 25 * time.Second},
	}
}

// El modelo devuelve LABEL_0/1/2 en el orden de entrenamiento
// (Negative, Neutral, Positive); otros checkpoints ya traen el nombre.
var modelLabels = map[string]models.SentimentLabel{
	"label_0":  models.SentimentNegative,
	"label_1":  models.SentimentNeutral,
	"label_2":  models.SentimentPositive,
	"negative": models.SentimentNegative,
	"neutral":  models.SentimentNeutral,
	"positive": models.SentimentPositive,
}

// classify manda el texto ya preprocesado a la Inference API y arma el
// perfil softmax de tres etiquetas.
func (m *modelClient) classify(ctx context.Context, text string) (models.SentimentProfile, error) {
	body, err := json.Marshal(map[string]any{
		"inputs":  cluster.Preprocess(text),
		"options": map[string]bool{"wait_for_model": true},
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if m.token != "" {
		req.Header.Set("Authorization", "Bearer "+m.token)
	}

	resp, err := m.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("inference API %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}

	// formato: [[{"label": "LABEL_2", "score": 0.98}, ...]]
	var out [][]struct {
		Label string  `json:"label"`
		Score float64 `json:"score"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out) == 0 || len(out[0]) == 0 {
		return nil, fmt.Errorf("respuesta vacía del modelo")
	}

	profile := models.SentimentProfile{
		models.SentimentNegative: 0,
		models.SentimentNeutral:  0,
		models.SentimentPositive: 0,
	}
	for _, s := range out[0] {
		label, ok := modelLabels[strings.ToLower(s.Label)]
		if !ok {
			return nil, fmt.Errorf("etiqueta desconocida del modelo: %q", s.Label)
		}
		profile[label] = s.Score
	}
	return profile, nil
}
