package cluster

import "github.com/mvharsh/Movie-and-Book-Recommendations/internal/models"

// Tarea enviada desde el coordinador (API) a cada nodo de modelo.
// En batch se mandan todos los textos y cada nodo clasifica solo las
// filas con index % Shards == ShardID; para un texto suelto se manda
// una tarea con Shards=1.
type ClassifyTask struct {
	BatchID string   `json:"batchId,omitempty"`
	ShardID int      `json:"shardId"` // id del shard (0..Shards-1)
	Shards  int      `json:"shards"`  // total de shards/nodos
	Texts   []string `json:"texts"`
}

// Resultado de una fila. El error va por fila: una fila que el modelo
// no pudo clasificar no tumba el resto de la tarea.
type ClassifyResult struct {
	Index    int                     `json:"index"`
	Profile  models.SentimentProfile `json:"probabilities,omitempty"`
	Dominant models.SentimentLabel   `json:"max_sentiment,omitempty"`
	Err      string                  `json:"error,omitempty"`
}

// Respuesta de un nodo de modelo a la API.
type ClassifyResponse struct {
	ShardID int              `json:"shardId"`
	Results []ClassifyResult `json:"results"`
}
