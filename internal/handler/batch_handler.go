package handler

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/models"
	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/service"

	"github.com/gorilla/websocket"
)

type BatchHandler struct {
	svc *service.BatchService
}

func NewBatchHandler(s *service.BatchService) *BatchHandler {
	return &BatchHandler{svc: s}
}

// @Summary Análisis batch de sentimiento (CSV o lista de textos)
// @Tags batch
// @Accept json
// @Accept mpfd
// @Produce json
// @Param file formData file false "CSV con los textos"
// @Param column formData string false "columna con el texto (default: la primera)"
// @Success 200 {object} models.BatchResult
// @Router /batch/analyze [post]
func (h *BatchHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	texts, err := readBatchTexts(r)
	if err != nil {
		http.Error(w, err.Error(), 400)
		return
	}

	result, err := h.svc.Analyze(r.Context(), texts, nil)
	if err != nil {
		http.Error(w, err.Error(), 502)
		return
	}
	_ = json.NewEncoder(w).Encode(result)
}

// @Summary Exporta filas de un batch como CSV descargable
// @Tags batch
// @Accept json
// @Produce text/csv
// @Success 200
// @Router /batch/export [post]
func (h *BatchHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Rows []models.BatchRow `json:"rows"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "body inválido", 400)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="sentiment_analysis_results.csv"`)

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"text", "max_sentiment", "positive", "neutral", "negative"})
	for _, row := range req.Rows {
		_ = cw.Write([]string{
			row.Text,
			row.MaxSentiment,
			strconv.FormatFloat(row.Positive, 'f', -1, 64),
			strconv.FormatFloat(row.Neutral, 'f', -1, 64),
			strconv.FormatFloat(row.Negative, 'f', -1, 64),
		})
	}
	cw.Flush()
}

// upgrader global (no afecta a swagger)
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Primer mensaje del cliente en el WS: o una lista de textos, o un CSV
// completo con el nombre de la columna a analizar.
type wsBatchRequest struct {
	Texts  []string `json:"texts,omitempty"`
	CSV    string   `json:"csv,omitempty"`
	Column string   `json:"column,omitempty"`
}

// @Summary Análisis batch con progreso en tiempo real (WebSocket)
// @Tags batch
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /ws/batch [get]
func (h *BatchHandler) AnalyzeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "No se pudo abrir WebSocket", 400)
		return
	}
	defer conn.Close()

	var req wsBatchRequest
	if err := conn.ReadJSON(&req); err != nil {
		conn.WriteJSON(map[string]any{"type": "error", "error": "mensaje inicial inválido"})
		return
	}

	texts := req.Texts
	if len(texts) == 0 && req.CSV != "" {
		texts, err = textsFromCSV(strings.NewReader(req.CSV), req.Column)
		if err != nil {
			conn.WriteJSON(map[string]any{"type": "error", "error": err.Error()})
			return
		}
	}
	if len(texts) == 0 {
		conn.WriteJSON(map[string]any{"type": "error", "error": "no hay textos que analizar"})
		return
	}

	// Mensaje inicial
	conn.WriteJSON(map[string]any{
		"type": "start",
		"rows": len(texts),
		"msg":  "Conexión WS abierta, iniciando análisis…",
	})

	// El servicio reporta cada shard terminado por el canal; el loop de
	// abajo es el único que escribe en el WS (gorilla no permite
	// escrituras concurrentes).
	progressCh := make(chan service.ShardProgress, 16)
	resultCh := make(chan *models.BatchResult, 1)
	errCh := make(chan error, 1)

	go func() {
		result, err := h.svc.Analyze(r.Context(), texts, func(p service.ShardProgress) {
			progressCh <- p
		})
		close(progressCh)
		if err != nil {
			errCh <- err
			return
		}
		resultCh <- result
	}()

	for p := range progressCh {
		frame := map[string]any{
			"type":  "progress",
			"shard": p.ShardID,
			"rows":  p.Rows,
			"msg":   fmt.Sprintf("Nodo de modelo %d completó su parte", p.ShardID),
		}
		if p.Err != nil {
			frame["error"] = p.Err.Error()
		}
		conn.WriteJSON(frame)
	}

	select {
	case err := <-errCh:
		conn.WriteJSON(map[string]any{"type": "error", "error": err.Error()})
	case result := <-resultCh:
		conn.WriteJSON(map[string]any{
			"type":        "results",
			"batchId":     result.BatchID,
			"result":      result,
			"generatedAt": time.Now(),
		})
	}
}

// readBatchTexts saca los textos del request: multipart con CSV, o JSON
// con {"texts": [...]}.
func readBatchTexts(r *http.Request) ([]string, error) {
	ct := r.Header.Get("Content-Type")
	if strings.HasPrefix(ct, "multipart/form-data") {
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			return nil, fmt.Errorf("multipart inválido: %w", err)
		}
		file, _, err := r.FormFile("file")
		if err != nil {
			return nil, fmt.Errorf("falta el archivo CSV (campo 'file')")
		}
		defer file.Close()
		return textsFromCSV(file, r.FormValue("column"))
	}

	var req struct {
		Texts []string `json:"texts"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, fmt.Errorf("body inválido")
	}
	if len(req.Texts) == 0 {
		return nil, fmt.Errorf("no hay textos que analizar")
	}
	return req.Texts, nil
}

// textsFromCSV lee el CSV completo y devuelve la columna pedida (o la
// primera si no se indica). Celdas vacías o filas cortas quedan como ""
// y el batch las reporta como filas inválidas, no se abortan.
func textsFromCSV(src io.Reader, column string) ([]string, error) {
	reader := csv.NewReader(src)
	reader.FieldsPerRecord = -1 // toleramos filas con distinto ancho

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("CSV vacío o ilegible")
	}

	colIdx := 0
	if column != "" {
		colIdx = -1
		for i, name := range header {
			if strings.EqualFold(strings.TrimSpace(name), column) {
				colIdx = i
				break
			}
		}
		if colIdx < 0 {
			return nil, fmt.Errorf("la columna %q no existe en el CSV", column)
		}
	}

	var texts []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("leyendo CSV: %w", err)
		}
		if colIdx >= len(record) {
			texts = append(texts, "")
			continue
		}
		texts = append(texts, record[colIdx])
	}
	if len(texts) == 0 {
		return nil, fmt.Errorf("el CSV no tiene filas de datos")
	}
	return texts, nil
}
