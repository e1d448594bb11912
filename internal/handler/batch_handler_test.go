package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/models"
	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/service"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBatchClassifier clasifica todo como Positive sin red ni nodos.
type fakeBatchClassifier struct{}

func (fakeBatchClassifier) ClassifyBatch(ctx context.Context, texts []string, onShard func(service.ShardProgress)) ([]models.BatchRow, error) {
	if onShard != nil {
		onShard(service.ShardProgress{ShardID: 0, Rows: len(texts)})
	}
	rows := make([]models.BatchRow, len(texts))
	for i, text := range texts {
		if strings.TrimSpace(text) == "" {
			rows[i] = models.InvalidBatchRow()
			continue
		}
		rows[i] = models.BatchRow{
			Text:         text,
			MaxSentiment: string(models.SentimentPositive),
			Positive:     0.9,
			Neutral:      0.07,
			Negative:     0.03,
		}
	}
	return rows, nil
}

func newBatchHandler() *BatchHandler {
	return NewBatchHandler(service.NewBatchService(fakeBatchClassifier{}))
}

func TestBatchAnalyzeJSON(t *testing.T) {
	h := newBatchHandler()

	body := `{"texts":["great show","","meh"]}`
	req := httptest.NewRequest(http.MethodPost, "/batch/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Analyze(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result models.BatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.NotEmpty(t, result.BatchID)
	require.Len(t, result.Rows, 3)
	assert.Equal(t, 2, result.Counts[models.SentimentPositive])
	assert.Equal(t, 1, result.Invalid)
	assert.Equal(t, models.InvalidRowText, result.Rows[1].Text)
}

func TestBatchAnalyzeNoTexts(t *testing.T) {
	h := newBatchHandler()

	req := httptest.NewRequest(http.MethodPost, "/batch/analyze", strings.NewReader(`{"texts":[]}`))
	rec := httptest.NewRecorder()

	h.Analyze(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBatchAnalyzeMultipartCSV(t *testing.T) {
	h := newBatchHandler()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "tweets.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte("id,tweet\n1,love this\n2,hate this\n"))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("column", "tweet"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/batch/analyze", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()

	h.Analyze(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result models.BatchResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	require.Len(t, result.Rows, 2)
	assert.Equal(t, "love this", result.Rows[0].Text)
}

func TestBatchExportCSV(t *testing.T) {
	h := newBatchHandler()

	body := `{"rows":[{"text":"hola","max_sentiment":"Positive","positive":0.9,"neutral":0.07,"negative":0.03}]}`
	req := httptest.NewRequest(http.MethodPost, "/batch/export", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.ExportCSV(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "sentiment_analysis_results.csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "text,max_sentiment,positive,neutral,negative", lines[0])
	assert.Equal(t, "hola,Positive,0.9,0.07,0.03", lines[1])
}

func TestBatchAnalyzeWS(t *testing.T) {
	h := newBatchHandler()
	srv := httptest.NewServer(http.HandlerFunc(h.AnalyzeWS))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/batch"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(wsBatchRequest{Texts: []string{"uno", "dos"}}))

	// start -> progress... -> results, en ese orden
	var frame map[string]any
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "start", frame["type"])
	assert.EqualValues(t, 2, frame["rows"])

	for {
		require.NoError(t, conn.ReadJSON(&frame))
		if frame["type"] != "progress" {
			break
		}
	}

	require.Equal(t, "results", frame["type"])
	assert.NotEmpty(t, frame["batchId"])
}

func TestBatchAnalyzeWSEmpty(t *testing.T) {
	h := newBatchHandler()
	srv := httptest.NewServer(http.HandlerFunc(h.AnalyzeWS))
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(wsBatchRequest{}))

	var frame map[string]any
	require.NoError(t, conn.ReadJSON(&frame))
	assert.Equal(t, "error", frame["type"])
}

func TestTextsFromCSV(t *testing.T) {
	csvData := "id,tweet,user\n1,first tweet,ana\n2,second tweet,luis\n3\n"

	texts, err := textsFromCSV(strings.NewReader(csvData), "tweet")
	require.NoError(t, err)
	// la fila corta queda como "" para marcarse inválida después
	assert.Equal(t, []string{"first tweet", "second tweet", ""}, texts)
}

func TestTextsFromCSVDefaultColumn(t *testing.T) {
	texts, err := textsFromCSV(strings.NewReader("tweet\nhola\nchau\n"), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"hola", "chau"}, texts)
}

func TestTextsFromCSVColumnCaseInsensitive(t *testing.T) {
	texts, err := textsFromCSV(strings.NewReader("ID,Tweet\n1,hola\n"), "tweet")
	require.NoError(t, err)
	assert.Equal(t, []string{"hola"}, texts)
}

func TestTextsFromCSVMissingColumn(t *testing.T) {
	_, err := textsFromCSV(strings.NewReader("id,tweet\n1,hola\n"), "texto")
	assert.Error(t, err)
}

func TestTextsFromCSVEmpty(t *testing.T) {
	_, err := textsFromCSV(strings.NewReader(""), "")
	assert.Error(t, err)

	_, err = textsFromCSV(strings.NewReader("tweet\n"), "")
	assert.Error(t, err)
}
