package main

import (
	"log"
	"net/http"
	"strings"
	"time"

	_ "github.com/mvharsh/Movie-and-Book-Recommendations/docs" // swagger docs

	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/cache"
	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/catalog"
	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/config"
	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/handler"
	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/recommend"
	"github.com/mvharsh/Movie-and-Book-Recommendations/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title Movie and Book Recommendations API
// @version 1.0
// @description Recomendaciones de libros y películas según el sentimiento de un texto (RoBERTa en nodos de modelo, allocator ponderado)
// @host localhost:8080
// @BasePath /
func main() {
	cfg := config.Load()

	// Redis es opcional (cache de perfiles de sentimiento)
	cache.InitRedis(cfg)

	// catálogo estático embebido
	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("[catalog] error cargando fixtures: %v", err)
	}

	// ============================
	// Leer direcciones de nodos de modelo
	// ============================
	var modelNodes []string
	for _, v := range strings.Split(cfg.ModelNodeAddrs, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			modelNodes = append(modelNodes, v)
		}
	}

	// fallback por si no hay variable de entorno (útil en local sin Docker)
	if len(modelNodes) == 0 {
		modelNodes = []string{
			"modelnode1:9001",
			"modelnode2:9001",
		}
	}

	// services
	classifySvc := service.NewClassifyService(modelNodes)
	alloc := recommend.New(time.Now().UnixNano())
	recSvc := service.NewRecommendService(classifySvc, cat, alloc)
	batchSvc := service.NewBatchService(classifySvc)

	// handlers
	analyzeH := handler.NewAnalyzeHandler(recSvc)
	recH := handler.NewRecommendHandler(recSvc)
	catH := handler.NewCatalogHandler(cat)
	batchH := handler.NewBatchHandler(batchSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/health", handler.Health)

	// análisis y recomendaciones
	r.Post("/analyze", analyzeH.Analyze)
	r.Post("/recommendations", recH.Recommend)
	r.Get("/examples/random", handler.RandomExample)

	// catálogo estático
	r.Route("/catalog/{type}", func(r chi.Router) {
		r.Get("/", catH.All)
		r.Get("/genre-distribution", catH.GenreDistribution)
		r.Get("/{sentiment}", catH.Bucket)
	})

	// mapeo sentimiento -> géneros
	r.Get("/genres", handler.Genres)
	r.Get("/genres/{sentiment}", handler.GenresBySentiment)

	// batch (HTTP normal y WebSocket con progreso)
	r.Post("/batch/analyze", batchH.Analyze)
	r.Post("/batch/export", batchH.ExportCSV)
	r.Get("/ws/batch", batchH.AnalyzeWS)

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
