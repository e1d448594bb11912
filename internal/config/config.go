package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort  string
	RedisAddr string // vacío = cache deshabilitado
	RedisPass string

	// nodos de modelo (coordinador)
	ModelNodeAddrs string // lista separada por comas

	// nodo de modelo (cmd/modelnode)
	ModelNodeAddr string
	NodeID        string
	ModelName     string
	HFAPIToken    string
	HFAPIBaseURL  string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		HTTPPort:       getEnv("HTTP_PORT", "8080"),
		RedisAddr:      getEnv("REDIS_ADDR", ""),
		RedisPass:      getEnv("REDIS_PASSWORD", ""),
		ModelNodeAddrs: getEnv("MODEL_NODE_ADDRS", ""),
		ModelNodeAddr:  getEnv("MODEL_NODE_ADDR", ":9001"),
		NodeID:         getEnv("NODE_ID", "?"),
		ModelName:      getEnv("MODEL_NAME", "cardiffnlp/twitter-roberta-base-sentiment"),
		HFAPIToken:     getEnv("HF_API_TOKEN", ""),
		HFAPIBaseURL:   getEnv("HF_API_BASE_URL", "https://api-inference.huggingface.co/models"),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s no está seteado, usando valor por defecto\n", key)
		return def
	}
	return v
}
