package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"legal-assistant-be/internal/constant"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Keys     APIKeys
	Ai       AIConfig
	Chat     ChatConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
}

type DatabaseConfig struct {
	Connection string
}

type APIKeys struct {
	GoogleGemini       string
	EmbedDecisionTopic string // Decision embedding topic
}

type AIConfig struct {
	EmbeddingProvider   string // "gemini" or "ollama"
	OllamaBaseURL       string
	OllamaModel         string
	LLMProvider         string // "gemini" or "ollama"
	LLMModel            string // e.g. "gemini-1.5-flash", "llama3"
	EmbedTimeoutSeconds int
}

type ChatConfig struct {
	DailyMessageLimit int
	AdminIPs          []string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Keys: APIKeys{
			GoogleGemini:       getEnv("GOOGLE_GEMINI_API_KEY", ""),
			EmbedDecisionTopic: getEnv("EMBED_DECISION_TOPIC_NAME", "EMBED_DECISION"),
		},
		Ai: AIConfig{
			EmbeddingProvider:   getEnv("EMBEDDING_PROVIDER", "gemini"),
			OllamaBaseURL:       getEnv("OLLAMA_BASE_URL", "http://localhost:11434"),
			OllamaModel:         getEnv("OLLAMA_EMBEDDING_MODEL", "nomic-embed-text"),
			LLMProvider:         getEnv("LLM_PROVIDER", "gemini"),
			LLMModel:            getEnv("LLM_MODEL", "gemini-1.5-flash"),
			EmbedTimeoutSeconds: getEnvAsInt("EMBED_TIMEOUT_SECONDS", 10),
		},
		Chat: ChatConfig{
			DailyMessageLimit: getEnvAsInt("DAILY_MESSAGE_LIMIT", constant.DailyMessageLimit),
			AdminIPs:          getEnvAsList("ADMIN_IPS", "127.0.0.1"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsList(key, fallback string) []string {
	values := []string{}
	for _, part := range strings.Split(getEnv(key, fallback), ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			values = append(values, trimmed)
		}
	}
	return values
}
