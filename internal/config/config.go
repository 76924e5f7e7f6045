package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	Guidance GuidanceConfig
}

type AppConfig struct {
	Port               string
	BaseURL            string
	ClientURL          string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	NatsURL            string
	RedisURL           string
}

type DatabaseConfig struct {
	Connection string
}

// GuidanceConfig tunes the guidance-absorption pipeline. The keyword lists are
// jurisdiction-specific and deliberately configuration, not code.
type GuidanceConfig struct {
	ComplianceChecklistName string
	ComplianceKeywords      []string
	DocumentKeywords        []string
	DocumentExtraKeywords   []string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			BaseURL:            getEnv("APP_BASE_URL", "http://localhost:3000"),
			ClientURL:          getEnv("CLIENT_URL", "http://localhost:5173"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "app.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			NatsURL:            getEnv("NATS_URL", "nats://localhost:4222"),
			RedisURL:           getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		Guidance: GuidanceConfig{
			ComplianceChecklistName: getEnv("GUIDANCE_COMPLIANCE_CHECKLIST_NAME", "Compliance Dashboard"),
			ComplianceKeywords:      getEnvAsList("GUIDANCE_COMPLIANCE_KEYWORDS", nil),
			DocumentKeywords:        getEnvAsList("GUIDANCE_DOCUMENT_KEYWORDS", nil),
			DocumentExtraKeywords:   getEnvAsList("GUIDANCE_DOCUMENT_EXTRA_KEYWORDS", nil),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvAsList splits a comma-separated env var, trimming whitespace and
// lowercasing entries. A nil fallback means "use the library defaults".
func getEnvAsList(key string, fallback []string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return fallback
	}
	parts := strings.Split(raw, ",")
	values := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.ToLower(strings.TrimSpace(p)); v != "" {
			values = append(values, v)
		}
	}
	return values
}
