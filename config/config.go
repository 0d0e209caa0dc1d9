package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Host        string
	AgentName   string
	FrontendURL string
	// LLM provider key used by the conversational driver; only its presence is reported
	GoogleAPIKey string
	// CORS: "*" allows every origin
	AllowedOrigins []string
	// MCP endpoint for tool-calling drivers
	MCPEnabled bool
	LogLevel   string
	// Graceful shutdown budget
	ShutdownTimeoutSeconds int
	// Requests per minute per client IP; 0 disables limiting
	RateLimitPerMinute int
}

func LoadConfig() (*Config, error) {
	// .env is optional; missing file is ignored
	_ = godotenv.Load()

	cfg := &Config{
		Port:                   getEnv("PORT", "8123"),
		Host:                   getEnv("HOST", "0.0.0.0"),
		AgentName:              getEnv("AGENT_NAME", "fractional_quest"),
		FrontendURL:            strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		GoogleAPIKey:           getEnv("GOOGLE_API_KEY", ""),
		AllowedOrigins:         getEnvList("CORS_ALLOWED_ORIGINS", []string{"*"}),
		MCPEnabled:             getEnvBool("MCP_ENABLED", true),
		LogLevel:               getEnv("LOG_LEVEL", "debug"),
		ShutdownTimeoutSeconds: getEnvInt("SHUTDOWN_TIMEOUT_SECONDS", 5),
		RateLimitPerMinute:     getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
	}

	if cfg.GoogleAPIKey == "" {
		log.Println("WARNING: GOOGLE_API_KEY is not set. The conversational driver will not be able to reach its model.")
	}

	return cfg, nil
}

// Addr returns the listen address
func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping empty entries
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
