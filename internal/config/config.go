package config

import (
	"os"
	"strconv"
)

// Config holds the application configuration
// The server keeps no per-user state; everything here is process-wide
type Config struct {
	// Environment
	Environment string
	Port        string

	// Locale used for user-facing error messages and the default lyrics language
	Locale string

	// Engines
	// - "stub": fixed placeholder output (default)
	// - "tags": read embedded audio metadata (analyzer only)
	// - "gemini" / "openai": delegate to an LLM provider
	Analyzer  string
	Generator string

	// LLM API Keys
	OpenAIAPIKey string // OpenAI API key for GPT models
	GeminiAPIKey string // Google Gemini API key
	OpenAIModel  string
	GeminiModel  string

	// Upload limit for /api/analyze-audio, in megabytes
	MaxUploadMB int

	// Observability
	SentryDSN         string // Sentry DSN for error tracking
	LangfusePublicKey string // Langfuse public key
	LangfuseSecretKey string // Langfuse secret key
	LangfuseHost      string // Langfuse host URL (cloud or self-hosted)
	LangfuseEnabled   bool   // Feature flag for Langfuse
}

func Load() *Config {
	return &Config{
		Environment:       getEnv("ENVIRONMENT", "development"),
		Port:              getEnv("PORT", "8080"),
		Locale:            getEnv("LOCALE", "ko"),
		Analyzer:          getEnv("ANALYZER", "stub"),
		Generator:         getEnv("GENERATOR", "stub"),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-5-mini"),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		MaxUploadMB:       getEnvInt("MAX_UPLOAD_MB", 32),
		SentryDSN:         getEnv("SENTRY_DSN", ""),
		LangfusePublicKey: getEnv("LANGFUSE_PUBLIC_KEY", ""),
		LangfuseSecretKey: getEnv("LANGFUSE_SECRET_KEY", ""),
		LangfuseHost:      getEnv("LANGFUSE_HOST", "https://cloud.langfuse.com"),
		LangfuseEnabled:   getEnv("LANGFUSE_ENABLED", "false") == "true",
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultValue
}

// IsProduction reports whether the server runs in the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// MaxUploadBytes returns the multipart upload limit in bytes
func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}
