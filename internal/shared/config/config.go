package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Port           string
	Env            string
	LogLevel       string
	BodyLimitBytes int
	DashboardURL   string
	ReportAuthor   string

	LLMProvider string
	LLMModel    string
	OpenAIKey   string
	GeminiKey   string
	GroqKey     string
	DeepSeekKey string
}

const defaultBodyLimit = 1 << 20

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using system environment variables")
	}

	cfg := &Config{
		Port:         os.Getenv("PORT"),
		Env:          os.Getenv("ENV"),
		LogLevel:     os.Getenv("LOG_LEVEL"),
		DashboardURL: os.Getenv("DASHBOARD_URL"),
		ReportAuthor: os.Getenv("REPORT_AUTHOR"),
		LLMProvider:  os.Getenv("LLM_PROVIDER"),
		LLMModel:     os.Getenv("LLM_MODEL"),
		OpenAIKey:    os.Getenv("OPENAI_API_KEY"),
		GeminiKey:    os.Getenv("GEMINI_API_KEY"),
		GroqKey:      os.Getenv("GROQ_API_KEY"),
		DeepSeekKey:  os.Getenv("DEEPSEEK_API_KEY"),
	}

	// Default values
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.ReportAuthor == "" {
		cfg.ReportAuthor = "Marketing Insights"
	}
	if cfg.LLMProvider == "" {
		cfg.LLMProvider = "openai"
	}

	cfg.BodyLimitBytes = defaultBodyLimit
	if raw := os.Getenv("BODY_LIMIT_BYTES"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			log.Warn().Str("value", raw).Msg("invalid BODY_LIMIT_BYTES, using default")
		} else {
			cfg.BodyLimitBytes = n
		}
	}

	return cfg
}

// IsProduction reports whether the service runs with ENV=production
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
