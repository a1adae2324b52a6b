package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	LLM      LLMConfig
	Session  SessionConfig
	Auth     AuthConfig
	SMTP     SMTPConfig
	Events   EventsConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	CorsAllowedOrigins string
	// QuestionsFile overrides the embedded baseline question set when set.
	QuestionsFile string
}

type DatabaseConfig struct {
	Connection  string
	AutoMigrate bool
}

type LLMConfig struct {
	Provider string // "openai" or "gemini"
	APIKey   string
	Model    string
	BaseURL  string
	Timeout  time.Duration
}

type SessionConfig struct {
	Store    string // "memory" or "redis"
	RedisURL string
	TTL      time.Duration
}

type AuthConfig struct {
	JWTSecret     string
	TokenTTL      time.Duration
	UserPassword  string
	AdminPassword string
}

type SMTPConfig struct {
	Host       string
	Port       int
	Email      string
	Password   string
	SenderName string
	NotifyTo   string
}

// Enabled reports whether enough is configured to actually send mail.
func (s SMTPConfig) Enabled() bool {
	return s.Host != "" && s.Email != "" && s.NotifyTo != ""
}

type EventsConfig struct {
	Enabled bool
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.App.Environment, "production")
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, using system environment")
	}

	provider := strings.ToLower(getEnv("LLM_PROVIDER", "openai"))

	return &Config{
		App: AppConfig{
			Port:               getEnv("PORT", "8080"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/survey.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
			QuestionsFile:      getEnv("QUESTIONS_FILE", ""),
		},
		Database: DatabaseConfig{
			Connection:  getEnv("POSTGRES_URL", ""),
			AutoMigrate: getEnvAsBool("DB_AUTO_MIGRATE", true),
		},
		LLM: LLMConfig{
			Provider: provider,
			APIKey:   llmAPIKey(provider),
			Model:    getEnv("LLM_MODEL", defaultModel(provider)),
			BaseURL:  getEnv("LLM_BASE_URL", ""),
			Timeout:  getEnvAsDuration("LLM_TIMEOUT", 60*time.Second),
		},
		Session: SessionConfig{
			Store:    strings.ToLower(getEnv("SESSION_STORE", "memory")),
			RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
			TTL:      getEnvAsDuration("SESSION_TTL", 2*time.Hour),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", "change-me"),
			TokenTTL:      getEnvAsDuration("TOKEN_TTL", 60*time.Minute),
			UserPassword:  getEnv("SURVEY_USER_PASSWORD", "user123$"),
			AdminPassword: getEnv("SURVEY_ADMIN_PASSWORD", "admin123%"),
		},
		SMTP: SMTPConfig{
			Host:       getEnv("SMTP_HOST", ""),
			Port:       getEnvAsInt("SMTP_PORT", 587),
			Email:      getEnv("SMTP_EMAIL", ""),
			Password:   getEnv("SMTP_PASSWORD", ""),
			SenderName: getEnv("SMTP_SENDER_NAME", "Data Infrastructure Survey"),
			NotifyTo:   getEnv("SMTP_NOTIFY_TO", ""),
		},
		Events: EventsConfig{
			Enabled: getEnvAsBool("EVENTS_ENABLED", true),
		},
	}
}

// llmAPIKey prefers the generic key and falls back to the provider specific one.
func llmAPIKey(provider string) string {
	if key := getEnv("LLM_API_KEY", ""); key != "" {
		return key
	}
	switch provider {
	case "gemini":
		return getEnv("GEMINI_API_KEY", "")
	default:
		return getEnv("OPENAI_API_KEY", "")
	}
}

func defaultModel(provider string) string {
	if provider == "gemini" {
		return "gemini-1.5-flash"
	}
	return "gpt-4o-mini"
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

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if strValue == "" {
		return fallback
	}
	if value, err := time.ParseDuration(strValue); err == nil {
		return value
	}
	// bare numbers are seconds
	if secs, err := strconv.Atoi(strValue); err == nil {
		return time.Duration(secs) * time.Second
	}
	return fallback
}
