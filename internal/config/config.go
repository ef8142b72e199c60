package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for our application
type Config struct {
	Port        string
	Origin      string
	Environment string
	JWTSecret   string

	// MockAuth keeps the demo behavior where any credentials are accepted
	// and an identity is synthesized. Set MOCK_AUTH=false to require
	// registered accounts with real password checks.
	MockAuth bool

	// LoginDelay simulates the latency of a real credential check.
	LoginDelay time.Duration

	SessionExpirationMinutes int

	Gemini     GeminiConfig
	Assessment AssessmentConfig
}

// GeminiConfig holds settings for the generative language service.
type GeminiConfig struct {
	APIKey string
	Model  string
}

// AssessmentConfig holds settings for the prakriti assessment.
type AssessmentConfig struct {
	QuestionsPath string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	mockAuth, err := strconv.ParseBool(getEnv("MOCK_AUTH", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid MOCK_AUTH: %w", err)
	}

	loginDelayMs, err := strconv.Atoi(getEnv("LOGIN_DELAY_MS", "1000"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOGIN_DELAY_MS: %w", err)
	}

	sessionExpMinutes, err := strconv.Atoi(getEnv("SESSION_EXPIRATION_MINUTES", "720"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_EXPIRATION_MINUTES: %w", err)
	}

	geminiConfig := GeminiConfig{
		APIKey: getEnv("GEMINI_API_KEY", ""),
		Model:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
	}

	assessmentConfig := AssessmentConfig{
		QuestionsPath: getEnv("ASSESSMENT_QUESTIONS_PATH", "config/questions.yaml"),
	}

	return &Config{
		Port:                     getEnv("PORT", "3001"),
		Origin:                   getEnv("ORIGIN", "http://localhost:4200"),
		Environment:              getEnv("APP_ENV", "development"),
		JWTSecret:                getEnv("JWT_SECRET", "default_jwt_secret"),
		MockAuth:                 mockAuth,
		LoginDelay:               time.Duration(loginDelayMs) * time.Millisecond,
		SessionExpirationMinutes: sessionExpMinutes,
		Gemini:                   geminiConfig,
		Assessment:               assessmentConfig,
	}, nil
}

// Helper function to get environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
