package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// External catalog configuration
	PexelsAPIKey  string
	PexelsBaseURL string

	// Database Configuration
	MongoURI string
	DBName   string

	// Security Configuration
	JWTSecret        string
	ResetTokenTTLMin int

	// Engagement Configuration
	MaxCommentLength int

	// Rate limiting
	RateLimitRPS   float64
	RateLimitBurst int

	// Server Configuration
	Port string
	Env  string
}

// LoadConfig loads the configuration from environment variables
func LoadConfig() (*Config, error) {
	// Load environment file based on GO_ENV
	env := getEnvOrDefault("GO_ENV", "development")
	envFile := filepath.Join("environments", fmt.Sprintf(".env.%s", env))

	if err := godotenv.Load(envFile); err != nil {
		return nil, fmt.Errorf("error loading env file %s: %v", envFile, err)
	}

	return &Config{
		// External catalog configuration
		PexelsAPIKey:  getEnvOrDefault("PEXELS_API_KEY", ""),
		PexelsBaseURL: getEnvOrDefault("PEXELS_BASE_URL", "https://api.pexels.com/videos"),

		// Database Configuration
		MongoURI: getEnvOrDefault("MONGO_URI", ""),
		DBName:   getEnvOrDefault("DB_NAME", "vidhubdb"),

		// Security Configuration
		JWTSecret:        getEnvOrDefault("JWT_SECRET", ""),
		ResetTokenTTLMin: getIntOrDefault("RESET_TOKEN_TTL_MINUTES", 15),

		// Engagement Configuration
		MaxCommentLength: getIntOrDefault("MAX_COMMENT_LENGTH", 500),

		// Rate limiting
		RateLimitRPS:   getFloatOrDefault("RATE_LIMIT_RPS", 10),
		RateLimitBurst: getIntOrDefault("RATE_LIMIT_BURST", 20),

		// Server Configuration
		Port: getEnvOrDefault("PORT", "8080"),
		Env:  env,
	}, nil
}

// IsDevelopment reports whether error details may be exposed to clients.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}
