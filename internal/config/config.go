package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// placeholder value shipped in .env.example; treated the same as no key.
const placeholderAPIKey = "your_gemini_api_key_here"

type Config struct {
	Server    ServerConfig
	Gemini    GeminiConfig
	RateLimit RateLimitConfig
	Profile   ProfileConfig
	Database  DatabaseConfig
}

type ServerConfig struct {
	Port string
	Env  string
}

type GeminiConfig struct {
	APIKey          string
	Model           string
	MaxOutputTokens int32
	Temperature     float32
	TopP            float32
	TopK            float32
	Timeout         time.Duration
}

// Enabled reports whether a usable credential is configured. A missing or
// placeholder key disables the model path entirely; every request then
// resolves through the knowledge-base fallback.
func (g GeminiConfig) Enabled() bool {
	return g.APIKey != "" && g.APIKey != placeholderAPIKey
}

type RateLimitConfig struct {
	MaxRequests int
	Window      time.Duration
}

type ProfileConfig struct {
	DataPath   string
	ResumePath string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// Enabled reports whether a shared Postgres rate-limit store is configured.
// Without it each instance keeps its own in-memory counters.
func (d DatabaseConfig) Enabled() bool {
	return d.Host != ""
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Using default values.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "3000"),
			Env:  getEnv("ENV", "development"),
		},
		Gemini: GeminiConfig{
			APIKey:          getEnv("GEMINI_API_KEY", ""),
			Model:           getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
			MaxOutputTokens: int32(getEnvAsInt("GEMINI_MAX_OUTPUT_TOKENS", 200)),
			Temperature:     getEnvAsFloat32("GEMINI_TEMPERATURE", 0.2),
			TopP:            getEnvAsFloat32("GEMINI_TOP_P", 0.6),
			TopK:            getEnvAsFloat32("GEMINI_TOP_K", 10),
			Timeout:         getEnvAsDuration("GEMINI_TIMEOUT", "3s"),
		},
		RateLimit: RateLimitConfig{
			MaxRequests: getEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 20),
			Window:      getEnvAsDuration("RATE_LIMIT_WINDOW", "1h"),
		},
		Profile: ProfileConfig{
			DataPath:   getEnv("PROFILE_PATH", "./data/profile.json"),
			ResumePath: getEnv("RESUME_PATH", ""),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", "postgres"),
			DBName:   getEnv("DB_NAME", "portfolio_assistant"),
		},
	}
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
	)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 32); err == nil {
		return float32(value)
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue string) time.Duration {
	valueStr := getEnv(key, defaultValue)
	if duration, err := time.ParseDuration(valueStr); err == nil {
		return duration
	}
	duration, _ := time.ParseDuration(defaultValue)
	return duration
}
