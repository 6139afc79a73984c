package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	// App
	AppVersion string

	// Server
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	AllowedOrigins string

	// PostgreSQL
	PostgresHost     string
	PostgresPort     int
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string

	// MongoDB
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// Redis
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Weather provider
	WeatherAPIKey   string
	WeatherBaseURL  string
	WeatherTimeout  time.Duration
	WeatherCacheTTL time.Duration

	// Price model
	ModelPath string

	// Auth
	JWTSecret      string
	JWTExpiryHours int
}

// PostgresDSN renders the gorm postgres connection string.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

// LoadConfig loads configuration from a .env file (if present) and the
// environment, with development defaults.
func LoadConfig() (*Config, error) {
	godotenv.Load()

	config := &Config{
		AppVersion:     getEnv("APP_VERSION", "1.0.0"),
		Port:           getEnv("PORT", "8080"),
		ReadTimeout:    time.Duration(getEnvAsInt("READ_TIMEOUT", 30)) * time.Second,
		WriteTimeout:   time.Duration(getEnvAsInt("WRITE_TIMEOUT", 30)) * time.Second,
		AllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),

		PostgresHost:     getEnv("DB_HOST", "localhost"),
		PostgresPort:     getEnvAsInt("DB_PORT", 5432),
		PostgresUser:     getEnv("DB_USER", "airnova"),
		PostgresPassword: getEnv("DB_PASSWORD", ""),
		PostgresDB:       getEnv("DB_NAME", "airnova"),
		PostgresSSLMode:  getEnv("DB_SSLMODE", "disable"),

		MongoURI:      getEnv("MONGODB_DSN", "mongodb://localhost:27017"),
		MongoDB:       getEnv("MONGO_DB", "airnova"),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvAsInt("REDIS_DB", 0),

		WeatherAPIKey:   getEnv("OPENWEATHER_API_KEY", ""),
		WeatherBaseURL:  getEnv("OPENWEATHER_BASE_URL", "https://api.openweathermap.org/data/2.5"),
		WeatherTimeout:  time.Duration(getEnvAsInt("WEATHER_TIMEOUT", 10)) * time.Second,
		WeatherCacheTTL: time.Duration(getEnvAsInt("WEATHER_CACHE_TTL", 300)) * time.Second,

		ModelPath: getEnv("PRICE_MODEL_PATH", "ml/model/price_model.json"),

		JWTSecret:      getEnv("JWT_SECRET", ""),
		JWTExpiryHours: getEnvAsInt("JWT_EXPIRY_HOURS", 24),
	}

	return config, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}
