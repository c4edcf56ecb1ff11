package config

import (
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	// StoreBackend selects the transaction store: "mongo" (default) or
	// "memory" for a database-less run.
	StoreBackend string

	MongoURL    string
	MongoDBName string
	Port        string

	IsProduction bool

	// Pagination defaults for the list endpoint.
	DefaultPageSize int
	MaxPageSize     int

	// Formatted limiter rate, e.g. "100-M" for 100 requests per minute.
	RateLimit string

	CORSAllowedOrigins []string
}

// LoadConfig loads configuration from environment variables and a .env file
// if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("STORE_BACKEND", "mongo")
	viper.SetDefault("MONGO_URL", "mongodb://localhost:27017")
	viper.SetDefault("MONGO_DB_NAME", "fintrackr")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("DEFAULT_PAGE_SIZE", 10)
	viper.SetDefault("MAX_PAGE_SIZE", 100)
	viper.SetDefault("RATE_LIMIT", "100-M")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.StoreBackend = viper.GetString("STORE_BACKEND")

	cfg.MongoURL = viper.GetString("MONGO_URL")
	if cfg.MongoURL == "" {
		log.Println("Warning: MONGO_URL environment variable not set.")
	}

	cfg.MongoDBName = viper.GetString("MONGO_DB_NAME")
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")

	cfg.DefaultPageSize = viper.GetInt("DEFAULT_PAGE_SIZE")
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 10
		log.Printf("Warning: Invalid DEFAULT_PAGE_SIZE. Defaulting to %d.\n", cfg.DefaultPageSize)
	}

	cfg.MaxPageSize = viper.GetInt("MAX_PAGE_SIZE")
	if cfg.MaxPageSize < cfg.DefaultPageSize {
		cfg.MaxPageSize = cfg.DefaultPageSize
		log.Printf("Warning: MAX_PAGE_SIZE below DEFAULT_PAGE_SIZE. Defaulting to %d.\n", cfg.MaxPageSize)
	}

	cfg.RateLimit = viper.GetString("RATE_LIMIT")

	for _, origin := range strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}
