package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	Port        string
	MongoURI    string
	MongoDBName string
	JWTSecret   string
	JWTExpiry   string
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using system environment variables")
	}

	AppConfig = &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("APP_PORT", getEnv("PORT", "8080")),
		MongoURI:    getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDBName: getEnv("MONGO_DB", "orchid_shop"),
		JWTSecret:   getEnv("JWT_SECRET", "secret"),
		JWTExpiry:   getEnv("JWT_EXPIRY", "24h"),
	}

	log.Info().
		Str("env", AppConfig.AppEnv).
		Str("port", AppConfig.Port).
		Msg("configuration loaded")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
