package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type envConfig struct {
	ServerAddr              string
	PostgresConnStr         string
	AdminUsername           string
	AdminPassword           string
	AccessTokenSecret       string
	AccessTokenExpiryInSecs int64
	DeliveryFee             string
	LogLevel                string
}

// Env holds the process configuration, loaded once at startup. A .env file in
// the working directory is optional; real environment variables win.
var Env = loadEnvConfig()

func loadEnvConfig() *envConfig {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("skipping .env file: %v", err)
	}

	return &envConfig{
		ServerAddr:        getEnv("SERVER_ADDR", "8080"),
		PostgresConnStr:   getEnv("POSTGRES_CONN_STR", "host=localhost port=5432 user=storefront password=storefront dbname=storefront sslmode=disable"),
		AdminUsername:     getEnv("ADMIN_USERNAME", ""),
		AdminPassword:     getEnv("ADMIN_PASSWORD", ""),
		AccessTokenSecret: getEnv("ACCESS_TOKEN_SECRET", ""),
		AccessTokenExpiryInSecs: getEnvInt64(
			"ACCESS_TOKEN_EXPIRY_IN_SECS",
			3600,
		),
		DeliveryFee: getEnv("DELIVERY_FEE", "10.00"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	value, err := strconv.ParseInt(os.Getenv(key), 10, 64)
	if err != nil {
		return defaultValue
	}

	return value
}
