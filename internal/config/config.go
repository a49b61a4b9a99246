package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const defaultRequestTimeout = 15 * time.Second

type Config struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	AppPort    string
	AppEnv     string
	JWTSecret  string
	RedisAddr  string
}

// LoadConfig reads the gateway server configuration. DB_HOST is mandatory.
func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		AppPort:    os.Getenv("APP_PORT"),
		AppEnv:     os.Getenv("APP_ENV"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		RedisAddr:  os.Getenv("REDIS_ADDR"),
	}

	if cfg.DBHost == "" {
		log.Fatal("Environment variables not loaded properly")
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}

	return cfg
}

type ClientConfig struct {
	GatewayURL     string
	RequestTimeout time.Duration
	AppEnv         string
}

// LoadClientConfig reads the settings used by the command-line client.
// Nothing here is mandatory; flags may override every field.
func LoadClientConfig() *ClientConfig {
	_ = godotenv.Load()

	cfg := &ClientConfig{
		GatewayURL:     os.Getenv("GATEWAY_URL"),
		RequestTimeout: defaultRequestTimeout,
		AppEnv:         os.Getenv("APP_ENV"),
	}

	if cfg.GatewayURL == "" {
		cfg.GatewayURL = "http://localhost:8080/api"
	}

	if raw := os.Getenv("REQUEST_TIMEOUT"); raw != "" {
		if d, err := time.ParseDuration(raw); err == nil && d > 0 {
			cfg.RequestTimeout = d
		}
	}

	return cfg
}
