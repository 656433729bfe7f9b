package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	AuthNet AuthNetConfig
	Server  ServerConfig
	Redis   RedisConfig
	Auth    AuthConfig
}

type AuthNetConfig struct {
	APILoginID     string
	TransactionKey string
	LiveMode       bool
}

type ServerConfig struct {
	Port string
}

type RedisConfig struct {
	URL string
}

type AuthConfig struct {
	JWTSecret      string
	InternalSecret string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{
		AuthNet: AuthNetConfig{
			APILoginID:     os.Getenv("AUTHNET_API_LOGIN_ID"),
			TransactionKey: os.Getenv("AUTHNET_TRANSACTION_KEY"),
			LiveMode:       os.Getenv("AUTHNET_LIVE_MODE") == "true",
		},
		Server: ServerConfig{
			Port: os.Getenv("SERVER_PORT"),
		},
		Redis: RedisConfig{
			URL: os.Getenv("REDIS_URL"),
		},
		Auth: AuthConfig{
			JWTSecret:      os.Getenv("JWT_SECRET"),
			InternalSecret: os.Getenv("INTERNAL_API_SECRET"),
		},
	}

	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Redis.URL == "" {
		cfg.Redis.URL = "redis://localhost:6379/0"
		log.Printf("Warning: REDIS_URL not set, using default: %s", cfg.Redis.URL)
	}

	return cfg
}
