package main

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath    string
	RabbitURL string
	Exchange  string
}

func LoadConfig() Config {
	_ = godotenv.Load() // .env opcional
	return Config{
		DBPath:    env("BOOKLEDGER_DB_PATH", "./data/bookledger.db"),
		RabbitURL: env("RABBITMQ_URL", ""), // vacío = sin eventos
		Exchange:  env("BOOKLEDGER_EXCHANGE", "bookledger.events"),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
