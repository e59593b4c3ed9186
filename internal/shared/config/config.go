package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	AppName          string
	Port             string
	Env              string
	LogLevel         string
	SeedMockAgents   bool
	CORSAllowOrigins string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ .env file not found, using system environment variables")
	}
	return FromEnv()
}

// FromEnv reads the configuration from the process environment only
func FromEnv() *Config {
	cfg := &Config{
		AppName:          os.Getenv("APP_NAME"),
		Port:             os.Getenv("PORT"),
		Env:              os.Getenv("ENV"),
		LogLevel:         os.Getenv("LOG_LEVEL"),
		SeedMockAgents:   parseBool(os.Getenv("SEED_MOCK_AGENTS"), true),
		CORSAllowOrigins: os.Getenv("CORS_ALLOW_ORIGINS"),
	}

	// Default values
	if cfg.AppName == "" {
		cfg.AppName = "Sales Agent Configurator"
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.CORSAllowOrigins == "" {
		cfg.CORSAllowOrigins = "*"
	}

	return cfg
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func parseBool(raw string, fallback bool) bool {
	if raw == "" {
		return fallback
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("⚠️ invalid boolean %q, using %v", raw, fallback)
		return fallback
	}
	return v
}
