package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	defaultOpenAIURL   = "https://api.openai.com/v1/chat/completions"
	defaultWhatsAppURL = "https://graph.facebook.com/v19.0"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	ServerHost string
	ServerPort string

	// Model provider configuration
	OpenAIAPIKey string
	OpenAIAPIURL string

	// Messaging provider configuration
	WhatsAppToken            string
	WhatsAppPhoneID          string
	WhatsAppDefaultRecipient string
	WhatsAppAPIURL           string

	// Redis configuration (rate limiting only)
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

// LoadConfig creates a new Config instance from environment variables, with
// Docker-secret file fallbacks for credentials. The messaging credentials are
// allowed to be absent here; the delivery service rejects sends without them.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		ServerHost:               getEnv("SERVER_HOST", "0.0.0.0"),
		ServerPort:               getEnv("SERVER_PORT", "8080"),
		OpenAIAPIURL:             getEnv("OPENAI_API_URL", defaultOpenAIURL),
		WhatsAppPhoneID:          os.Getenv("WHATSAPP_PHONE_ID"),
		WhatsAppDefaultRecipient: os.Getenv("WHATSAPP_DEFAULT_RECIPIENT"),
		WhatsAppAPIURL:           getEnv("WHATSAPP_API_URL", defaultWhatsAppURL),
		RedisHost:                os.Getenv("REDIS_HOST"),
		RedisPort:                getEnv("REDIS_PORT", "6379"),
		RedisPassword:            loadCredential("REDIS_PASSWORD", "redis_password"),
	}

	if dbStr := os.Getenv("REDIS_DB"); dbStr != "" {
		db, err := strconv.Atoi(dbStr)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB value %q: %w", dbStr, err)
		}
		cfg.RedisDB = db
	}

	cfg.OpenAIAPIKey = loadCredential("OPENAI_API_KEY", "openai_api_key")
	cfg.WhatsAppToken = loadCredential("WHATSAPP_TOKEN", "whatsapp_token")

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// loadCredential resolves a credential from, in order: the environment
// variable itself, a <NAME>_FILE path, or a Docker secret of the given name.
func loadCredential(envVar, secretName string) string {
	if v := os.Getenv(envVar); v != "" {
		return v
	}
	if path := os.Getenv(envVar + "_FILE"); path != "" {
		if data, err := os.ReadFile(path); err == nil {
			return strings.TrimSpace(string(data))
		}
	}
	return readSecret(secretName)
}

// readSecret reads a Docker secret from the secrets directory
func readSecret(name string) string {
	secretsDir := os.Getenv("SECRETS_DIR")
	if secretsDir == "" {
		secretsDir = "/run/secrets"
	}
	if data, err := os.ReadFile(filepath.Join(secretsDir, name)); err == nil {
		return strings.TrimSpace(string(data))
	}
	return ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
